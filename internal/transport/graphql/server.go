package graphql

import (
	"log/slog"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/prefstore-backend/internal/config"
	"github.com/heartmarshall/prefstore-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/prefstore-backend/internal/transport/graphql/resolver"
)

// NewServer builds the GraphQL HTTP handler: executable schema, transports,
// query cache, complexity limit, and the domain error presenter.
func NewServer(log *slog.Logger, cfg config.GraphQLConfig, res *resolver.Resolver) *gqlhandler.Server {
	srv := gqlhandler.New(generated.NewExecutableSchema(generated.Config{
		Resolvers: res,
	}))

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))

	srv.Use(extension.AutomaticPersistedQuery{
		Cache: lru.New[string](100),
	})

	if cfg.IntrospectionEnabled {
		srv.Use(extension.Introspection{})
	}
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}

	srv.SetErrorPresenter(NewErrorPresenter(log))

	return srv
}
