// Package graphql provides the GraphQL transport layer of the settings
// management API. It defines the schema, resolvers, and error handling for
// the user/settings/activity query and mutation surface. The execution glue
// is generated via gqlgen from the schema file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
