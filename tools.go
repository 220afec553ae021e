//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/99designs/gqlgen (GraphQL code generation)
// - github.com/pressly/goose/v3/cmd/goose (migrations)
