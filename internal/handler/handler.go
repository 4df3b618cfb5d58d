// Package handler is the first layer after the router.
//
// It binds and validates HTTP input using the validation package and hands
// it to the GraphQL schema, which in turn calls the service layer. It also
// serves the system endpoints: health, GraphiQL and the schema SDL.
package handler
