// Command printschema validates the embedded GraphQL schema as a standalone
// SDL document and prints it in canonical form.
package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/ridelog/internal/graph"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

func main() {
	schema, err := gqlparser.LoadSchema(&ast.Source{
		Name:  "schema.graphql",
		Input: graph.SchemaSDL,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid schema: %v\n", err)
		os.Exit(1)
	}

	formatter.NewFormatter(os.Stdout).FormatSchema(schema)
}
