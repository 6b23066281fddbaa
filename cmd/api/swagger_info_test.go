package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swag init reads the general API info from the doc comment on main.
func TestMainCarriesSwaggerGeneralInfo(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "main.go", nil, parser.ParseComments)
	require.NoError(t, err)

	var doc string
	for _, d := range f.Decls {
		if fn, ok := d.(*ast.FuncDecl); ok && fn.Name.Name == "main" && fn.Doc != nil {
			doc = fn.Doc.Text()
		}
	}
	require.NotEmpty(t, doc, "main has no doc comment")

	for _, want := range []string{
		"@title                      NutriGuide API",
		"@version",
		"@BasePath",
		"@securityDefinitions.apikey BearerAuth",
		"@in                         header",
		"@name                       Authorization",
	} {
		assert.Contains(t, doc, want)
	}
}
