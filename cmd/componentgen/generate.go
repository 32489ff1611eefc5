package main

import (
	"bytes"
	"go/ast"
	"go/token"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// Directive marks a type declaration as an ECS component.
const Directive = "//ecs:component"

const registerTemplate = `// Code generated by componentgen. DO NOT EDIT.

package {{.Package}}

import "{{.ECSImport}}"

// RegisterComponents registers every component type declared in this package.
func RegisterComponents(registry *ecs.ComponentRegistry) {
{{- range .Types}}
	ecs.RegisterComponent[{{.}}](registry)
{{- end}}
}
`

var tmpl = template.Must(template.New("register").Parse(registerTemplate))

// FindComponents returns the sorted names of every type carrying the
// directive, either on the type spec or on its single-spec declaration.
func FindComponents(files []*ast.File) []string {
	var names []string
	for _, f := range files {
		for _, decl := range f.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				if hasDirective(ts.Doc) || (len(gen.Specs) == 1 && hasDirective(gen.Doc)) {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}
	return false
}

// Generate renders the registration file for pkg and formats it.
func Generate(filename, pkg, ecsImport string, types []string) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Package   string
		ECSImport string
		Types     []string
	}{pkg, ecsImport, types})
	if err != nil {
		return nil, err
	}
	return imports.Process(filename, buf.Bytes(), nil)
}
