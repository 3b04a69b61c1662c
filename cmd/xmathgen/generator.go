package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// ErrTable is returned for constant tables that cannot be rendered.
var ErrTable = errors.New("invalid constant table")

// Table is the content of a constants file.
type Table struct {
	Package string       `toml:"package"`
	Float   []FloatConst `toml:"float"`
	Magic   []MagicConst `toml:"magic"`
}

// FloatConst is a float32 given by its IEEE-754 bit pattern.
type FloatConst struct {
	Name string `toml:"name"`
	Bits uint32 `toml:"bits"`
	Doc  string `toml:"doc"`
}

// MagicConst is an integer seed used in bit arithmetic.
type MagicConst struct {
	Name  string `toml:"name"`
	Value uint32 `toml:"value"`
	Doc   string `toml:"doc"`
}

// Generator turns a constants file into Go source.
type Generator struct {
	InputFile  string
	OutputFile string
}

// Run reads InputFile and writes the generated source to OutputFile.
func (g *Generator) Run() error {
	data, err := os.ReadFile(g.InputFile)
	if err != nil {
		return err
	}
	table, err := ParseTable(data)
	if err != nil {
		return fmt.Errorf("%s: %w", g.InputFile, err)
	}
	src, err := Render(table, filepath.Base(g.InputFile))
	if err != nil {
		return fmt.Errorf("%s: %w", g.InputFile, err)
	}
	log.Debugf("Rendered %d floats and %d magic values", len(table.Float), len(table.Magic))
	return os.WriteFile(g.OutputFile, src, 0o644)
}

// ParseTable decodes and validates a constants file.
func ParseTable(data []byte) (Table, error) {
	var t Table
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return Table{}, err
	}

	if !token.IsIdentifier(t.Package) {
		return Table{}, fmt.Errorf("%w: bad package name %q", ErrTable, t.Package)
	}
	if len(t.Float)+len(t.Magic) == 0 {
		return Table{}, fmt.Errorf("%w: no [[float]] or [[magic]] entries", ErrTable)
	}

	names := append(
		lo.Map(t.Float, func(c FloatConst, _ int) string { return c.Name }),
		lo.Map(t.Magic, func(c MagicConst, _ int) string { return c.Name })...,
	)
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return Table{}, fmt.Errorf("%w: duplicate names %v", ErrTable, dups)
	}
	for _, name := range names {
		if id := Identifier(name); !token.IsIdentifier(id) || token.IsKeyword(id) {
			return Table{}, fmt.Errorf("%w: %q does not make a Go identifier", ErrTable, name)
		}
	}
	return t, nil
}

// Identifier converts a snake_case name to lower camel case. An underscore
// between two digits is kept, so log10_2 stays log10_2.
func Identifier(name string) string {
	title := cases.Title(language.Und)
	parts := strings.Split(name, "_")

	var b strings.Builder
	b.WriteString(parts[0])
	for i, p := range parts[1:] {
		if p == "" {
			continue
		}
		prev := parts[i]
		if startsWithDigit(p) && prev != "" && unicode.IsDigit(rune(prev[len(prev)-1])) {
			b.WriteString("_" + p)
			continue
		}
		b.WriteString(title.String(p))
	}
	return b.String()
}

func startsWithDigit(s string) bool {
	return s != "" && unicode.IsDigit(rune(s[0]))
}

var fileTemplate = template.Must(template.New("constants").Funcs(template.FuncMap{
	"ident": Identifier,
}).Parse(`// Code generated by xmathgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{- if .Float}}

var (
{{- range .Float}}
	{{ident .Name}} = FromBits({{printf "0x%08x" .Bits}}){{with .Doc}} // {{.}}{{end}}
{{- end}}
)
{{- end}}
{{- if .Magic}}

const (
{{- range .Magic}}
	{{ident .Name}} uint32 = {{printf "0x%08x" .Value}}{{with .Doc}} // {{.}}{{end}}
{{- end}}
)
{{- end}}
`))

// Render produces the formatted Go source for t. source names the input in
// the generated header.
func Render(t Table, source string) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Table
		Source string
	}{t, source})
	if err != nil {
		return nil, err
	}

	opts := &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true}
	src, err := imports.Process("zconstants.go", buf.Bytes(), opts)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}
