/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// Header opens every generated file.
const Header = "// Code generated by errinfo-gen. DO NOT EDIT."

var fileTmpl = template.Must(template.New("file").Parse(`{{if .Copyright}}{{.Copyright}}

{{end}}{{.Header}}

package {{.Package}}

import (
	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/taxonomy"
{{- if .AppImport}}
	{{if .AliasImport}}{{.AppAlias}} {{end}}{{printf "%q" .AppImport}}
{{- end}}
)

// {{.Table}} is the compiled taxonomy of {{.Type}}.
var {{.Table}} = taxonomy.MustCompile[{{.AppType}}](taxonomy.Declaration[{{.Type}}]{
	Name:   {{printf "%q" .Type}},
	Prefix: {{printf "%q" .Prefix}},
	Variants: []{{.Type}}{
{{- range .Variants}}
		{{.Name}},
{{- end}}
	},
	Entries: map[{{.Type}}]taxonomy.Entry{
{{- range .Variants}}
		{{.Name}}: {Code: {{printf "%q" .Code}}
		{{- if .AppCode}}, AppCode: {{printf "%q" .AppCode}}{{end}}
		{{- if .ClientMsg}}, ClientMsg: {{printf "%q" .ClientMsg}}{{end}}},
{{- end}}
	},
}{{if .Strict}}, taxonomy.StrictAppCodes(){{end}})

// Full codes are case constants: a duplicate does not compile.
func _() {
	switch "" {
	case {{range $i, $c := .Codes}}{{if $i}}, {{end}}{{printf "%q" $c}}{{end}}:
	}
}

// ToErrorInfo implements errinfo.ToErrorInfo.
func (e {{.Error}}) ToErrorInfo() (errinfo.ErrorInfo[{{.AppType}}], error) {
{{- if .Pointer}}
	if e == nil {
		return errinfo.ErrorInfo[{{.AppType}}]{}, taxonomy.ErrNilError
	}
{{- end}}
{{- if .SelfDescribed}}
	return {{.Table}}.Describe({{if .Pointer}}*e{{else}}e{{end}}, e)
{{- else}}
	return {{.Table}}.Info(e)
{{- end}}
}
`))

// RenderOptions tunes Render.
type RenderOptions struct {
	// Strict makes the compiled table parse every app code at init.
	Strict bool

	// Copyright is emitted verbatim above the generated-code header.
	Copyright string
}

type fileData struct {
	Copyright     string
	Header        string
	Package       string
	Type          string
	Error         string
	Prefix        string
	Table         string
	AppType       string
	AppImport     string
	AppAlias      string
	AliasImport   bool
	Variants      []Variant
	Codes         []string
	Strict        bool
	Pointer       bool
	SelfDescribed bool
}

// Render returns the formatted source of the generated file for d. d must
// have passed Validate.
func Render(d *Decl, opts RenderOptions) ([]byte, error) {
	ref, err := ParseAppType(d.AppType)
	if err != nil {
		return nil, err
	}
	name, pointer := d.errorBase()
	data := fileData{
		Copyright:     strings.TrimRight(opts.Copyright, "\n"),
		Header:        Header,
		Package:       d.Package,
		Type:          d.Type,
		Error:         d.ErrorType(),
		Prefix:        d.Prefix,
		Table:         tableName(d.Type),
		AppType:       ref.Name,
		Variants:      d.Variants,
		Strict:        opts.Strict,
		Pointer:       pointer,
		SelfDescribed: name == d.Type,
	}
	if ref.Import != "" {
		data.AppImport = ref.Import
		data.AppAlias = importAlias(ref.Import)
		data.AliasImport = data.AppAlias != ref.Import[strings.LastIndex(ref.Import, "/")+1:]
		data.AppType = data.AppAlias + "." + ref.Name
	}
	for _, v := range d.Variants {
		data.Codes = append(data.Codes, d.FullCode(v))
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format generated code: %w", err)
	}
	return src, nil
}

// tableName returns the unexported variable name of the compiled table.
func tableName(typeName string) string {
	r, n := utf8.DecodeRuneInString(typeName)
	return string(unicode.ToLower(r)) + typeName[n:] + "Taxonomy"
}

// importAlias derives an identifier from the last element of an import
// path, e.g. "gopkg.in/yaml.v3" gives "yaml". The alias never collides with
// the packages the generated file imports itself.
func importAlias(path string) string {
	last := path[strings.LastIndex(path, "/")+1:]
	var b strings.Builder
	for _, r := range last {
		if r == '.' {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	alias := b.String()
	if alias == "" || unicode.IsDigit(rune(alias[0])) {
		alias = "app" + alias
	}
	switch alias {
	case "errinfo", "taxonomy":
		alias = "app" + alias
	}
	return alias
}
