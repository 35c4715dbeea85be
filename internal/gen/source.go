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
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// OutputSuffix ends the name of every generated file. Files with this
// suffix are skipped when a package is loaded.
const OutputSuffix = "_errinfo.go"

// OutputName returns the default generated file name for typeName.
func OutputName(typeName string) string {
	return strings.ToLower(typeName) + OutputSuffix
}

// errNoGoFiles is returned by loadPackage for a directory without Go files.
var errNoGoFiles = errors.New("gen: no Go files")

type pkg struct {
	fset  *token.FileSet
	name  string
	files []*ast.File
}

func (p *pkg) pos(n token.Pos) string { return p.fset.Position(n).String() }

// loadPackage parses the non-test, non-generated Go files in dir.
func loadPackage(dir string) (*pkg, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("gen: read package: %w", err)
	}
	var names []string
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasSuffix(n, ".go") ||
			strings.HasSuffix(n, "_test.go") || strings.HasSuffix(n, OutputSuffix) {
			continue
		}
		names = append(names, n)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoGoFiles, dir)
	}

	p := &pkg{fset: token.NewFileSet()}
	for _, n := range names {
		f, err := parser.ParseFile(p.fset, filepath.Join(dir, n), nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("gen: %w", err)
		}
		switch {
		case p.name == "":
			p.name = f.Name.Name
		case p.name != f.Name.Name:
			return nil, fmt.Errorf("gen: %s: package %s, expected %s", n, f.Name.Name, p.name)
		}
		p.files = append(p.files, f)
	}
	return p, nil
}

// typeSpec returns the declaration of name and its doc comment.
func (p *pkg) typeSpec(name string) (*ast.TypeSpec, *ast.CommentGroup) {
	for _, f := range p.files {
		for _, d := range f.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, s := range gd.Specs {
				ts := s.(*ast.TypeSpec)
				if ts.Name.Name != name {
					continue
				}
				doc := ts.Doc
				if doc == nil && !gd.Lparen.IsValid() {
					doc = gd.Doc
				}
				return ts, doc
			}
		}
	}
	return nil, nil
}

type enumConst struct {
	name  string
	doc   *ast.CommentGroup
	pos   token.Pos
	multi bool
}

// constants returns the constants of type typeName in source order.
//
// Inside a const block a ValueSpec without type and values repeats the previous
// ValueSpec, so its type carries over. A constant initialized from an
// expression over constants of typeName (First + 1, or just First) has type
// typeName too; such references may cross files, so the scan repeats until
// no new constant is found.
func (p *pkg) constants(typeName string) []enumConst {
	known := map[string]bool{}
	n := -1
	for {
		out := p.scanConstants(typeName, known)
		if len(out) == n {
			return out
		}
		n = len(out)
		for _, c := range out {
			known[c.name] = true
		}
	}
}

func (p *pkg) scanConstants(typeName string, known map[string]bool) []enumConst {
	var out []enumConst
	for _, f := range p.files {
		for _, d := range f.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			var typ string
			for _, s := range gd.Specs {
				vs := s.(*ast.ValueSpec)
				switch {
				case vs.Type != nil:
					typ = identName(vs.Type)
				case len(vs.Values) > 0:
					typ = conversionType(vs.Values[0])
					if typ == "" && typedBy(vs.Values[0], known) {
						typ = typeName
					}
				}
				if typ != typeName {
					continue
				}
				doc := vs.Doc
				if doc == nil && !gd.Lparen.IsValid() {
					doc = gd.Doc
				}
				for _, n := range vs.Names {
					if n.Name == "_" {
						continue
					}
					out = append(out, enumConst{name: n.Name, doc: doc, pos: n.Pos(), multi: len(vs.Names) > 1})
				}
			}
		}
	}
	return out
}

// typedBy reports whether the untyped-looking constant expression e takes
// its type from one of the known constants. Comparisons yield untyped
// booleans and do not count.
func typedBy(e ast.Expr, known map[string]bool) bool {
	switch e := e.(type) {
	case *ast.Ident:
		return known[e.Name]
	case *ast.ParenExpr:
		return typedBy(e.X, known)
	case *ast.UnaryExpr:
		return e.Op != token.NOT && typedBy(e.X, known)
	case *ast.BinaryExpr:
		switch e.Op {
		case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ, token.LAND, token.LOR:
			return false
		case token.SHL, token.SHR:
			return typedBy(e.X, known)
		}
		return typedBy(e.X, known) || typedBy(e.Y, known)
	}
	return false
}

// hasMethod reports whether recv (without '*') declares a method name whose
// single result is of type result.
func (p *pkg) hasMethod(recv, name, result string) bool {
	for _, f := range p.files {
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Recv == nil || len(fd.Recv.List) != 1 || fd.Name.Name != name {
				continue
			}
			rt := fd.Recv.List[0].Type
			if star, ok := rt.(*ast.StarExpr); ok {
				rt = star.X
			}
			if identName(rt) != recv {
				continue
			}
			res := fd.Type.Results
			if res != nil && len(res.List) == 1 && len(res.List[0].Names) <= 1 && identName(res.List[0].Type) == result {
				return true
			}
		}
	}
	return false
}

func identName(e ast.Expr) string {
	if id, ok := e.(*ast.Ident); ok {
		return id.Name
	}
	return ""
}

// conversionType returns T for a T(x) conversion.
func conversionType(e ast.Expr) string {
	if call, ok := e.(*ast.CallExpr); ok && len(call.Args) == 1 {
		return identName(call.Fun)
	}
	return ""
}

// findDirective returns the attribute text of the one line in cg starting
// with name. Directive lines are read from the raw comment list, since
// CommentGroup.Text drops them.
func findDirective(cg *ast.CommentGroup, name string) (string, bool, error) {
	if cg == nil {
		return "", false, nil
	}
	var (
		found bool
		text  string
	)
	for _, c := range cg.List {
		rest, ok := directive(c.Text, name)
		if !ok {
			continue
		}
		if found {
			return "", false, fmt.Errorf("%w: %s given twice", ErrSyntax, name)
		}
		found, text = true, rest
	}
	return text, found, nil
}

// LoadSource builds the declaration of typeName from the directives in the
// package in dir.
func LoadSource(dir, typeName string) (*Decl, error) {
	p, err := loadPackage(dir)
	if err != nil {
		return nil, err
	}

	ts, doc := p.typeSpec(typeName)
	if ts == nil {
		return nil, fmt.Errorf("%w: type %s not found in %s", ErrNotEnum, typeName, dir)
	}
	d := &Decl{Package: p.name, Type: typeName, Pos: p.pos(ts.Pos())}

	var defects []error
	add := func(pos token.Pos, err error) {
		defects = append(defects, fmt.Errorf("%s: %w", p.pos(pos), err))
	}

	text, ok, err := findDirective(doc, taxonomyDirective)
	switch {
	case err != nil:
		add(ts.Pos(), err)
	case !ok:
		add(ts.Pos(), fmt.Errorf("%w: %s has no %s directive", ErrMissingAttr, typeName, taxonomyDirective))
	default:
		attrs, err := parseAttrs(text, taxonomyAttrs)
		if err != nil {
			add(ts.Pos(), err)
		}
		d.Prefix, d.AppType, d.Error = attrs["prefix"], attrs["app_type"], attrs["error"]
	}
	if ts.Assign.IsValid() {
		add(ts.Pos(), fmt.Errorf("%w: %s is an alias", ErrNotEnum, typeName))
	}

	consts := p.constants(typeName)
	if len(consts) == 0 {
		add(ts.Pos(), fmt.Errorf("%w: %s has no constants", ErrNotEnum, typeName))
	}
	for _, c := range consts {
		text, ok, err := findDirective(c.doc, variantDirective)
		switch {
		case err != nil:
			add(c.pos, err)
			continue
		case !ok:
			add(c.pos, fmt.Errorf("%w: %s", ErrNoDirective, c.name))
			continue
		case c.multi:
			add(c.pos, fmt.Errorf("%w: %s shares its directive with other constants", ErrSyntax, c.name))
			continue
		}
		attrs, err := parseAttrs(text, variantAttrs)
		if err != nil {
			add(c.pos, fmt.Errorf("%s: %w", c.name, err))
			continue
		}
		d.Variants = append(d.Variants, Variant{
			Name:      c.name,
			Code:      attrs["code"],
			AppCode:   attrs["app_code"],
			ClientMsg: attrs["client_msg"],
			Pos:       p.pos(c.pos),
		})
	}

	if err := p.checkErrorType(d); err != nil {
		add(ts.Pos(), err)
	}
	if len(defects) > 0 {
		return nil, errors.Join(defects...)
	}
	return d, nil
}

// checkErrorType verifies that the error type exists and, when it is not the
// enum itself, that it declares Variant() <Type>. An enum serving as its own
// error type must declare Error() string.
func (p *pkg) checkErrorType(d *Decl) error {
	name, _ := d.errorBase()
	if name == d.Type {
		if !p.hasMethod(d.Type, "Error", "string") {
			return fmt.Errorf("%w: %s is its own error type and must declare Error() string", ErrBadType, d.Type)
		}
		return nil
	}
	if ts, _ := p.typeSpec(name); ts == nil {
		return fmt.Errorf("%w: error type %s not found", ErrBadType, name)
	}
	if !p.hasMethod(name, "Variant", d.Type) {
		return fmt.Errorf("%w: %s must declare Variant() %s", ErrNoVariantMethod, name, d.Type)
	}
	return nil
}

// crossCheckPackage compares a YAML declaration with the package in dir.
// It does nothing when dir holds no Go files or does not declare the type.
func crossCheckPackage(dir string, d *Decl) error {
	p, err := loadPackage(dir)
	if errors.Is(err, errNoGoFiles) {
		return nil
	}
	if err != nil {
		return err
	}
	if ts, _ := p.typeSpec(d.Type); ts == nil {
		return nil
	}
	var names []string
	for _, c := range p.constants(d.Type) {
		names = append(names, c.name)
	}
	return errors.Join(CrossCheck(d, names), p.checkErrorType(d))
}
