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
	"go/token"
	"strings"

	"dirpx.dev/errinfo/taxonomy"
)

var (
	// ErrMissingAttr is returned when a required attribute is absent.
	ErrMissingAttr = errors.New("gen: missing attribute")

	// ErrUnknownAttr is returned for attributes the directive does not define.
	ErrUnknownAttr = errors.New("gen: unknown attribute")

	// ErrSyntax is returned for malformed directives.
	ErrSyntax = errors.New("gen: directive syntax")

	// ErrNotEnum is returned when the target type is not a defined type with
	// at least one typed constant.
	ErrNotEnum = errors.New("gen: not an enum type")

	// ErrNoDirective is returned when a constant of the enum type has no
	// //errinfo:variant directive.
	ErrNoDirective = errors.New("gen: constant without variant directive")

	// ErrBadType is returned for malformed app_type or error attributes.
	ErrBadType = errors.New("gen: invalid type reference")

	// ErrNoVariantMethod is returned when a separate error type lacks
	// Variant() <EnumType>.
	ErrNoVariantMethod = errors.New("gen: error type has no Variant method")

	// ErrMismatch is returned when YAML variants and the enum constants differ.
	ErrMismatch = errors.New("gen: variants do not match enum constants")

	// ErrAppCode is reported for app codes a known app type rejects.
	ErrAppCode = errors.New("gen: invalid app code")

	// ErrStale is returned by Check when the generated file is out of date.
	ErrStale = errors.New("gen: generated file is stale")
)

// Decl is a taxonomy declaration as read from directives or YAML.
type Decl struct {
	Package  string    `yaml:"package"`
	Type     string    `yaml:"type"`
	Error    string    `yaml:"error,omitempty"`
	Prefix   string    `yaml:"prefix"`
	AppType  string    `yaml:"app_type"`
	Variants []Variant `yaml:"variants"`

	// Pos locates the declaration for diagnostics.
	Pos string `yaml:"-"`
}

// Variant is one enum constant and its entry.
type Variant struct {
	Name      string `yaml:"name"`
	Code      string `yaml:"code"`
	AppCode   string `yaml:"app_code,omitempty"`
	ClientMsg string `yaml:"client_msg,omitempty"`

	Pos string `yaml:"-"`
}

// FullCode returns prefix ++ code.
func (d *Decl) FullCode(v Variant) string { return d.Prefix + v.Code }

// ErrorType returns the error type receiving ToErrorInfo, defaulting to the
// enum type.
func (d *Decl) ErrorType() string {
	if d.Error == "" {
		return d.Type
	}
	return d.Error
}

// errorBase splits ErrorType into its name and whether it is a pointer.
func (d *Decl) errorBase() (name string, pointer bool) {
	e := d.ErrorType()
	return strings.TrimPrefix(e, "*"), strings.HasPrefix(e, "*")
}

// AppRef is a parsed app_type attribute.
type AppRef struct {
	// Import is the import path, empty for a type of the same package.
	Import string
	// Name is the type name.
	Name string
}

// ParseAppType parses "import/path.Type" or a bare "Type".
func ParseAppType(s string) (AppRef, error) {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		if !token.IsIdentifier(s) {
			return AppRef{}, fmt.Errorf("%w: app_type %q", ErrBadType, s)
		}
		return AppRef{Name: s}, nil
	}
	ref := AppRef{Import: s[:i], Name: s[i+1:]}
	if ref.Import == "" || strings.ContainsAny(ref.Import, " \t\"") ||
		!token.IsIdentifier(ref.Name) || !token.IsExported(ref.Name) {
		return AppRef{}, fmt.Errorf("%w: app_type %q", ErrBadType, s)
	}
	return ref, nil
}

// String returns the fully qualified form.
func (r AppRef) String() string {
	if r.Import == "" {
		return r.Name
	}
	return r.Import + "." + r.Name
}

// Validate reports every defect of d, joined. Warnings are app codes that a
// known app type rejects; with strict they are reported as defects instead.
func Validate(d *Decl, strict bool) (warnings []error, err error) {
	var defects []error
	add := func(pos string, err error) {
		if pos != "" {
			err = fmt.Errorf("%s: %w", pos, err)
		}
		defects = append(defects, err)
	}

	if d.Package == "" {
		add(d.Pos, fmt.Errorf("%w: package", ErrMissingAttr))
	} else if !token.IsIdentifier(d.Package) {
		add(d.Pos, fmt.Errorf("%w: package %q", ErrBadType, d.Package))
	}
	if !token.IsIdentifier(d.Type) {
		add(d.Pos, fmt.Errorf("%w: type %q", ErrBadType, d.Type))
	}
	if name, _ := d.errorBase(); !token.IsIdentifier(name) {
		add(d.Pos, fmt.Errorf("%w: error %q", ErrBadType, d.ErrorType()))
	}

	var ref AppRef
	if d.AppType == "" {
		add(d.Pos, fmt.Errorf("%w: app_type", ErrMissingAttr))
	} else if r, err := ParseAppType(d.AppType); err != nil {
		add(d.Pos, err)
	} else {
		ref = r
	}

	names := make([]string, 0, len(d.Variants))
	entries := make(map[string]taxonomy.Entry, len(d.Variants))
	for _, v := range d.Variants {
		if !token.IsIdentifier(v.Name) {
			add(v.Pos, fmt.Errorf("%w: variant name %q", ErrBadType, v.Name))
			continue
		}
		names = append(names, v.Name)
		if _, dup := entries[v.Name]; !dup {
			entries[v.Name] = taxonomy.Entry{Code: v.Code, AppCode: v.AppCode, ClientMsg: v.ClientMsg}
		}
	}
	if err := taxonomy.Check(taxonomy.Declaration[string]{
		Name:     d.Type,
		Prefix:   d.Prefix,
		Variants: names,
		Entries:  entries,
	}); err != nil {
		add(d.Pos, err)
	}

	if validate, ok := knownAppTypes[ref.String()]; ok {
		for _, v := range d.Variants {
			if err := validate(v.AppCode); err != nil {
				err = fmt.Errorf("%w: %s.%s: %w", ErrAppCode, d.Type, v.Name, err)
				if v.Pos != "" {
					err = fmt.Errorf("%s: %w", v.Pos, err)
				}
				if strict {
					defects = append(defects, err)
				} else {
					warnings = append(warnings, err)
				}
			}
		}
	}

	return warnings, errors.Join(defects...)
}
