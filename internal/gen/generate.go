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
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Options selects the declaration and the output of one run.
type Options struct {
	// Dir is the package directory. It defaults to the directory of From,
	// or "." for directive input.
	Dir string

	// Type is the enum type. Required for directive input; with From it
	// must match the declared type when set.
	Type string

	// From is a YAML declaration. Empty reads directives from Dir.
	From string

	// Output is the generated file. Defaults to Dir/OutputName(Type).
	Output string

	// Strict turns app-code warnings into defects and compiles the table
	// with taxonomy.StrictAppCodes.
	Strict bool

	// Copyright is copied above the generated-code header.
	Copyright string
}

// Result is a rendered, not yet written, generated file.
type Result struct {
	Decl     *Decl
	Warnings []error
	Output   string
	Source   []byte
}

func (o Options) dir() string {
	switch {
	case o.Dir != "":
		return o.Dir
	case o.From != "":
		return filepath.Dir(o.From)
	}
	return "."
}

// Load reads and validates the declaration selected by opts.
func Load(opts Options) (*Decl, []error, error) {
	var (
		d   *Decl
		err error
	)
	if opts.From != "" {
		if d, err = LoadYAML(opts.From); err != nil {
			return nil, nil, err
		}
		if opts.Type != "" && opts.Type != d.Type {
			return nil, nil, fmt.Errorf("%w: %s declares %s, not %s", ErrMismatch, opts.From, d.Type, opts.Type)
		}
	} else {
		if opts.Type == "" {
			return nil, nil, fmt.Errorf("%w: type", ErrMissingAttr)
		}
		if d, err = LoadSource(opts.dir(), opts.Type); err != nil {
			return nil, nil, err
		}
	}

	warnings, err := Validate(d, opts.Strict)
	if opts.From != "" {
		err = errors.Join(err, crossCheckPackage(opts.dir(), d))
	}
	if err != nil {
		return nil, warnings, err
	}
	return d, warnings, nil
}

// Generate loads the declaration and renders the generated file. Nothing is
// written.
func Generate(opts Options) (*Result, error) {
	d, warnings, err := Load(opts)
	if err != nil {
		return nil, err
	}
	src, err := Render(d, RenderOptions{Strict: opts.Strict, Copyright: opts.Copyright})
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == "" {
		out = filepath.Join(opts.dir(), OutputName(d.Type))
	}
	return &Result{Decl: d, Warnings: warnings, Output: out, Source: src}, nil
}

// Check reports ErrStale when res.Output is missing or differs from
// res.Source.
func Check(res *Result) error {
	have, err := os.ReadFile(res.Output)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s does not exist", ErrStale, res.Output)
	}
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	if !bytes.Equal(have, res.Source) {
		return fmt.Errorf("%w: %s", ErrStale, res.Output)
	}
	return nil
}

// Write replaces res.Output with res.Source. The file is written to a
// temporary name first and renamed, so a failed write leaves the previous
// file in place.
func Write(res *Result) error {
	dir := filepath.Dir(res.Output)
	tmp, err := os.CreateTemp(dir, ".errinfo-gen-*")
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	name := tmp.Name()
	defer os.Remove(name)

	if _, err := tmp.Write(res.Source); err != nil {
		tmp.Close()
		return fmt.Errorf("gen: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("gen: write %s: %w", name, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	if err := os.Rename(name, res.Output); err != nil {
		return fmt.Errorf("gen: %w", err)
	}
	return nil
}
