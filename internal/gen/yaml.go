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
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a declaration from a YAML file:
//
//	package: example
//	type: MyErrorKind
//	error: "*MyError"
//	prefix: "01"
//	app_type: dirpx.dev/errinfo/httpstatus.Status
//	variants:
//	  - name: InvalidCommand
//	    code: IC
//	    app_code: "400"
//
// Unknown fields and multiple documents are rejected.
func LoadYAML(path string) (*Decl, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gen: read declaration: %w", err)
	}
	var d Decl
	if err := decodeStrict(b, &d); err != nil {
		return nil, fmt.Errorf("gen: %s: %w", path, err)
	}
	d.Pos = path
	for i := range d.Variants {
		d.Variants[i].Pos = fmt.Sprintf("%s: variants[%d]", path, i)
	}
	return &d, nil
}

func decodeStrict(b []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrSyntax)
		}
		return err
	}

	var extra any
	if err := dec.Decode(&extra); err == nil {
		return fmt.Errorf("%w: multiple YAML documents", ErrSyntax)
	} else if !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// MarshalYAML renders d in the form LoadYAML reads.
func MarshalYAML(d *Decl) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CrossCheck reports variants of d that are not constants of the enum and
// constants that have no variant.
func CrossCheck(d *Decl, consts []string) error {
	var defects []error
	for _, v := range d.Variants {
		if !slices.Contains(consts, v.Name) {
			defects = append(defects, fmt.Errorf("%w: %s is not a constant of %s", ErrMismatch, v.Name, d.Type))
		}
	}
	for _, c := range consts {
		if !slices.ContainsFunc(d.Variants, func(v Variant) bool { return v.Name == c }) {
			defects = append(defects, fmt.Errorf("%w: constant %s has no variant", ErrMismatch, c))
		}
	}
	return errors.Join(defects...)
}
