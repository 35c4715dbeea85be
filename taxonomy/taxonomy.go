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

package taxonomy

import (
	"errors"
	"fmt"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/code"
)

// Taxonomy is a compiled, immutable variant-to-descriptor table with
// application-code type T and variant type K.
type Taxonomy[T any, K comparable] struct {
	name   string
	prefix string

	// order holds the compiled entries in declaration order.
	order []Descriptor[K]

	// index maps a variant to its position in order.
	index map[K]int

	// byCode maps a full code back to its variant. Codes are unique, so the
	// reverse mapping is well defined.
	byCode map[code.Code]K

	// tryNew is errinfo.TryNew instantiated for T.
	tryNew func(appCode string, c code.Code, clientMsg string, cause error) (errinfo.ErrorInfo[T], error)
}

// Compile checks d and freezes it into a Taxonomy whose descriptors carry
// application codes of type T.
//
// Errors are definition-time defects (see Check); with StrictAppCodes they
// also include application codes that do not parse into T. On error no
// Taxonomy is returned.
func Compile[T any, PT errinfo.TextCode[T], K comparable](d Declaration[K], opts ...Option) (*Taxonomy[T, K], error) {
	b := newBuilder(opts)

	// (1) Structural checks.
	defects := check(d, b)

	// (2) Optional eager parse of every application code.
	if b.strictAppCodes {
		parsed := make(map[K]struct{}, len(d.Variants))
		for _, v := range d.Variants {
			e, ok := d.Entries[v]
			if _, done := parsed[v]; !ok || done {
				continue
			}
			parsed[v] = struct{}{}
			if _, err := errinfo.TryNew[T, PT](e.AppCode, code.Empty, "", nil); err != nil {
				defects = append(defects, &DefinitionError{
					Taxonomy: d.Name,
					Variant:  variantName(v),
					Err:      fmt.Errorf("%w: %w", ErrAppCode, err),
				})
			}
		}
	}
	if len(defects) > 0 {
		return nil, errors.Join(defects...)
	}

	// (3) Freeze into fresh allocations; later changes to d are not seen.
	t := &Taxonomy[T, K]{
		name:   d.Name,
		prefix: d.Prefix,
		order:  make([]Descriptor[K], 0, len(d.Variants)),
		index:  make(map[K]int, len(d.Variants)),
		byCode: make(map[code.Code]K, len(d.Variants)),
		tryNew: errinfo.TryNew[T, PT],
	}
	for _, v := range d.Variants {
		e := d.Entries[v]
		full := code.Join(d.Prefix, e.Code)
		t.index[v] = len(t.order)
		t.byCode[full] = v
		t.order = append(t.order, Descriptor[K]{
			Variant:   v,
			Code:      full,
			Short:     e.Code,
			AppCode:   e.AppCode,
			ClientMsg: e.ClientMsg,
		})
	}
	return t, nil
}

// MustCompile is the panic-on-error variant of Compile, for package-level
// tables and generated code.
func MustCompile[T any, PT errinfo.TextCode[T], K comparable](d Declaration[K], opts ...Option) *Taxonomy[T, K] {
	t, err := Compile[T, PT](d, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Info builds the descriptor for e, keeping e itself as the cause.
//
// It fails only when the declared application code does not parse into T
// (*errinfo.ParseError) or when e's variant is not part of the taxonomy
// (*UnknownVariantError).
func (t *Taxonomy[T, K]) Info(e Classified[K]) (errinfo.ErrorInfo[T], error) {
	if e == nil {
		return errinfo.ErrorInfo[T]{}, ErrNilError
	}
	return t.Describe(e.Variant(), e)
}

// Describe builds the descriptor of variant v with an arbitrary cause. It is
// the building block of Info for error types that do not implement
// Classified.
func (t *Taxonomy[T, K]) Describe(v K, cause error) (errinfo.ErrorInfo[T], error) {
	i, ok := t.index[v]
	if !ok {
		return errinfo.ErrorInfo[T]{}, &UnknownVariantError{Taxonomy: t.name, Variant: variantName(v)}
	}
	d := t.order[i]
	return t.tryNew(d.AppCode, d.Code, d.ClientMsg, cause)
}

// Lookup returns the compiled entry of v.
func (t *Taxonomy[T, K]) Lookup(v K) (Descriptor[K], bool) {
	i, ok := t.index[v]
	if !ok {
		return Descriptor[K]{}, false
	}
	return t.order[i], true
}

// ByCode returns the variant that owns the full code c.
func (t *Taxonomy[T, K]) ByCode(c code.Code) (K, bool) {
	v, ok := t.byCode[c]
	return v, ok
}

// Entries returns every compiled entry in declaration order. The slice is a
// copy and may be modified by the caller.
func (t *Taxonomy[T, K]) Entries() []Descriptor[K] {
	out := make([]Descriptor[K], len(t.order))
	copy(out, t.order)
	return out
}

// Name returns the declaration's name.
func (t *Taxonomy[T, K]) Name() string { return t.name }

// Prefix returns the domain prefix.
func (t *Taxonomy[T, K]) Prefix() string { return t.prefix }

// Len returns the number of variants.
func (t *Taxonomy[T, K]) Len() int { return len(t.order) }

// Explain returns a one-line, human-readable account of how v is mapped.
// It is meant for debugging and tests, not for machine parsing.
//
// Example output:
//
//	taxonomy="MyErrorKind" variant=InvalidArgument code="01IA" app_code="400" client_msg="friendly msg"
func (t *Taxonomy[T, K]) Explain(v K) string {
	d, ok := t.Lookup(v)
	if !ok {
		return fmt.Sprintf("taxonomy=%q variant=%s source=unknown", t.name, variantName(v))
	}
	return fmt.Sprintf("taxonomy=%q variant=%s code=%q app_code=%q client_msg=%q",
		t.name, variantName(v), d.Code, d.AppCode, d.ClientMsg)
}
