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
)

var (
	// ErrNoPrefix is reported when the declaration has no domain prefix.
	ErrNoPrefix = errors.New("taxonomy: prefix is not declared")

	// ErrNoVariants is reported for a declaration without variants.
	ErrNoVariants = errors.New("taxonomy: no variants declared")

	// ErrDuplicateVariant is reported when a variant is listed twice.
	ErrDuplicateVariant = errors.New("taxonomy: variant listed more than once")

	// ErrMissingEntry is reported for a variant that has no entry.
	ErrMissingEntry = errors.New("taxonomy: variant has no entry")

	// ErrUnknownVariant is reported for an entry whose variant is not listed,
	// and returned (inside *UnknownVariantError) when converting a value
	// outside the declared variants.
	ErrUnknownVariant = errors.New("taxonomy: unknown variant")

	// ErrMissingCode is reported for an entry without a short code.
	ErrMissingCode = errors.New("taxonomy: short code is not declared")

	// ErrMissingAppCode is reported for an entry without an application code
	// when RequireAppCode is in effect.
	ErrMissingAppCode = errors.New("taxonomy: app code is not declared")

	// ErrDuplicateCode is reported when two variants produce the same full
	// code.
	ErrDuplicateCode = errors.New("taxonomy: duplicate code")

	// ErrAppCode is reported under StrictAppCodes for an application code
	// that does not parse into the taxonomy's application-code type.
	ErrAppCode = errors.New("taxonomy: app code does not parse")

	// ErrNilError is returned by Taxonomy.Info for a nil error.
	ErrNilError = errors.New("taxonomy: nil error")
)

// DefinitionError is one defect found while checking a declaration.
//
// Check and Compile join every defect with errors.Join, so callers can list
// them all or match a specific one with errors.Is / errors.As.
type DefinitionError struct {
	// Taxonomy is the declaration's Name.
	Taxonomy string

	// Variant is the offending variant; empty for declaration-level defects.
	Variant string

	// Err is the defect, one of the package sentinels, possibly wrapped
	// with detail.
	Err error
}

// Error implements the built-in error interface.
func (e *DefinitionError) Error() string {
	switch {
	case e.Taxonomy != "" && e.Variant != "":
		return fmt.Sprintf("%s.%s: %v", e.Taxonomy, e.Variant, e.Err)
	case e.Variant != "":
		return fmt.Sprintf("%s: %v", e.Variant, e.Err)
	case e.Taxonomy != "":
		return fmt.Sprintf("%s: %v", e.Taxonomy, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying defect.
func (e *DefinitionError) Unwrap() error { return e.Err }

// UnknownVariantError is returned when converting an error whose variant is
// not part of the compiled taxonomy, e.g. a forged constant value.
type UnknownVariantError struct {
	Taxonomy string
	Variant  string
}

// Error implements the built-in error interface.
func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("taxonomy: %s has no variant %s", e.Taxonomy, e.Variant)
}

// Is makes errors.Is(err, ErrUnknownVariant) succeed.
func (e *UnknownVariantError) Is(target error) bool { return target == ErrUnknownVariant }
