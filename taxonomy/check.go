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
	"sort"

	"dirpx.dev/errinfo/code"
)

// Check validates the structure of d without compiling it.
//
// It reports every defect it finds, joined with errors.Join; each defect is
// a *DefinitionError. A nil result means Compile will not reject d for
// structural reasons.
func Check[K comparable](d Declaration[K], opts ...Option) error {
	if defects := check(d, newBuilder(opts)); len(defects) > 0 {
		return errors.Join(defects...)
	}
	return nil
}

func check[K comparable](d Declaration[K], b *builder) []error {
	var defects []error
	add := func(variant string, err error) {
		defects = append(defects, &DefinitionError{Taxonomy: d.Name, Variant: variant, Err: err})
	}

	// (1) Declaration-level attributes.
	prefixOK := false
	switch err := code.ValidatePrefix(d.Prefix); {
	case d.Prefix == "":
		add("", ErrNoPrefix)
	case err != nil:
		add("", err)
	default:
		prefixOK = true
	}
	if len(d.Variants) == 0 {
		add("", ErrNoVariants)
	}

	// (2) Per-variant entries, in declaration order so that the first
	// variant to claim a full code owns it.
	seen := make(map[K]struct{}, len(d.Variants))
	owners := make(map[code.Code]K, len(d.Variants))
	for _, v := range d.Variants {
		name := variantName(v)
		if _, dup := seen[v]; dup {
			add(name, ErrDuplicateVariant)
			continue
		}
		seen[v] = struct{}{}

		e, ok := d.Entries[v]
		if !ok {
			add(name, ErrMissingEntry)
			continue
		}
		if b.requireAppCode && e.AppCode == "" {
			add(name, ErrMissingAppCode)
		}
		if e.Code == "" {
			add(name, ErrMissingCode)
			continue
		}
		if err := code.ValidateShort(e.Code); err != nil {
			add(name, err)
			continue
		}
		if !prefixOK {
			continue
		}
		full := code.Join(d.Prefix, e.Code)
		if err := code.Validate(full); err != nil {
			add(name, err)
			continue
		}
		if prev, taken := owners[full]; taken {
			add(name, fmt.Errorf("%w: %q is already used by %s", ErrDuplicateCode, full, variantName(prev)))
			continue
		}
		owners[full] = v
	}

	// (3) Entries for variants that were never listed. Map order is random,
	// so sort by name for stable reports.
	var unknown []string
	for v := range d.Entries {
		if _, ok := seen[v]; !ok {
			unknown = append(unknown, variantName(v))
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		add(name, ErrUnknownVariant)
	}

	return defects
}
