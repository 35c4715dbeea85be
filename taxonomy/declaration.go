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
	"fmt"

	"dirpx.dev/errinfo/code"
)

// Entry is the declaration of one variant.
type Entry struct {
	// Code is the variant's short code. Required.
	Code string `yaml:"code" json:"code"`

	// AppCode is the textual application code, parsed into the taxonomy's
	// application-code type on conversion. Defaults to "".
	AppCode string `yaml:"app_code,omitempty" json:"app_code,omitempty"`

	// ClientMsg is the client-safe message. Defaults to "".
	ClientMsg string `yaml:"client_msg,omitempty" json:"client_msg,omitempty"`
}

// Declaration is the complete taxonomy of one error enum with variant type K.
type Declaration[K comparable] struct {
	// Name identifies the taxonomy in diagnostics, usually the enum's type
	// name.
	Name string

	// Prefix is the domain prefix prepended to every short code. Required.
	Prefix string

	// Variants lists every variant of the enum, in declaration order.
	Variants []K

	// Entries holds exactly one Entry per variant.
	Entries map[K]Entry
}

// Classified is implemented by error values that belong to an enum with
// variant type K.
type Classified[K comparable] interface {
	error

	// Variant returns the receiver's variant.
	Variant() K
}

// Descriptor is the compiled form of one variant's entry.
type Descriptor[K comparable] struct {
	Variant   K
	Code      code.Code // prefix ++ short code
	Short     string
	AppCode   string
	ClientMsg string
}

// variantName renders a variant for diagnostics. Variants implementing
// fmt.Stringer (e.g. via the stringer tool) render by name.
func variantName[K comparable](v K) string {
	return fmt.Sprint(v)
}
