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

// Option configures compilation. Options are applied to an internal builder
// before the declaration is checked.
type Option func(*builder)

type builder struct {
	// requireAppCode turns an empty AppCode into a definition-time defect.
	requireAppCode bool

	// strictAppCodes parses every AppCode during Compile instead of leaving
	// parse failures to conversion time.
	strictAppCodes bool
}

func newBuilder(opts []Option) *builder {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RequireAppCode makes an empty application code a definition-time defect.
//
// Without it an empty AppCode is accepted (it is the declared default) and
// its parse outcome is decided by the application-code type.
func RequireAppCode() Option {
	return func(b *builder) { b.requireAppCode = true }
}

// StrictAppCodes makes Compile parse every application code into the
// taxonomy's application-code type and report failures as ErrAppCode
// defects. Conversion of a strictly compiled taxonomy cannot fail with a
// parse error.
//
// Check ignores this option: it does not know the application-code type.
func StrictAppCodes() Option {
	return func(b *builder) { b.strictAppCodes = true }
}
