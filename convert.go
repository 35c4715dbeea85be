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

package errinfo

import "errors"

// ToErrorInfo is implemented by error types that can describe themselves as
// a descriptor with application-code type T.
//
// Implementations are usually generated from a taxonomy declaration and
// delegate to a compiled taxonomy table.
type ToErrorInfo[T any] interface {
	error

	// ToErrorInfo builds a fresh descriptor for the receiver. The error is
	// non-nil only when the declared application code does not parse into T
	// (a *ParseError) or the receiver's variant is outside its taxonomy.
	ToErrorInfo() (ErrorInfo[T], error)
}

// ErrUnclassified is returned by Convert for errors that do not implement
// ToErrorInfo for the requested application-code type.
var ErrUnclassified = errors.New("errinfo: error does not implement ToErrorInfo")

// Convert builds the descriptor for err.
//
// Only err itself is inspected: wrapped errors are not unwrapped, so a
// classified error wrapped with fmt.Errorf("...: %w") is reported as
// ErrUnclassified. Callers that wrap must convert before wrapping.
func Convert[T any](err error) (ErrorInfo[T], error) {
	te, ok := err.(ToErrorInfo[T])
	if !ok {
		return ErrorInfo[T]{}, ErrUnclassified
	}
	return te.ToErrorInfo()
}
