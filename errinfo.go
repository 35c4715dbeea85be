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

import (
	"encoding"
	"fmt"

	"dirpx.dev/errinfo/code"
)

// TextCode is the constraint every application-code type must satisfy: a
// pointer to it parses the type from its textual form.
//
// encoding.TextUnmarshaler is the standard Go contract for that, which keeps
// this package independent of any particular status enumeration.
type TextCode[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// ErrorInfo is the structured, client-safe descriptor of one error occurrence.
//
// A descriptor is built on demand for every conversion and is never cached.
// It is a plain value: copying it is cheap and nothing mutates it after
// construction.
type ErrorInfo[T any] struct {
	// AppCode is the application/protocol status parsed from the taxonomy
	// declaration, e.g. 400 for an HTTP status type.
	AppCode T

	// Code is the fully-qualified internal code, e.g. "01IC".
	Code code.Code

	// ClientMsg is the message that may be shown to external clients. It is
	// empty when the taxonomy did not declare one; use Message for the
	// fallback rendering.
	ClientMsg string

	// Cause is the error value the descriptor was built from. It is retained
	// for internal logging and must never be sent to clients.
	Cause error
}

// TryNew builds a descriptor, parsing appCode into T.
//
// Parsing is the only fallible step: c and clientMsg are opaque. On failure
// the returned error is a *ParseError wrapping the error reported by T's
// UnmarshalText, and the returned descriptor is the zero value.
func TryNew[T any, PT TextCode[T]](appCode string, c code.Code, clientMsg string, cause error) (ErrorInfo[T], error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(appCode)); err != nil {
		return ErrorInfo[T]{}, &ParseError{
			Type:  fmt.Sprintf("%T", v),
			Input: appCode,
			Err:   err,
		}
	}
	return ErrorInfo[T]{
		AppCode:   v,
		Code:      c,
		ClientMsg: clientMsg,
		Cause:     cause,
	}, nil
}

// Message returns the text to show to a client: ClientMsg when it was
// declared, otherwise the cause's own Error text.
//
// The fallback is a convention of the consuming layer; ClientMsg itself stays
// empty. Returns "" when there is neither a message nor a cause.
func (i ErrorInfo[T]) Message() string {
	if i.ClientMsg != "" {
		return i.ClientMsg
	}
	if i.Cause != nil {
		return i.Cause.Error()
	}
	return ""
}

// HasClientMsg reports whether the taxonomy declared a client message.
func (i ErrorInfo[T]) HasClientMsg() bool { return i.ClientMsg != "" }

// String renders the descriptor for logs:
//
//	<code> (<app code>): <message>
func (i ErrorInfo[T]) String() string {
	return fmt.Sprintf("%s (%v): %s", i.Code, i.AppCode, i.Message())
}

// ParseError reports that a declared application code could not be parsed
// into the target application-code type.
//
// It is a declaration defect surfaced at conversion time: the taxonomy names
// a value T does not accept.
type ParseError struct {
	// Type is the Go type the value was parsed into, e.g. "httpstatus.Status".
	Type string

	// Input is the declared application code.
	Input string

	// Err is the error returned by the type's UnmarshalText.
	Err error
}

// Error implements the built-in error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("errinfo: cannot parse app code %q as %s: %v", e.Input, e.Type, e.Err)
}

// Unwrap returns the type's own parse error, enabling errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }
