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

// Package example is a complete taxonomy: an error enum declared with
// errinfo directives and the code errinfo-gen generates for it.
package example

import "fmt"

//go:generate go run dirpx.dev/errinfo/cmd/errinfo-gen generate --type MyErrorKind --copyright-file ../../hack/boilerplate.go.txt

// MyErrorKind classifies MyError.
//
//errinfo:taxonomy prefix=01 app_type=dirpx.dev/errinfo/httpstatus.Status error=*MyError
type MyErrorKind int

const (
	//errinfo:variant code=IC app_code=400
	InvalidCommand MyErrorKind = iota

	//errinfo:variant code=IA app_code=400 client_msg="friendly msg"
	InvalidArgument

	//errinfo:variant code=RE app_code=500 client_msg="storage unavailable"
	RespError

	// Misconfigured declares an app code that httpstatus.Status rejects.
	//
	//errinfo:variant code=MC app_code=bad
	Misconfigured
)

var kindNames = [...]string{
	InvalidCommand:  "InvalidCommand",
	InvalidArgument: "InvalidArgument",
	RespError:       "RespError",
	Misconfigured:   "Misconfigured",
}

func (k MyErrorKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("MyErrorKind(%d)", int(k))
}

// MyError is an application error with a kind and a free-form detail.
type MyError struct {
	Kind   MyErrorKind
	Detail string
	Err    error
}

// New returns a MyError of kind k.
func New(k MyErrorKind, detail string) *MyError {
	return &MyError{Kind: k, Detail: detail}
}

func (e *MyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *MyError) Unwrap() error { return e.Err }

// Variant returns the kind, selecting the taxonomy entry.
func (e *MyError) Variant() MyErrorKind { return e.Kind }
