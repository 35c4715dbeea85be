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

// Package errinfo turns application errors into stable, client-safe
// descriptors.
//
// A descriptor (ErrorInfo) carries:
//
//   - AppCode: an application/protocol status (an HTTP status, a gRPC code,
//     or any type that can parse itself from text);
//   - Code: the fully-qualified internal code, prefix followed by short code;
//   - ClientMsg: an optional message that is safe to show to clients;
//   - Cause: the original error, kept for internal logging only.
//
// Error types opt in by implementing ToErrorInfo. The usual way to do that is
// to declare a taxonomy for the error's variants (see package taxonomy, or
// the errinfo-gen command) and let the compiled table build the descriptor:
//
//	func (e *MyError) ToErrorInfo() (errinfo.ErrorInfo[httpstatus.Status], error) {
//	    return myErrorTaxonomy.Info(e)
//	}
//
// Conversion is fallible only in one place: parsing the declared application
// code into T. That failure is reported as a *ParseError carrying T's own
// parse error; callers decide how to fall back.
package errinfo
