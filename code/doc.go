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

// Package code defines the fully-qualified internal error code carried by
// every errinfo descriptor.
//
// A full code is built from two declared parts:
//
//   - a domain prefix, shared by every variant of one error enum, e.g. "01"
//     or "AUTH-";
//   - a short code, unique within that enum, e.g. "IC" or "TOKEN_EXPIRED".
//
// The two parts are concatenated verbatim: Join("01", "IC") is "01IC". No
// separator is inserted, so a taxonomy that wants one encodes it in the
// prefix or the short code.
//
// Codes are case-sensitive and are never normalized. They are meant to be
// stable identifiers that clients, dashboards and support tooling can match
// on, so the same declaration must always produce byte-identical codes.
package code
