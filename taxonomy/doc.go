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

// Package taxonomy compiles a declared error taxonomy into a total,
// immutable mapping from error variants to errinfo descriptors.
//
// # Overview
//
// A taxonomy is declared once per error enum:
//
//   - a domain prefix shared by every variant (e.g. "01");
//   - the complete, ordered list of the enum's variants;
//   - one Entry per variant: a short code, the application code in textual
//     form, and an optional client message.
//
// The application-code type T is chosen at compile time and must parse
// itself from text (errinfo.TextCode). This keeps the engine independent of
// any particular status enumeration:
//
//	var myErrorTaxonomy = taxonomy.MustCompile[httpstatus.Status](taxonomy.Declaration[MyErrorKind]{
//	    Name:     "MyErrorKind",
//	    Prefix:   "01",
//	    Variants: []MyErrorKind{InvalidCommand, InvalidArgument},
//	    Entries: map[MyErrorKind]taxonomy.Entry{
//	        InvalidCommand:  {Code: "IC", AppCode: "400"},
//	        InvalidArgument: {Code: "IA", AppCode: "400", ClientMsg: "friendly msg"},
//	    },
//	})
//
// The errinfo-gen command writes such declarations from directives on the
// enum's source, so the variant list can never fall out of sync.
//
// # Definition-time checks
//
// Compile rejects, all at once, every structural defect: a missing or
// malformed prefix, a variant without an entry, an entry for an undeclared
// variant, a missing or malformed short code, and two variants sharing a full
// code. There is no partial mode: a taxonomy compiles in full or not at all.
//
// Application codes are parsed lazily, on every conversion, unless
// StrictAppCodes is given. A declaration that names a value T rejects then
// yields a *errinfo.ParseError at conversion time, never a panic and never
// a default value.
//
// # Immutability
//
// Compile copies the declaration. A *Taxonomy is read-only afterwards and
// safe for concurrent use.
package taxonomy
