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

// Package httpx writes errinfo descriptors as HTTP responses.
//
// A Writer resolves an error into a descriptor (falling back to a
// caller-supplied descriptor for errors that do not convert), logs it, and
// writes a google.rpc.Status JSON body with the descriptor's HTTP status.
// Writer.Gin provides the same resolution as gin middleware.
package httpx
