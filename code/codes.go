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

package code

// Well-known codes for descriptors that do not come from a taxonomy, such as
// the fallback a transport uses for an error it cannot convert.
//
// They are lower-case words so that they never collide with a prefixed
// taxonomy code like "01IC".
const (
	// Internal describes an error that could not be classified.
	Internal Code = "internal"

	// Canceled describes a request the caller abandoned (context.Canceled).
	Canceled Code = "canceled"

	// DeadlineExceeded describes a request that ran out of time
	// (context.DeadlineExceeded).
	DeadlineExceeded Code = "deadline_exceeded"
)
