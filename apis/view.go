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

package apis

// ErrorView is the client-facing rendering of a descriptor.
//
// It contains only what is safe to disclose: the full code, the application
// code in its textual form and the client message. The cause is never part
// of a view.
type ErrorView struct {
	// Code is the fully-qualified internal code, e.g. "01IC".
	Code string `json:"code"`

	// Status is the application code as text, e.g. "400 Bad Request" or
	// "NOT_FOUND".
	Status string `json:"status,omitempty"`

	// Message is the client message, or the fallback chosen by the adapter
	// when none was declared.
	Message string `json:"message,omitempty"`
}
