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

// ErrorDescriptor is a flat, transport-friendly snapshot of a descriptor and
// its resolved statuses, intended for structured logging and diagnostics.
//
// Unlike ErrorView it may carry the cause's text, so it must stay on the
// server side.
type ErrorDescriptor struct {
	// Code is the fully-qualified internal code.
	Code string `json:"code"`

	// AppCode is the application code in its textual form.
	AppCode string `json:"app_code"`

	// HTTPStatus is the resolved HTTP status.
	HTTPStatus int `json:"http_status"`

	// GRPCCode is the resolved gRPC status code (as integer).
	GRPCCode int `json:"grpc_code"`

	// ClientMsg is the declared client message; empty when none was declared.
	ClientMsg string `json:"client_msg,omitempty"`

	// Cause is the Error text of the original error. Internal only.
	Cause string `json:"cause,omitempty"`
}
