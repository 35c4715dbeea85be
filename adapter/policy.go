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

package adapter

import (
	"net/http"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/apis"
)

// MessagePolicy decides what a client sees when a variant declares no
// client message.
type MessagePolicy int

const (
	// MessageFromCause falls back to the cause's Error text. This is the
	// documented errinfo convention (see errinfo.ErrorInfo.Message) and the
	// zero value.
	MessageFromCause MessagePolicy = iota

	// MessageFromStatus falls back to the standard text of the resolved
	// HTTP status, e.g. "Bad Request". Use it where error texts may contain
	// internal details.
	MessageFromStatus

	// MessageOmit leaves the message empty.
	MessageOmit
)

// String implements fmt.Stringer.
func (p MessagePolicy) String() string {
	switch p {
	case MessageFromCause:
		return "cause"
	case MessageFromStatus:
		return "status"
	case MessageOmit:
		return "omit"
	}
	return "unknown"
}

// messageFor applies p to info.
func messageFor[T apis.StatusCoder](p MessagePolicy, info errinfo.ErrorInfo[T]) string {
	if info.ClientMsg != "" {
		return info.ClientMsg
	}
	switch p {
	case MessageFromStatus:
		return http.StatusText(info.AppCode.HTTPStatus())
	case MessageOmit:
		return ""
	}
	return info.Message()
}
