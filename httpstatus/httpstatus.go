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

// Package httpstatus provides an HTTP status application-code type for
// errinfo taxonomies.
//
// Status parses from the three-digit decimal form used in declarations
// (app_code=400) and projects itself onto gRPC with a conservative,
// REST-style mapping.
package httpstatus

import (
	"encoding"
	"errors"
	"net/http"
	"strconv"

	"google.golang.org/grpc/codes"
)

// Status is an HTTP status code in the range 100..599.
type Status int

// Range of accepted status codes.
const (
	Min Status = 100
	Max Status = 599
)

// ErrInvalid is matched (via errors.Is) by every *ParseError.
var ErrInvalid = errors.New("httpstatus: invalid status")

var (
	_ encoding.TextMarshaler   = Status(0)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// ParseError is returned when text is not a three-digit HTTP status.
type ParseError struct {
	Input string
	// Err is the underlying strconv error, if the input was not numeric.
	Err error
}

// Error implements the built-in error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return "httpstatus: invalid status " + strconv.Quote(e.Input) + ": " + e.Err.Error()
	}
	return "httpstatus: invalid status " + strconv.Quote(e.Input)
}

// Unwrap returns the underlying strconv error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalid) succeed for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrInvalid }

// Parse parses a three-digit decimal status in 100..599.
func Parse(s string) (Status, error) {
	if len(s) != 3 {
		return 0, &ParseError{Input: s}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	st := Status(n)
	if !st.Valid() {
		return 0, &ParseError{Input: s}
	}
	return st, nil
}

// Valid reports whether s is in 100..599.
func (s Status) Valid() bool { return s >= Min && s <= Max }

// Int returns s as a net/http compatible int.
func (s Status) Int() int { return int(s) }

// HTTPStatus returns s as a net/http compatible int.
func (s Status) HTTPStatus() int { return int(s) }

// IsClientError reports whether s is a 4xx status.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError reports whether s is a 5xx status.
func (s Status) IsServerError() bool { return s >= 500 && s <= Max }

// String returns the status with its reason phrase, e.g. "400 Bad Request".
// Statuses without a registered phrase render as the bare number.
func (s Status) String() string {
	if text := http.StatusText(int(s)); text != "" {
		return strconv.Itoa(int(s)) + " " + text
	}
	return strconv.Itoa(int(s))
}

// MarshalText implements encoding.TextMarshaler using the bare number.
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &ParseError{Input: strconv.Itoa(int(s))}
	}
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	st, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// GRPCCode projects s onto a gRPC status code.
//
// Well-known statuses use the mapping below; otherwise 2xx is OK, other 4xx
// is FailedPrecondition and other 5xx is Internal. Anything else is Unknown.
func (s Status) GRPCCode() codes.Code {
	if c, ok := toGRPC[s]; ok {
		return c
	}
	switch {
	case s >= 200 && s < 300:
		return codes.OK
	case s.IsClientError():
		return codes.FailedPrecondition
	case s.IsServerError():
		return codes.Internal
	}
	return codes.Unknown
}

var toGRPC = map[Status]codes.Code{
	http.StatusBadRequest:                   codes.InvalidArgument,
	http.StatusUnauthorized:                 codes.Unauthenticated,
	http.StatusForbidden:                    codes.PermissionDenied,
	http.StatusNotFound:                     codes.NotFound,
	http.StatusMethodNotAllowed:             codes.Unimplemented,
	http.StatusRequestTimeout:               codes.DeadlineExceeded,
	http.StatusConflict:                     codes.Aborted,
	http.StatusGone:                         codes.NotFound, // gRPC has no 410
	http.StatusPreconditionFailed:           codes.FailedPrecondition,
	http.StatusRequestEntityTooLarge:        codes.OutOfRange,
	http.StatusRequestedRangeNotSatisfiable: codes.OutOfRange,
	http.StatusUnprocessableEntity:          codes.InvalidArgument,
	http.StatusTooEarly:                     codes.FailedPrecondition,
	http.StatusTooManyRequests:              codes.ResourceExhausted,
	499:                                     codes.Canceled, // nginx "client closed request"
	http.StatusInternalServerError:          codes.Internal,
	http.StatusNotImplemented:               codes.Unimplemented,
	http.StatusBadGateway:                   codes.Unavailable,
	http.StatusServiceUnavailable:           codes.Unavailable,
	http.StatusGatewayTimeout:               codes.DeadlineExceeded,
}
