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

// Package rpccode provides a gRPC status application-code type for errinfo
// taxonomies.
//
// Code accepts the canonical google.rpc names ("NOT_FOUND"), grpc-go's
// names ("NotFound") and the decimal value ("5").
package rpccode

import (
	"encoding"
	"errors"
	"net/http"
	"strconv"

	"google.golang.org/grpc/codes"
)

// Code is a gRPC status code usable as an errinfo application code.
type Code codes.Code

// ErrInvalid is matched (via errors.Is) by every *ParseError.
var ErrInvalid = errors.New("rpccode: invalid code")

var (
	_ encoding.TextMarshaler   = Code(0)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// ParseError is returned when text does not name a gRPC status code.
type ParseError struct {
	Input string
	// Err is the underlying strconv error for numeric input, if any.
	Err error
}

// Error implements the built-in error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return "rpccode: invalid code " + strconv.Quote(e.Input) + ": " + e.Err.Error()
	}
	return "rpccode: invalid code " + strconv.Quote(e.Input)
}

// Unwrap returns the underlying strconv error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalid) succeed for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrInvalid }

// canonical holds the google.rpc.Code enum names, indexed by code.
var canonical = [...]string{
	codes.OK:                 "OK",
	codes.Canceled:           "CANCELLED",
	codes.Unknown:            "UNKNOWN",
	codes.InvalidArgument:    "INVALID_ARGUMENT",
	codes.DeadlineExceeded:   "DEADLINE_EXCEEDED",
	codes.NotFound:           "NOT_FOUND",
	codes.AlreadyExists:      "ALREADY_EXISTS",
	codes.PermissionDenied:   "PERMISSION_DENIED",
	codes.ResourceExhausted:  "RESOURCE_EXHAUSTED",
	codes.FailedPrecondition: "FAILED_PRECONDITION",
	codes.Aborted:            "ABORTED",
	codes.OutOfRange:         "OUT_OF_RANGE",
	codes.Unimplemented:      "UNIMPLEMENTED",
	codes.Internal:           "INTERNAL",
	codes.Unavailable:        "UNAVAILABLE",
	codes.DataLoss:           "DATA_LOSS",
	codes.Unauthenticated:    "UNAUTHENTICATED",
}

// byName indexes every accepted spelling.
var byName = func() map[string]Code {
	m := make(map[string]Code, 3*len(canonical))
	for i, name := range canonical {
		c := codes.Code(i)
		m[name] = Code(c)
		m[c.String()] = Code(c)
	}
	m["CANCELED"] = Code(codes.Canceled)
	return m
}()

// Parse parses a gRPC status code name or decimal value.
func Parse(s string) (Code, error) {
	if c, ok := byName[s]; ok {
		return c, nil
	}
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, &ParseError{Input: s}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	if n >= uint64(len(canonical)) {
		return 0, &ParseError{Input: s}
	}
	return Code(n), nil
}

// GRPCCode returns c as a grpc-go status code.
func (c Code) GRPCCode() codes.Code { return codes.Code(c) }

// Valid reports whether c is one of the 17 canonical codes.
func (c Code) Valid() bool { return int(c) < len(canonical) }

// String returns the canonical google.rpc name, e.g. "NOT_FOUND".
func (c Code) String() string {
	if c.Valid() {
		return canonical[c]
	}
	return "Code(" + strconv.FormatInt(int64(c), 10) + ")"
}

// MarshalText implements encoding.TextMarshaler using the canonical name.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &ParseError{Input: c.String()}
	}
	return []byte(canonical[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HTTPStatus projects c onto HTTP using the mapping documented for
// google.rpc.Code.
func (c Code) HTTPStatus() int {
	switch codes.Code(c) {
	case codes.OK:
		return http.StatusOK
	case codes.Canceled:
		return 499
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.Unimplemented:
		return http.StatusNotImplemented
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
