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

package httpstatus

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"100", 100},
		{"200", http.StatusOK},
		{"400", http.StatusBadRequest},
		{"499", 499},
		{"599", 599},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		numeric bool
	}{
		{"empty", "", false},
		{"word", "bad", true},
		{"not a status", "not-a-status", false},
		{"too small", "099", false},
		{"too large", "600", false},
		{"signed", "+40", false},
		{"padded", " 400", false},
		{"four digits", "4000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %d, want error", tt.in, got)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalid", tt.in, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) || pe.Input != tt.in {
				t.Fatalf("Parse(%q) error = %#v, want *ParseError with input", tt.in, err)
			}
			var ne *strconv.NumError
			if got := errors.As(err, &ne); got != tt.numeric {
				t.Fatalf("Parse(%q): errors.As(*strconv.NumError) = %v, want %v", tt.in, got, tt.numeric)
			}
		})
	}
}

func TestStatus_UnmarshalText(t *testing.T) {
	var s Status
	if err := s.UnmarshalText([]byte("404")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if s != http.StatusNotFound {
		t.Fatalf("UnmarshalText = %d, want 404", s)
	}

	before := s
	if err := s.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("UnmarshalText expected error")
	}
	if s != before {
		t.Fatalf("failed UnmarshalText must not modify the receiver")
	}
}

func TestStatus_MarshalText(t *testing.T) {
	text, err := Status(503).MarshalText()
	if err != nil || string(text) != "503" {
		t.Fatalf("MarshalText = %q, %v; want 503", text, err)
	}
	if _, err := Status(42).MarshalText(); err == nil {
		t.Fatalf("MarshalText must reject out-of-range status")
	}
}

func TestStatus_String(t *testing.T) {
	if got := Status(400).String(); got != "400 Bad Request" {
		t.Fatalf("String() = %q", got)
	}
	if got := Status(499).String(); got != "499" {
		t.Fatalf("String() = %q, want bare number for unregistered status", got)
	}
}

func TestStatus_Classes(t *testing.T) {
	if !Status(404).IsClientError() || Status(404).IsServerError() {
		t.Fatalf("404 must be a client error only")
	}
	if !Status(503).IsServerError() || Status(503).IsClientError() {
		t.Fatalf("503 must be a server error only")
	}
}

func TestStatus_GRPCCode(t *testing.T) {
	tests := []struct {
		in   Status
		want codes.Code
	}{
		{400, codes.InvalidArgument},
		{401, codes.Unauthenticated},
		{403, codes.PermissionDenied},
		{404, codes.NotFound},
		{409, codes.Aborted},
		{418, codes.FailedPrecondition},
		{429, codes.ResourceExhausted},
		{499, codes.Canceled},
		{500, codes.Internal},
		{503, codes.Unavailable},
		{504, codes.DeadlineExceeded},
		{507, codes.Internal},
		{204, codes.OK},
		{302, codes.Unknown},
	}
	for _, tt := range tests {
		if got := tt.in.GRPCCode(); got != tt.want {
			t.Errorf("Status(%d).GRPCCode() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
