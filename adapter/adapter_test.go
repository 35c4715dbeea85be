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

package adapter_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/adapter"
	"dirpx.dev/errinfo/apis"
	"dirpx.dev/errinfo/code"
	"dirpx.dev/errinfo/httpstatus"
	"dirpx.dev/errinfo/rpccode"
)

type notFound struct{}

func (notFound) Error() string { return "user 42 missing in shard 7" }

func (e notFound) ToErrorInfo() (errinfo.ErrorInfo[httpstatus.Status], error) {
	return errinfo.TryNew[httpstatus.Status]("404", "01NF", "", e)
}

type broken struct{}

func (broken) Error() string { return "broken" }

func (e broken) ToErrorInfo() (errinfo.ErrorInfo[httpstatus.Status], error) {
	return errinfo.TryNew[httpstatus.Status]("bad", "01BR", "", e)
}

var fallback = adapter.Static[httpstatus.Status](500, "00INTERNAL", "internal error")

func TestResolve(t *testing.T) {
	plain := errors.New("plain")
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantErr  error
	}{
		{name: "classified", err: notFound{}, wantCode: "01NF"},
		{name: "unclassified", err: plain, wantCode: "00INTERNAL", wantErr: errinfo.ErrUnclassified},
		{name: "bad declaration", err: broken{}, wantCode: "00INTERNAL", wantErr: httpstatus.ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := adapter.Resolve(tt.err, fallback)
			if string(info.Code) != tt.wantCode {
				t.Fatalf("Code = %q, want %q", info.Code, tt.wantCode)
			}
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Resolve error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve error = %v, want %v", err, tt.wantErr)
			}
			if info.Cause != tt.err {
				t.Fatalf("Cause = %v, want the original error", info.Cause)
			}
		})
	}
}

func TestToView_Policies(t *testing.T) {
	bare, err := notFound{}.ToErrorInfo()
	if err != nil {
		t.Fatal(err)
	}
	withMsg := bare
	withMsg.ClientMsg = "no such user"

	tests := []struct {
		name   string
		info   errinfo.ErrorInfo[httpstatus.Status]
		policy adapter.MessagePolicy
		want   apis.ErrorView
	}{
		{
			name:   "declared message wins",
			info:   withMsg,
			policy: adapter.MessageOmit,
			want:   apis.ErrorView{Code: "01NF", Status: "404 Not Found", Message: "no such user"},
		},
		{
			name:   "cause",
			info:   bare,
			policy: adapter.MessageFromCause,
			want:   apis.ErrorView{Code: "01NF", Status: "404 Not Found", Message: "user 42 missing in shard 7"},
		},
		{
			name:   "status",
			info:   bare,
			policy: adapter.MessageFromStatus,
			want:   apis.ErrorView{Code: "01NF", Status: "404 Not Found", Message: "Not Found"},
		},
		{
			name:   "omit",
			info:   bare,
			policy: adapter.MessageOmit,
			want:   apis.ErrorView{Code: "01NF", Status: "404 Not Found"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, adapter.ToView(tt.info, tt.policy)); diff != "" {
				t.Fatalf("ToView mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToDescriptor(t *testing.T) {
	info, err := errinfo.TryNew[rpccode.Code]("UNAVAILABLE", "ST503", "try later", errors.New("pool exhausted"))
	if err != nil {
		t.Fatal(err)
	}
	want := apis.ErrorDescriptor{
		Code:       "ST503",
		AppCode:    "UNAVAILABLE",
		HTTPStatus: 503,
		GRPCCode:   14,
		ClientMsg:  "try later",
		Cause:      "pool exhausted",
	}
	if diff := cmp.Diff(want, adapter.ToDescriptor(info)); diff != "" {
		t.Fatalf("ToDescriptor mismatch (-want +got):\n%s", diff)
	}
}

func TestMessagePolicy_String(t *testing.T) {
	for p, want := range map[adapter.MessagePolicy]string{
		adapter.MessageFromCause:  "cause",
		adapter.MessageFromStatus: "status",
		adapter.MessageOmit:       "omit",
		adapter.MessagePolicy(9):  "unknown",
	} {
		if got := p.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(p), got, want)
		}
	}
}

func TestContextAware(t *testing.T) {
	fb := adapter.ContextAware[httpstatus.Status](499, 504, adapter.Internal[httpstatus.Status](500))

	tests := []struct {
		name string
		err  error
		app  httpstatus.Status
		code code.Code
	}{
		{name: "canceled", err: fmt.Errorf("query: %w", context.Canceled), app: 499, code: code.Canceled},
		{name: "deadline", err: context.DeadlineExceeded, app: 504, code: code.DeadlineExceeded},
		{name: "other", err: errors.New("boom"), app: 500, code: code.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := adapter.Resolve(tt.err, fb)
			if !errors.Is(err, errinfo.ErrUnclassified) {
				t.Fatalf("Resolve error = %v", err)
			}
			if info.AppCode != tt.app || info.Code != tt.code || info.ClientMsg != "" || info.Cause != tt.err {
				t.Fatalf("Resolve = %+v", info)
			}
		})
	}
}
