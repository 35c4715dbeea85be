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

package example

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/adapter"
	"dirpx.dev/errinfo/code"
	"dirpx.dev/errinfo/grpcx"
	"dirpx.dev/errinfo/httpstatus"
	"dirpx.dev/errinfo/httpx"
	"dirpx.dev/errinfo/taxonomy"
)

var _ errinfo.ToErrorInfo[httpstatus.Status] = (*MyError)(nil)

func TestToErrorInfo_Scenarios(t *testing.T) {
	tests := []struct {
		kind    MyErrorKind
		app     httpstatus.Status
		code    code.Code
		msg     string
		message string
	}{
		{kind: InvalidCommand, app: 400, code: "01IC", msg: "", message: "InvalidCommand: x"},
		{kind: InvalidArgument, app: 400, code: "01IA", msg: "friendly msg", message: "friendly msg"},
		{kind: RespError, app: 500, code: "01RE", msg: "storage unavailable", message: "storage unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := New(tt.kind, "x")
			info, cerr := err.ToErrorInfo()
			require.NoError(t, cerr)

			assert.Equal(t, tt.app, info.AppCode)
			assert.Equal(t, tt.code, info.Code)
			assert.Equal(t, tt.msg, info.ClientMsg)
			assert.Same(t, err, info.Cause)
			assert.Equal(t, tt.message, info.Message())
		})
	}
}

func TestToErrorInfo_BadAppCode(t *testing.T) {
	info, err := New(Misconfigured, "x").ToErrorInfo()

	var pe *errinfo.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bad", pe.Input)
	assert.ErrorIs(t, err, httpstatus.ErrInvalid)
	assert.Zero(t, info)
}

func TestToErrorInfo_Edges(t *testing.T) {
	var nilErr *MyError
	_, err := nilErr.ToErrorInfo()
	assert.ErrorIs(t, err, taxonomy.ErrNilError)

	_, err = New(MyErrorKind(42), "x").ToErrorInfo()
	assert.ErrorIs(t, err, taxonomy.ErrUnknownVariant)
}

func TestToErrorInfo_Fresh(t *testing.T) {
	e1 := New(InvalidCommand, "first")
	e2 := New(InvalidCommand, "second")

	i1, err := e1.ToErrorInfo()
	require.NoError(t, err)
	i2, err := e2.ToErrorInfo()
	require.NoError(t, err)

	assert.Equal(t, i1.Code, i2.Code)
	assert.Same(t, e1, i1.Cause)
	assert.Same(t, e2, i2.Cause)
}

func TestTaxonomy_Table(t *testing.T) {
	assert.Equal(t, 4, myErrorKindTaxonomy.Len())
	for _, d := range myErrorKindTaxonomy.Entries() {
		assert.True(t, d.Code.HasPrefix("01"), d.Code)
		v, ok := myErrorKindTaxonomy.ByCode(d.Code)
		assert.True(t, ok)
		assert.Equal(t, d.Variant, v)
	}
	assert.Equal(t,
		`taxonomy="MyErrorKind" variant=InvalidArgument code="01IA" app_code="400" client_msg="friendly msg"`,
		myErrorKindTaxonomy.Explain(InvalidArgument))
}

func TestConvert_Wrapped(t *testing.T) {
	err := New(InvalidCommand, "x")

	_, cerr := errinfo.Convert[httpstatus.Status](err)
	require.NoError(t, cerr)

	_, cerr = errinfo.Convert[httpstatus.Status](fmt.Errorf("handler: %w", err))
	assert.ErrorIs(t, cerr, errinfo.ErrUnclassified)
}

func TestConcurrentConversion(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := New(MyErrorKind(i%4), "x")
			for j := 0; j < 500; j++ {
				info, cerr := err.ToErrorInfo()
				if cerr == nil && info.Cause != error(err) {
					t.Errorf("cause mismatch")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

var fallback = adapter.Static[httpstatus.Status](http.StatusInternalServerError, "00INTERNAL", "internal error")

func TestHTTP(t *testing.T) {
	w, err := httpx.NewWriter(fallback, httpx.WithDomain("example.dirpx.dev"))
	require.NoError(t, err)

	h := w.Handle(func(http.ResponseWriter, *http.Request) error {
		return New(InvalidArgument, "limit=-1")
	})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.NotContains(t, rr.Body.String(), "limit=-1")

	var st spb.Status
	require.NoError(t, protojson.Unmarshal(rr.Body.Bytes(), &st))
	assert.Equal(t, "friendly msg", st.GetMessage())
	require.Len(t, st.GetDetails(), 1)
	var ei errdetails.ErrorInfo
	require.NoError(t, st.GetDetails()[0].UnmarshalTo(&ei))
	assert.Equal(t, "01IA", ei.GetReason())
	assert.Equal(t, "example.dirpx.dev", ei.GetDomain())
}

func TestGRPC(t *testing.T) {
	ic, err := grpcx.UnaryServerInterceptor(grpcx.Config[httpstatus.Status]{Fallback: fallback})
	require.NoError(t, err)

	call := func(herr error) error {
		_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/example.v1.Svc/Do"},
			func(context.Context, any) (any, error) { return nil, herr })
		return err
	}

	err = call(New(RespError, "pg down"))
	assert.Equal(t, codes.Internal, status.Code(err))
	ei, ok := grpcx.ExtractInfo(err)
	require.True(t, ok)
	assert.Equal(t, "01RE", ei.GetReason())

	err = call(New(Misconfigured, "x"))
	ei, ok = grpcx.ExtractInfo(err)
	require.True(t, ok)
	assert.Equal(t, "00INTERNAL", ei.GetReason())

	err = call(errors.New("plain"))
	assert.Equal(t, codes.Internal, status.Code(err))
}
