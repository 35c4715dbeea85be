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

package httpx

import (
	"errors"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/adapter"
	"dirpx.dev/errinfo/apis"
	"dirpx.dev/errinfo/logfield"
)

// MetadataAppCode is the google.rpc.ErrorInfo metadata key holding the
// rendered application code.
const MetadataAppCode = "app_code"

// ErrNoFallback is returned by NewWriter when no fallback is given.
var ErrNoFallback = errors.New("httpx: fallback is required")

// Writer turns errors into HTTP responses whose body is a google.rpc.Status
// in protobuf JSON form, carrying one google.rpc.ErrorInfo detail:
//
//	{
//	  "code": 3,
//	  "message": "friendly msg",
//	  "details": [{
//	    "@type": "type.googleapis.com/google.rpc.ErrorInfo",
//	    "reason": "01IA",
//	    "domain": "api.example.com",
//	    "metadata": {"app_code": "400 Bad Request"}
//	  }]
//	}
//
// The HTTP status is the descriptor's AppCode.HTTPStatus().
type Writer[T apis.StatusCoder] struct {
	// Fallback describes errors that do not convert. NewWriter requires
	// one; a Writer built as a literal without it answers unconvertible
	// errors with a bare 500 and logs ErrNoFallback.
	Fallback adapter.Fallback[T]

	// Logger receives one entry per written error. Nil disables logging.
	Logger *zap.Logger

	// Messages chooses the client message when none was declared.
	Messages adapter.MessagePolicy

	// Domain is copied into google.rpc.ErrorInfo.domain.
	Domain string
}

// Option configures a Writer built by NewWriter.
type Option func(*settings)

type settings struct {
	logger   *zap.Logger
	messages adapter.MessagePolicy
	domain   string
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(s *settings) { s.logger = l } }

// WithMessagePolicy sets the message policy.
func WithMessagePolicy(p adapter.MessagePolicy) Option {
	return func(s *settings) { s.messages = p }
}

// WithDomain sets the error domain.
func WithDomain(d string) Option { return func(s *settings) { s.domain = d } }

// NewWriter returns a Writer using fb for errors that do not convert.
func NewWriter[T apis.StatusCoder](fb adapter.Fallback[T], opts ...Option) (*Writer[T], error) {
	if fb == nil {
		return nil, ErrNoFallback
	}
	var s settings
	for _, o := range opts {
		if o != nil {
			o(&s)
		}
	}
	return &Writer[T]{
		Fallback: fb,
		Logger:   s.logger,
		Messages: s.messages,
		Domain:   s.domain,
	}, nil
}

// Write resolves err and writes the response. A nil err writes nothing.
func (w *Writer[T]) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	info, ok := w.resolve(err)
	if !ok {
		http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	b, merr := protojson.Marshal(w.Status(info))
	if merr != nil {
		w.logger().Error("httpx: cannot encode error body", zap.Error(merr))
		b = nil
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(info.AppCode.HTTPStatus())
	_, _ = rw.Write(b)
}

// Status renders info as a google.rpc.Status message.
func (w *Writer[T]) Status(info errinfo.ErrorInfo[T]) *spb.Status {
	view := adapter.ToView(info, w.Messages)
	st := &spb.Status{
		Code:    int32(info.AppCode.GRPCCode()),
		Message: view.Message,
	}
	detail, err := anypb.New(&errdetails.ErrorInfo{
		Reason:   view.Code,
		Domain:   w.Domain,
		Metadata: map[string]string{MetadataAppCode: view.Status},
	})
	if err != nil {
		w.logger().Error("httpx: cannot pack error detail", zap.Error(err))
		return st
	}
	st.Details = []*anypb.Any{detail}
	return st
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(rw http.ResponseWriter, r *http.Request) error

// Handle adapts h to an http.Handler, writing h's error with w.
//
// The error is written only when h returned one; h must not have written a
// response body before failing.
func (w *Writer[T]) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, err)
		}
	})
}

// resolve converts err and logs the outcome. It reports false when err did
// not convert and w has no fallback.
//
// Server errors and failed conversions are logged at error level, the rest
// at debug level.
func (w *Writer[T]) resolve(err error) (errinfo.ErrorInfo[T], bool) {
	if w.Fallback == nil {
		info, convErr := errinfo.Convert[T](err)
		if convErr != nil {
			w.logger().Error("request failed",
				zap.NamedError(logfield.KeyCause, err),
				zap.NamedError("error.conversion", convErr),
				zap.NamedError("error.fallback", ErrNoFallback),
			)
			return info, false
		}
	}
	info, convErr := adapter.Resolve(err, w.Fallback)

	level := zapcore.DebugLevel
	if convErr != nil || info.AppCode.HTTPStatus() >= http.StatusInternalServerError {
		level = zapcore.ErrorLevel
	}
	l := w.logger()
	if ce := l.Check(level, "request failed"); ce != nil {
		fields := logfield.Info(info)
		if convErr != nil && !errors.Is(convErr, errinfo.ErrUnclassified) {
			fields = append(fields, zap.NamedError("error.conversion", convErr))
		}
		ce.Write(fields...)
	}
	return info, true
}

func (w *Writer[T]) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}
