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
	"context"
	"errors"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/apis"
	"dirpx.dev/errinfo/code"
)

// Fallback builds the descriptor used for an error that could not be
// converted: either it does not implement errinfo.ToErrorInfo, or its
// conversion failed. The original error is passed in so the fallback can
// keep it as the cause.
//
// The fallback is always chosen by the caller; this package never invents
// a status.
type Fallback[T any] func(err error) errinfo.ErrorInfo[T]

// Static returns a Fallback that always yields the given application code,
// full code and client message, with the original error as cause.
func Static[T any](appCode T, c code.Code, clientMsg string) Fallback[T] {
	return func(err error) errinfo.ErrorInfo[T] {
		return errinfo.ErrorInfo[T]{
			AppCode:   appCode,
			Code:      c,
			ClientMsg: clientMsg,
			Cause:     err,
		}
	}
}

// Internal returns a Fallback describing every error as code.Internal with
// the given application code and no client message.
func Internal[T any](appCode T) Fallback[T] {
	return Static(appCode, code.Internal, "")
}

// ContextAware returns a Fallback that describes context.Canceled and
// context.DeadlineExceeded (anywhere in err's chain) with code.Canceled and
// code.DeadlineExceeded, and defers every other error to next.
func ContextAware[T any](canceled, deadline T, next Fallback[T]) Fallback[T] {
	return func(err error) errinfo.ErrorInfo[T] {
		switch {
		case errors.Is(err, context.Canceled):
			return errinfo.ErrorInfo[T]{AppCode: canceled, Code: code.Canceled, Cause: err}
		case errors.Is(err, context.DeadlineExceeded):
			return errinfo.ErrorInfo[T]{AppCode: deadline, Code: code.DeadlineExceeded, Cause: err}
		}
		return next(err)
	}
}

// Resolve converts err into a descriptor.
//
// When err implements errinfo.ToErrorInfo[T] and converts cleanly, the
// descriptor is returned with a nil conversion error. Otherwise fb builds
// the descriptor and the second result reports why the fallback was used:
// errinfo.ErrUnclassified, or the conversion error (typically a
// *errinfo.ParseError, which indicates a broken taxonomy declaration).
//
// fb must not be nil.
func Resolve[T any](err error, fb Fallback[T]) (errinfo.ErrorInfo[T], error) {
	info, convErr := errinfo.Convert[T](err)
	if convErr != nil {
		return fb(err), convErr
	}
	return info, nil
}

// ToView renders the client-facing view of info, applying p when no client
// message was declared.
func ToView[T apis.StatusCoder](info errinfo.ErrorInfo[T], p MessagePolicy) apis.ErrorView {
	return apis.ErrorView{
		Code:    string(info.Code),
		Status:  info.AppCode.String(),
		Message: messageFor(p, info),
	}
}

// ToDescriptor renders the server-side snapshot of info for logging.
func ToDescriptor[T apis.StatusCoder](info errinfo.ErrorInfo[T]) apis.ErrorDescriptor {
	st := apis.StatusOf(info.AppCode)
	d := apis.ErrorDescriptor{
		Code:       string(info.Code),
		AppCode:    info.AppCode.String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		ClientMsg:  info.ClientMsg,
	}
	if info.Cause != nil {
		d.Cause = info.Cause.Error()
	}
	return d
}
