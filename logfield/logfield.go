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

package logfield

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/apis"
)

// Field keys written by Info.
const (
	// KeyCode holds the full code (prefix followed by short code).
	KeyCode = "error.code"
	// KeyAppCode holds the rendered application code.
	KeyAppCode = "error.app_code"
	// KeyClientMsg holds the declared client message. Omitted when empty.
	KeyClientMsg = "error.client_msg"
	// KeyCause holds the original error. Omitted when nil.
	KeyCause = "error.cause"
)

// Info returns the flat error.* fields for info.
func Info[T any](info errinfo.ErrorInfo[T]) []zap.Field {
	fields := make([]zap.Field, 0, 4)
	fields = append(fields,
		zap.String(KeyCode, info.Code.String()),
		zap.String(KeyAppCode, fmt.Sprint(info.AppCode)),
	)
	if info.ClientMsg != "" {
		fields = append(fields, zap.String(KeyClientMsg, info.ClientMsg))
	}
	if info.Cause != nil {
		fields = append(fields, zap.NamedError(KeyCause, info.Cause))
	}
	return fields
}

// Object returns info as one nested field under key.
func Object[T any](key string, info errinfo.ErrorInfo[T]) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("code", info.Code.String())
		enc.AddString("app_code", fmt.Sprint(info.AppCode))
		if info.ClientMsg != "" {
			enc.AddString("client_msg", info.ClientMsg)
		}
		if info.Cause != nil {
			enc.AddString("cause", info.Cause.Error())
		}
		return nil
	}))
}

// Descriptor returns d as one nested field under key.
func Descriptor(key string, d apis.ErrorDescriptor) zap.Field {
	return zap.Object(key, descriptor(d))
}

type descriptor apis.ErrorDescriptor

func (d descriptor) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("code", d.Code)
	enc.AddString("app_code", d.AppCode)
	enc.AddInt("http_status", d.HTTPStatus)
	enc.AddInt("grpc_code", d.GRPCCode)
	if d.ClientMsg != "" {
		enc.AddString("client_msg", d.ClientMsg)
	}
	if d.Cause != "" {
		enc.AddString("cause", d.Cause)
	}
	return nil
}
