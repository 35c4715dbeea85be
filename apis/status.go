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

import (
	"fmt"

	"google.golang.org/grpc/codes"
)

// StatusCoder is implemented by application-code types that can be rendered
// on both HTTP and gRPC.
//
// httpstatus.Status and rpccode.Code implement it; custom application-code
// types opt in by providing the two projections.
type StatusCoder interface {
	fmt.Stringer

	// HTTPStatus returns the net/http status to respond with.
	HTTPStatus() int

	// GRPCCode returns the gRPC status code to respond with.
	GRPCCode() codes.Code
}

// Status is a resolved pair of transport statuses for one descriptor.
type Status struct {
	HTTP int        // net/http compatible status
	GRPC codes.Code // gRPC status code
}

// StatusOf resolves both projections of sc at once.
func StatusOf(sc StatusCoder) Status {
	return Status{HTTP: sc.HTTPStatus(), GRPC: sc.GRPCCode()}
}
