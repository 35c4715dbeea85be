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

// Package grpcx converts errinfo descriptors into gRPC status errors.
//
// The interceptors resolve a handler error into a descriptor, use the
// descriptor's GRPCCode as the status code and attach a
// google.rpc.ErrorInfo detail whose reason is the full internal code.
package grpcx
