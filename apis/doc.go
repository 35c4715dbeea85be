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

// Package apis defines the small public contracts shared by errinfo's
// transport adapters.
//
// Transports (HTTP writers, gRPC interceptors, log encoders) depend on these
// interfaces and view types instead of on a concrete application-code type,
// so one adapter serves every taxonomy whose application code can project
// itself onto the wire.
//
// This package must remain lightweight: interfaces and plain view structs
// only.
package apis
