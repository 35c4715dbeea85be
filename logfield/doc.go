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

// Package logfield renders errinfo descriptors as zap fields.
//
// Keys follow one flat layout so that log pipelines can index them:
//
//	error.code        full internal code, e.g. "01IC"
//	error.app_code    application code, e.g. "400 Bad Request"
//	error.client_msg  declared client message, omitted when empty
//	error.cause       the original error
//
// Cause texts may contain internal details; these fields are meant for
// server-side logs only.
package logfield
