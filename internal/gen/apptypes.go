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

package gen

import (
	"dirpx.dev/errinfo"
	"dirpx.dev/errinfo/code"
	"dirpx.dev/errinfo/httpstatus"
	"dirpx.dev/errinfo/rpccode"
)

// knownAppTypes validates app codes at generation time for the app types
// this module ships. Other app types are checked only at run time.
var knownAppTypes = map[string]func(string) error{
	"dirpx.dev/errinfo/httpstatus.Status": appCodeParser[httpstatus.Status](),
	"dirpx.dev/errinfo/rpccode.Code":      appCodeParser[rpccode.Code](),
	"dirpx.dev/errinfo/code.Code":         appCodeParser[code.Code](),
}

func appCodeParser[T any, PT errinfo.TextCode[T]]() func(string) error {
	return func(s string) error {
		_, err := errinfo.TryNew[T, PT](s, code.Empty, "", nil)
		return err
	}
}
