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

// Package gen implements errinfo-gen: it reads a taxonomy declaration, from
// directives on a Go enum or from a YAML file, validates it and renders the
// Go file holding the compiled table and the ToErrorInfo method.
//
// Every defect found while loading or validating aborts generation; nothing
// is written unless the whole declaration is valid.
package gen
