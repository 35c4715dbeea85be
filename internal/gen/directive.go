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
	"fmt"
	"strconv"
	"strings"
)

const (
	taxonomyDirective = "//errinfo:taxonomy"
	variantDirective  = "//errinfo:variant"
)

var (
	taxonomyAttrs = map[string]bool{"prefix": true, "app_type": true, "error": true}
	variantAttrs  = map[string]bool{"code": true, "app_code": true, "client_msg": true}
)

// directive reports whether line is the directive name, possibly followed by
// attributes, and returns the attribute text.
func directive(line, name string) (string, bool) {
	rest, ok := strings.CutPrefix(line, name)
	if !ok {
		return "", false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	return rest, true
}

// parseAttrs parses space-separated key=value pairs. A value is a bare word
// or a Go-quoted string:
//
//	code=IC app_code=400 client_msg="friendly msg"
//
// Keys must be in allowed and may appear once.
func parseAttrs(s string, allowed map[string]bool) (map[string]string, error) {
	attrs := make(map[string]string)
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return attrs, nil
		}

		eq := strings.IndexByte(s, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("%w: expected key=value at %q", ErrSyntax, s)
		}
		key := s[:eq]
		if strings.ContainsAny(key, " \t\"") {
			return nil, fmt.Errorf("%w: expected key=value at %q", ErrSyntax, s)
		}
		if !allowed[key] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttr, key)
		}
		if _, dup := attrs[key]; dup {
			return nil, fmt.Errorf("%w: %q given twice", ErrSyntax, key)
		}
		s = s[eq+1:]

		var val string
		if strings.HasPrefix(s, `"`) {
			q, err := strconv.QuotedPrefix(s)
			if err != nil {
				return nil, fmt.Errorf("%w: bad quoted value for %q", ErrSyntax, key)
			}
			if val, err = strconv.Unquote(q); err != nil {
				return nil, fmt.Errorf("%w: bad quoted value for %q", ErrSyntax, key)
			}
			s = s[len(q):]
			if s != "" && s[0] != ' ' && s[0] != '\t' {
				return nil, fmt.Errorf("%w: missing space after %q", ErrSyntax, key)
			}
		} else {
			end := strings.IndexAny(s, " \t")
			if end < 0 {
				end = len(s)
			}
			val, s = s[:end], s[end:]
			if strings.Contains(val, `"`) {
				return nil, fmt.Errorf("%w: stray quote in value of %q", ErrSyntax, key)
			}
		}
		attrs[key] = val
	}
}
