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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"regexp"
)

// Code is the canonical, validated representation of a full error code
// (prefix followed by short code).
//
// It is a separate type (not just string) so that a descriptor's code cannot
// be confused with free-form message text.
type Code string

// MaxLength is the maximum length of a full code, and therefore also the
// upper bound for a prefix or a short code on its own.
const MaxLength = 64

const (
	// codeFmt is the pattern every prefix, short code and full code must match:
	// an ASCII letter or digit followed by letters, digits or one of the
	// separators '_', '.', ':' and '-'.
	//
	// Whitespace is rejected on purpose: a code is an identifier, and a stray
	// space in a declaration is almost always a typo.
	codeFmt = `^[A-Za-z0-9][A-Za-z0-9_.:\-]*$`

	// partFmt is the pattern for a short code. Unlike a prefix or a full code
	// it may start with a separator ("-IC"), since the prefix in front of it
	// already satisfies the leading-character rule.
	partFmt = `^[A-Za-z0-9_.:\-]+$`
)

var (
	codeRe = regexp.MustCompile(codeFmt)
	partRe = regexp.MustCompile(partFmt)
)

var (
	// ErrCodeInvalid is returned when a value is not a valid full code.
	ErrCodeInvalid = errors.New("errinfo: invalid code")

	// ErrPrefixInvalid is returned when a taxonomy prefix is empty or
	// contains characters outside the code charset.
	ErrPrefixInvalid = errors.New("errinfo: invalid code prefix")

	// ErrShortInvalid is returned when a variant's short code is empty or
	// contains characters outside the code charset.
	ErrShortInvalid = errors.New("errinfo: invalid short code")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It never appears in a descriptor produced by
// a compiled taxonomy.
var Empty Code = ""

// Join concatenates prefix and short into a full code.
//
// Join does not validate; use ValidatePrefix and ValidateShort on the parts
// (taxonomy compilation does) or Validate on the result.
func Join(prefix, short string) Code {
	return Code(prefix + short)
}

// Parse validates s as a full code and returns it unchanged.
func Parse(s string) (Code, error) {
	if err := validate(s, codeRe, ErrCodeInvalid); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks whether c is a valid full code.
func Validate(c Code) error {
	return validate(string(c), codeRe, ErrCodeInvalid)
}

// ValidatePrefix checks a taxonomy's domain prefix.
func ValidatePrefix(s string) error {
	return validate(s, codeRe, ErrPrefixInvalid)
}

// ValidateShort checks a variant's short code.
func ValidateShort(s string) error {
	return validate(s, partRe, ErrShortInvalid)
}

// String returns the code as declared.
func (c Code) String() string {
	return string(c)
}

// HasPrefix reports whether c was built from the given domain prefix.
func (c Code) HasPrefix(prefix string) bool {
	return len(c) > len(prefix) && string(c[:len(prefix)]) == prefix
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Surrounding whitespace is trimmed; nothing else is changed.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func validate(s string, re *regexp.Regexp, sentinel error) error {
	switch {
	case s == "":
		return fmt.Errorf("%w: empty", sentinel)
	case len(s) > MaxLength:
		return fmt.Errorf("%w: %q is longer than %d bytes", sentinel, s, MaxLength)
	case !re.MatchString(s):
		return fmt.Errorf("%w: %q", sentinel, s)
	}
	return nil
}
