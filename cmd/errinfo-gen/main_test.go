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

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandHelp(t *testing.T) {
	root := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--help"})

	if err := root.Execute(); err != nil {
		t.Fatalf("root.Execute() error: %v", err)
	}
	for _, want := range []string{"//errinfo:taxonomy", "generate", "check", "list"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("help output missing %q:\n%s", want, out.String())
		}
	}
}

func TestNewConsoleLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, err := newConsoleLogger(debug)
		if err != nil {
			t.Fatalf("newConsoleLogger(%v) error: %v", debug, err)
		}
		if got := logger.Core().Enabled(-1); got != debug {
			t.Fatalf("debug level enabled = %v, want %v", got, debug)
		}
	}
}
