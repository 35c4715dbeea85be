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

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

const kindSrc = `package p

//errinfo:taxonomy prefix=01 app_type=dirpx.dev/errinfo/httpstatus.Status
type Kind int

func (k Kind) Error() string { return "kind" }

const (
	//errinfo:variant code=IC app_code=400
	InvalidCommand Kind = iota
	//errinfo:variant code=IA app_code=400 client_msg="friendly msg"
	InvalidArgument
)
`

func setup(t *testing.T, src string) (string, *Generator, *observer.ObservedLogs) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kind.go"), []byte(src), 0o644))
	core, logs := observer.New(zapcore.DebugLevel)
	return dir, NewGenerator(zap.New(core)), logs
}

func run(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateThenCheck(t *testing.T) {
	dir, g, logs := setup(t, kindSrc)

	_, err := run(g.NewCheckCmd(), "--dir", dir, "--type", "Kind")
	require.ErrorIs(t, err, ErrDefects, "no generated file yet")

	_, err = run(g.NewGenerateCmd(), "--dir", dir, "--type", "Kind")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "kind_errinfo.go"))
	assert.Equal(t, 1, logs.FilterMessage("Generated taxonomy").Len())

	out, err := run(g.NewCheckCmd(), "--dir", dir, "--type", "Kind")
	require.NoError(t, err)
	assert.Equal(t, "Kind: ok (2 variants)\n", out)
}

func TestGenerate_CopyrightFile(t *testing.T) {
	dir, g, _ := setup(t, kindSrc)
	hdr := filepath.Join(dir, "boilerplate.txt")
	require.NoError(t, os.WriteFile(hdr, []byte("// Copyright 2025 Example\n"), 0o644))

	_, err := run(g.NewGenerateCmd(), "--dir", dir, "--type", "Kind", "--copyright-file", hdr)
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "kind_errinfo.go"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "// Copyright 2025 Example\n\n// Code generated by errinfo-gen. DO NOT EDIT.")
}

func TestGenerate_Defects(t *testing.T) {
	dir, g, logs := setup(t, `package p

//errinfo:taxonomy prefix=01 app_type=dirpx.dev/errinfo/httpstatus.Status
type Kind int

func (k Kind) Error() string { return "kind" }

const (
	//errinfo:variant code=IC app_code=400
	A Kind = iota
	B
)
`)
	_, err := run(g.NewGenerateCmd(), "--dir", dir, "--type", "Kind")
	require.ErrorIs(t, err, ErrDefects)
	assert.NoFileExists(t, filepath.Join(dir, "kind_errinfo.go"))

	defects := logs.FilterMessage("Declaration defect").All()
	require.NotEmpty(t, defects)
	assert.Equal(t, zapcore.ErrorLevel, defects[0].Level)
}

func TestGenerate_StrictWarnings(t *testing.T) {
	src := `package p

//errinfo:taxonomy prefix=01 app_type=dirpx.dev/errinfo/httpstatus.Status
type Kind int

func (k Kind) Error() string { return "kind" }

const (
	//errinfo:variant code=IC app_code=4OO
	A Kind = iota
)
`
	dir, g, logs := setup(t, src)
	_, err := run(g.NewGenerateCmd(), "--dir", dir, "--type", "Kind")
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("App code will not parse at run time").Len())

	_, err = run(g.NewGenerateCmd(), "--dir", dir, "--type", "Kind", "--strict")
	require.ErrorIs(t, err, ErrDefects)
}

func TestList(t *testing.T) {
	dir, g, _ := setup(t, kindSrc)

	out, err := run(g.NewListCmd(), "--dir", dir, "--type", "Kind")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"VARIANT          CODE  APP CODE  CLIENT MSG\n"+
		"InvalidCommand   01IC  400       \"\"\n"+
		"InvalidArgument  01IA  400       \"friendly msg\"\n", out)

	out, err = run(g.NewListCmd(), "--dir", dir, "--type", "Kind", "-o", "yaml")
	require.NoError(t, err)
	var decl map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decl))
	assert.Equal(t, "Kind", decl["type"])
	assert.Equal(t, "01", decl["prefix"])
	assert.Len(t, decl["variants"], 2)

	_, err = run(g.NewListCmd(), "--dir", dir, "--type", "Kind", "-o", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestFlatten(t *testing.T) {
	a, b, c := assert.AnError, os.ErrNotExist, os.ErrClosed
	got := flatten(joinErrs(a, joinErrs(b, c)))
	assert.Equal(t, []error{a, b, c}, got)
}

type joined []error

func (j joined) Error() string   { return "joined" }
func (j joined) Unwrap() []error { return j }

func joinErrs(errs ...error) error { return joined(errs) }
