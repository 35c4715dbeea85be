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

// Command errinfo-gen generates ToErrorInfo implementations from taxonomy
// declarations.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/errinfo/internal/cli"
)

var (
	version = "dev"
	debug   = false
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, cli.ErrDefects) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logger *zap.Logger
	g := cli.NewGenerator(nil)

	root := &cobra.Command{
		Use:   "errinfo-gen",
		Short: "Taxonomy generator for dirpx.dev/errinfo",
		Long: `errinfo-gen turns a taxonomy declaration into the code that converts an
error enum into errinfo descriptors:

  //errinfo:taxonomy prefix=01 app_type=dirpx.dev/errinfo/httpstatus.Status error=*MyError
  type MyErrorKind int

  const (
      //errinfo:variant code=IC app_code=400
      InvalidCommand MyErrorKind = iota
      //errinfo:variant code=IA app_code=400 client_msg="friendly msg"
      InvalidArgument
  )`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newConsoleLogger(debug)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = l
			g.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(g.NewGenerateCmd())
	root.AddCommand(g.NewCheckCmd())
	root.AddCommand(g.NewListCmd())
	return root
}

// newConsoleLogger returns a human-friendly console logger writing to stderr.
// Info and above are shown; debug adds Debug entries.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
