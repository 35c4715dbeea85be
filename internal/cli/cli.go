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

// Package cli holds the errinfo-gen subcommands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/errinfo/internal/gen"
)

// ErrDefects is returned by a command that found declaration defects. The
// defects themselves have already been logged.
var ErrDefects = errors.New("declaration has defects")

// Generator runs the generator commands.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator returns a Generator logging to logger.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// SetLogger replaces the logger. A nil logger discards output.
func (g *Generator) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g.logger = logger
}

type flags struct {
	opts          gen.Options
	copyrightFile string
}

func (f *flags) bind(cmd *cobra.Command, withOutput bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.opts.Type, "type", "", "Enum type carrying the //errinfo:taxonomy directive")
	fs.StringVar(&f.opts.From, "from", "", "Read the declaration from a YAML file instead of directives")
	fs.StringVar(&f.opts.Dir, "dir", "", "Package directory (default: directory of --from, or .)")
	fs.BoolVar(&f.opts.Strict, "strict", false, "Treat invalid app codes as defects and compile tables with StrictAppCodes")
	if withOutput {
		fs.StringVar(&f.opts.Output, "output", "", "Generated file (default: <dir>/<type>_errinfo.go)")
		fs.StringVar(&f.copyrightFile, "copyright-file", "", "File whose content is copied above the generated-code header")
	}
}

func (f *flags) options() (gen.Options, error) {
	opts := f.opts
	if f.copyrightFile != "" {
		b, err := os.ReadFile(f.copyrightFile)
		if err != nil {
			return opts, fmt.Errorf("read copyright file: %w", err)
		}
		opts.Copyright = string(b)
	}
	return opts, nil
}

// NewGenerateCmd returns the generate subcommand.
func (g *Generator) NewGenerateCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the ToErrorInfo implementation of a taxonomy",
		Long: `Generate reads a taxonomy declaration, from //errinfo directives on an
enum type or from a YAML file, and writes <type>_errinfo.go holding the
compiled table and the ToErrorInfo method.

Nothing is written when the declaration has defects.`,
		Example: `  //go:generate errinfo-gen generate --type MyErrorKind
  errinfo-gen generate --from errors.yaml --output ./pkg/errs/errs_errinfo.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			res, err := g.generate(opts)
			if err != nil {
				return err
			}
			if err := gen.Write(res); err != nil {
				return err
			}
			g.logger.Info("Generated taxonomy",
				zap.String("type", res.Decl.Type),
				zap.Int("variants", len(res.Decl.Variants)),
				zap.String("output", res.Output))
			return nil
		},
	}
	f.bind(cmd, true)
	return cmd
}

// NewCheckCmd returns the check subcommand.
func (g *Generator) NewCheckCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a taxonomy and verify its generated file is up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options()
			if err != nil {
				return err
			}
			res, err := g.generate(opts)
			if err != nil {
				return err
			}
			if err := gen.Check(res); err != nil {
				g.logger.Error("Generated file is stale; run errinfo-gen generate", zap.Error(err))
				return ErrDefects
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d variants)\n", res.Decl.Type, len(res.Decl.Variants))
			return nil
		},
	}
	f.bind(cmd, true)
	return cmd
}

// NewListCmd returns the list subcommand.
func (g *Generator) NewListCmd() *cobra.Command {
	var (
		f      flags
		format string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the variants of a taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, warnings, err := gen.Load(f.opts)
			g.logWarnings(warnings)
			if err != nil {
				g.logDefects(err)
				return ErrDefects
			}
			out := cmd.OutOrStdout()
			switch format {
			case "table":
				return printTable(out, d)
			case "yaml":
				b, err := gen.MarshalYAML(d)
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			}
			return fmt.Errorf("unknown format %q (want table or yaml)", format)
		},
	}
	f.bind(cmd, false)
	cmd.Flags().StringVarP(&format, "format", "o", "table", "Output format: table or yaml")
	return cmd
}

func (g *Generator) generate(opts gen.Options) (*gen.Result, error) {
	g.logger.Debug("Loading declaration",
		zap.String("type", opts.Type), zap.String("from", opts.From), zap.String("dir", opts.Dir))
	res, err := gen.Generate(opts)
	if err != nil {
		g.logDefects(err)
		return nil, ErrDefects
	}
	g.logWarnings(res.Warnings)
	g.logger.Debug("Rendered taxonomy", zap.String("output", res.Output), zap.Int("bytes", len(res.Source)))
	return res, nil
}

func (g *Generator) logWarnings(warnings []error) {
	for _, w := range warnings {
		g.logger.Warn("App code will not parse at run time", zap.Error(w))
	}
}

// logDefects logs each joined defect on its own line.
func (g *Generator) logDefects(err error) {
	for _, e := range flatten(err) {
		g.logger.Error("Declaration defect", zap.Error(e))
	}
}

func flatten(err error) []error {
	j, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range j.Unwrap() {
		out = append(out, flatten(e)...)
	}
	return out
}

func printTable(w io.Writer, d *gen.Decl) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "VARIANT\tCODE\tAPP CODE\tCLIENT MSG\n")
	for _, v := range d.Variants {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%q\n", v.Name, d.FullCode(v), v.AppCode, v.ClientMsg)
	}
	return tw.Flush()
}
