package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/hon-lang/hon/internal/ast"
	"github.com/hon-lang/hon/internal/config"
	"github.com/hon-lang/hon/internal/diagnostics"
	"github.com/hon-lang/hon/internal/dump"
	"github.com/hon-lang/hon/internal/frontend"
)

// process runs every input below paths through the front end, printing a
// header before each result when there is more than one input.
func (c *cli) process(ctx context.Context, paths []string, opts frontend.Options, fn func(*frontend.Result) error) error {
	locs, err := frontend.Inputs(paths)
	if err != nil {
		return err
	}
	multiple := len(locs) > 1
	return c.runAll(ctx, locs, opts, func(result *frontend.Result) error {
		if multiple {
			if _, err := fmt.Fprintln(c.stdout, c.styles.title(result.Loc.Path)); err != nil {
				return err
			}
		}
		return fn(result)
	})
}

// runAll prints the diagnostics of the inputs that failed once all of
// them were tried.
func (c *cli) runAll(ctx context.Context, locs []*ast.Loc, opts frontend.Options, fn func(*frontend.Result) error) error {
	opts.Logger = c.logger
	opts.MaxDepth = c.cfg.Parser.MaxDepth

	collector := diagnostics.New(c.logger)
	err := frontend.RunAll(ctx, locs, opts, collector, fn)

	for _, diag := range collector.Diags {
		// without the source only the header is printed
		src, _ := os.ReadFile(diag.Filename)
		fmt.Fprint(c.stdout, c.styles.diag(string(src), diag))
	}
	if len(collector.Diags) > 0 {
		fmt.Fprintf(c.stdout, "%d of %d inputs failed\n", len(collector.Diags), len(locs))
	}
	return err
}

func (c *cli) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens PATH...",
		Short: "Print the token stream of each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := frontend.Options{KeepTokens: true, SkipScopes: true}
			return c.process(cmd.Context(), args, opts, func(result *frontend.Result) error {
				return dump.Tokens(c.stdout, result.Tokens)
			})
		},
	}
}

func (c *cli) astCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast PATH...",
		Short: "Print the syntax tree of each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := frontend.Options{SkipScopes: true}
			return c.process(cmd.Context(), args, opts, func(result *frontend.Result) error {
				return dump.AST(c.stdout, result.File.Body)
			})
		},
	}
}

func (c *cli) symtabCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "symtab PATH...",
		Short: "Print the symbol tables of each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := c.cfg.OutputFormat()
			if cmd.Flags().Changed("format") {
				parsed, err := config.ParseFormat(format)
				if err != nil {
					return err
				}
				output = parsed
			}
			return c.process(cmd.Context(), args, frontend.Options{}, func(result *frontend.Result) error {
				return dump.Symtab(c.stdout, result.Scope, output)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, yaml or json (overrides output.format)")
	return cmd
}

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH...",
		Short: "Tokenize, parse and build scopes, reporting every failing input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := frontend.Inputs(args)
			if err != nil {
				return err
			}
			if len(locs) == 0 {
				return fmt.Errorf("no %s files found", frontend.FILE_EXTENSION)
			}

			return c.runAll(cmd.Context(), locs, frontend.Options{}, func(result *frontend.Result) error {
				_, err := fmt.Fprintf(c.stdout, "%s %s\n", c.styles.ok("ok"), result.Loc.Path)
				return err
			})
		},
	}
}

func (c *cli) envCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				return c.writeDefaultConfig()
			}

			source := c.cfgFile
			if source == "" {
				source = "(defaults)"
			}
			fmt.Fprintf(c.stdout, "# %s\n", source)
			for _, entry := range c.cfg.Entries() {
				fmt.Fprintf(c.stdout, "%s=%s\n", entry.Key, entry.Value)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "write the default configuration to the default config path")
	return cmd
}

func (c *cli) writeDefaultConfig() error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}

	if err := config.WriteDefault(path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("config file already exists: %s", path)
		}
		return err
	}
	fmt.Fprintf(c.stdout, "wrote %s\n", path)
	return nil
}
