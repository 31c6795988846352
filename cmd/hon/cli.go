package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hon-lang/hon/internal/config"
	"github.com/hon-lang/hon/internal/logs"
)

const APP_NAME = config.APP_NAME

// cli holds the global flags and everything derived from them before a
// command runs.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	maxDepth   int
	verbose    bool
	noColor    bool

	cfg     *config.Config
	cfgFile string
	logger  *slog.Logger
	closer  io.Closer
	styles  styles
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{stdout: stdout, stderr: stderr}
}

// execute runs the command line args. The log file opened by setup is
// closed on every path, including a failing command.
func (c *cli) execute(ctx context.Context, args []string) error {
	root := c.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if closeErr := c.close(); err == nil {
		err = closeErr
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   APP_NAME,
		Short: "HON front end: tokenizer, parser and scope builder",
		Long: `hon reads programs written in HON, a small teaching language with
Python-like syntax, and shows what the front end makes of them.

Every command accepts files and directories. Directories are searched for
*.hon files. A file that fails to tokenize or parse is reported with the
offending line and the remaining inputs are still processed.`,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/hon/config.toml)")
	flags.IntVar(&c.maxDepth, "max-depth", 0, "maximum parser nesting depth (overrides parser.max_depth)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log every pipeline stage")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		c.tokensCmd(),
		c.astCmd(),
		c.symtabCmd(),
		c.checkCmd(),
		c.envCmd(),
	)
	return root
}

// setup resolves the configuration, applies flag overrides on top of it
// and builds the logger.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Resolve(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		cfg.Parser.MaxDepth = c.maxDepth
	}
	if c.verbose {
		cfg.Log.Level = slog.LevelDebug.String()
	}
	if c.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger, closer, err := logs.New(logs.Options{
		Level:  level,
		Writer: c.stderr,
		File:   cfg.Log.File,
	})
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.cfgFile = path
	c.logger = logger
	c.closer = closer
	c.styles = newStyles(cfg.Output.Color)

	logger.Debug("configuration resolved", "file", path, "max_depth", cfg.Parser.MaxDepth)
	return nil
}

func (c *cli) close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	return err
}
