// Package frontend runs the tokenizer, parser and scope builder over HON
// source files, one input at a time.
package frontend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/hon-lang/hon/internal/ast"
	"github.com/hon-lang/hon/internal/diagnostics"
	"github.com/hon-lang/hon/internal/lexer"
	"github.com/hon-lang/hon/internal/lexer/token"
	"github.com/hon-lang/hon/internal/logs"
	"github.com/hon-lang/hon/internal/parser"
	"github.com/hon-lang/hon/internal/sema"
	"github.com/hon-lang/hon/internal/symtab"
)

const FILE_EXTENSION = ".hon"

type Stage string

const (
	STAGE_TOKENIZE Stage = "tokenize"
	STAGE_PARSE    Stage = "parse"
	STAGE_SCOPES   Stage = "scopes"
)

type Options struct {
	// Logger receives stage boundaries at debug level. Nil discards them.
	Logger *slog.Logger
	// MaxDepth bounds parser nesting. Zero selects the parser default.
	MaxDepth int
	// KeepTokens runs the tokenizer once on its own and stores the token
	// stream in the result.
	KeepTokens bool
	// SkipScopes stops after parsing.
	SkipScopes bool
}

// Result holds everything produced for one input. Tokens is nil unless
// Options.KeepTokens was set, Scope is nil when Options.SkipScopes was.
type Result struct {
	Loc    *ast.Loc
	Source []byte
	Tokens []*token.Token
	File   *ast.File
	Scope  *symtab.Scope
}

// Run reads the whole of r and pushes it through the pipeline. The first
// lexical or syntax error is returned unchanged, so diagnostics.AsDiag can
// locate it. ctx is checked between stages.
func Run(ctx context.Context, loc *ast.Loc, r io.Reader, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logs.Discard()
	}
	ctx, _ = logs.NewSpan(ctx, logger, "", "file", loc.Name)

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", loc.Name, err)
	}
	result := &Result{Loc: loc, Source: src}

	if opts.KeepTokens {
		err := runStage(ctx, logger, STAGE_TOKENIZE, func() (err error) {
			result.Tokens, err = lexer.New(bytes.NewReader(src)).Tokenize()
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	err = runStage(ctx, logger, STAGE_PARSE, func() (err error) {
		result.File, err = parser.ParseFile(loc, bytes.NewReader(src), parser.WithMaxDepth(opts.MaxDepth))
		return err
	})
	if err != nil {
		return nil, err
	}

	if opts.SkipScopes {
		return result, nil
	}

	err = runStage(ctx, logger, STAGE_SCOPES, func() (err error) {
		result.Scope, err = sema.New().CreateSymtable(result.File.Body)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func runStage(ctx context.Context, logger *slog.Logger, stage Stage, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", stage, err)
	}
	start := time.Now()
	logger.DebugContext(ctx, "stage started", "stage", stage)
	if err := fn(); err != nil {
		logger.DebugContext(ctx, "stage failed", "stage", stage, "error", err)
		return err
	}
	logger.DebugContext(ctx, "stage finished", "stage", stage, "elapsed", time.Since(start))
	return nil
}

// RunFile opens the file behind loc and runs it.
func RunFile(ctx context.Context, loc *ast.Loc, opts Options) (*Result, error) {
	file, err := os.Open(loc.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Run(ctx, loc, file, opts)
}

// RunAll runs every input in order and hands each success to fn. A failed
// input is reported to collector and the run moves on to the next one.
// Only cancellation and errors returned by fn stop it early. The result is
// collector.Err() once all inputs are done.
func RunAll(
	ctx context.Context,
	locs []*ast.Loc,
	opts Options,
	collector *diagnostics.Collector,
	fn func(*Result) error,
) error {
	for _, loc := range locs {
		result, err := RunFile(ctx, loc, opts)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			collector.Report(loc.Path, err)
			continue
		}
		if fn == nil {
			continue
		}
		if err := fn(result); err != nil {
			return err
		}
	}
	return collector.Err()
}

// Inputs expands paths into the files to process. Files are taken as
// given; directories are searched recursively for FILE_EXTENSION files,
// returned in lexical order.
func Inputs(paths []string) ([]*ast.Loc, error) {
	var locs []*ast.Loc
	for _, path := range paths {
		loc, err := ast.LocFromPath(path)
		if err != nil {
			return nil, err
		}
		if !loc.IsDir {
			locs = append(locs, loc)
			continue
		}

		var found []string
		err = filepath.WalkDir(path, func(p string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && filepath.Ext(p) == FILE_EXTENSION {
				found = append(found, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		slices.Sort(found)

		for _, p := range found {
			fileLoc, err := ast.LocFromPath(p)
			if err != nil {
				return nil, err
			}
			locs = append(locs, fileLoc)
		}
	}
	return locs, nil
}
