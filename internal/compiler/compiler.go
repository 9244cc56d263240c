package compiler

import (
	"chuckscope/internal/config"
	"chuckscope/pkg/color"
	"chuckscope/pkg/resolver"
	"chuckscope/pkg/symbol"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

type Compiler struct {
	Help        bool      // Show help message
	Verbose     bool      // Enable verbose output
	NoColor     bool      // Disable colored output
	ConfigFile  string    // Path to an optional TOML config file
	WordSize    uint      // Overrides the configured word size when non-zero
	SourceFiles []string  // Paths to the source files
	Out         io.Writer // Where diagnostics and layouts are printed, stdout if nil
}

// Unit is the outcome of resolving one source file
type Unit struct {
	File   string
	Result *resolver.Result
}

// Compile resolves every source file concurrently against one shared
// interner and prints diagnostics, plus frame layouts in verbose mode.
func (opts *Compiler) Compile(ctx context.Context) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	units, err := opts.Resolve(ctx, cfg)
	if err != nil {
		return err
	}

	problems := 0
	for _, u := range units {
		diags := u.Result.Diagnostics
		if len(diags) > 0 {
			problems += len(diags)
			fmt.Fprintln(opts.Out, color.BrightRedText("=== Diagnostics: "+u.File+" ==="))
			for _, d := range diags {
				fmt.Fprintln(opts.Out, d)
			}
		}

		if opts.Verbose {
			fmt.Fprintln(opts.Out, color.GreenText("\n=== Frame Layout: "+u.File+" ==="))
			fmt.Fprintln(opts.Out, RenderLayouts(u.Result.Frames))
		}
	}

	if problems > 0 {
		return fmt.Errorf("resolution failed with %d problems", problems)
	}
	return nil
}

// Resolve reads and resolves every source file, keeping the input order
func (opts *Compiler) Resolve(ctx context.Context, cfg *config.Config) ([]Unit, error) {
	in := symbol.NewInterner(symbol.WithBuckets(cfg.Buckets), symbol.WithLimit(cfg.MaxSymbols))
	r := resolver.New(in, resolver.Options{
		WordSize: cfg.WordSize,
		Sizes:    cfg.Sizes,
		Builtins: cfg.Builtins,
	})

	units := make([]Unit, len(opts.SourceFiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, file := range opts.SourceFiles {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			log.Info("Processing file", "file", file)
			input, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}

			res, err := r.Resolve(string(input))
			if err != nil {
				return fmt.Errorf("resolving %s: %w", file, err)
			}

			units[i] = Unit{File: file, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug("Interned symbols", "count", in.Len())
	return units, nil
}

func (opts *Compiler) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	if opts.WordSize > 0 {
		cfg.WordSize = opts.WordSize
	}
	return cfg, nil
}
