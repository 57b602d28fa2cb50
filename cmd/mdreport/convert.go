package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	mdreport "github.com/alnah/go-mdreport"
	"github.com/alnah/go-mdreport/internal/config"
)

// ErrUsage reports malformed command-line arguments.
var ErrUsage = errors.New("invalid usage")

// loadConfig returns the named config, or the neutral default when none is given.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// resolvePaths picks the input path and output destination from the
// positional arguments, falling back to config defaults.
func resolvePaths(args []string, cfg *config.Config) (input, output string, err error) {
	switch len(args) {
	case 0:
		if cfg.Input.DefaultDir == "" {
			return "", "", ErrNoInput
		}
		input = cfg.Input.DefaultDir
	case 1:
		input = args[0]
	case 2:
		input, output = args[0], args[1]
	default:
		return "", "", fmt.Errorf("%w: expected <input> [output], got %d arguments", ErrUsage, len(args))
	}

	if output == "" {
		output = cfg.Output.DefaultDir
	}
	return input, output, nil
}

// runConvert executes a conversion run: config, discovery, then either a
// block listing or a pooled batch conversion.
func runConvert(ctx context.Context, args []string, flags *cliFlags, env *Environment) error {
	if flags.outputMode.html && flags.outputMode.htmlOnly {
		return fmt.Errorf("%w: --html and --html-only are mutually exclusive", ErrUsage)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.outputMode.printConfig {
		data, err := cfg.Dump()
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	if err := validateWorkers(cfg.Workers); err != nil {
		return err
	}

	inputPath, outputPath, err := resolvePaths(args, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, outputPath)
	if err != nil {
		return err
	}

	if flags.outputMode.blocks {
		return printBlockListings(files, env)
	}

	params, err := buildParams(cfg, flags.outputMode)
	if err != nil {
		return err
	}
	opts, err := buildConverterOptions(cfg)
	if err != nil {
		return err
	}

	size := min(mdreport.ResolvePoolSize(cfg.Workers), len(files))
	pool := env.NewPool(size, opts...)
	defer func() {
		if err := pool.Close(); err != nil && flags.common.verbose {
			fmt.Fprintf(env.Stderr, "warning: closing converters: %v\n", err)
		}
	}()

	start := env.Now()
	results := convertBatch(ctx, pool, files, params)
	summary := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)

	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "total %v with %d worker(s)\n", env.Now().Sub(start).Round(time.Millisecond), size)
	}

	if summary.Failed > 0 {
		return fmt.Errorf("%d conversion(s) failed: %w", summary.Failed, summary.FirstErr)
	}
	return nil
}
