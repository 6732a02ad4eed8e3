// Command flacmeta lists the metadata blocks of FLAC files.
//
// Usage:
//
//	flacmeta [flags] <file.flac...>
//
// Output mirrors metaflac --list: one entry per block with its index, type,
// last-block flag and length, plus the decoded STREAMINFO and
// VORBIS_COMMENT fields.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/simonhull/flacmeta"
	"github.com/simonhull/flacmeta/internal/config"
	"github.com/simonhull/flacmeta/internal/format"
	"github.com/simonhull/flacmeta/internal/metrics"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, isTerminal(os.Stdout)))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, tty bool) int {
	fs := flag.NewFlagSet("flacmeta", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configFile := fs.String("config", "", "Path to configuration file (YAML)")
	outputFormat := fs.String("format", "", "Output format: text or yaml (default: text)")
	noColor := fs.Bool("no-color", false, "Disable colored output")
	failFast := fs.Bool("fail-fast", false, "Stop at the first file that fails to parse")
	streamInfoFirst := fs.Bool("streaminfo-first", false, "Reject files whose first block is not STREAMINFO")
	metricsFile := fs.String("metrics-file", "", "Write Prometheus metrics for this run to a file")
	showVersion := fs.Bool("version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: flacmeta [flags] <file.flac...>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *showVersion {
		info := flacmeta.GetVersionInfo()
		fmt.Fprintf(stdout, "flacmeta %s (commit %s, built %s, %s)\n",
			info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
		return 0
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 1
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "flacmeta: %v\n", err)
		return 1
	}

	// Flags given on the command line override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Defaults.Format = *outputFormat
		case "no-color":
			cfg.Defaults.NoColor = *noColor
		case "fail-fast":
			cfg.Defaults.FailFast = *failFast
		case "streaminfo-first":
			cfg.Defaults.StreamInfoFirst = *streamInfoFirst
		case "metrics-file":
			cfg.Defaults.MetricsFile = *metricsFile
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "flacmeta: %v\n", err)
		return 1
	}

	plain := cfg.Defaults.NoColor || !tty
	formatter, err := format.New(cfg.Defaults.Format, format.Options{
		NoColor:  plain,
		ShowPath: fs.NArg() > 1,
	})
	if err != nil {
		fmt.Fprintf(stderr, "flacmeta: %v\n", err)
		return 1
	}

	errColor := color.New(color.FgRed, color.Bold)
	if plain {
		errColor.DisableColor()
	}

	var opts []flacmeta.Option
	if cfg.Defaults.StreamInfoFirst {
		opts = append(opts, flacmeta.WithStreamInfoFirst())
	}

	stats := metrics.New()

	exit := 0
	for _, res := range flacmeta.ParseMany(ctx, fs.Args(), opts...) {
		if res.Err != nil {
			stats.ObserveFailure(res.Err)
			fmt.Fprintf(stderr, "%s %v\n", errColor.Sprint("error:"), res.Err)
			exit = 1
			if cfg.Defaults.FailFast {
				break
			}
			continue
		}
		stats.ObserveSnapshot(res.Snapshot)

		if err := formatter.Format(stdout, res.Path, res.Snapshot); err != nil {
			fmt.Fprintf(stderr, "%s write output: %v\n", errColor.Sprint("error:"), err)
			return 1
		}
	}

	if cfg.Defaults.MetricsFile != "" {
		if err := stats.WriteFile(cfg.Defaults.MetricsFile); err != nil {
			fmt.Fprintf(stderr, "%s write metrics: %v\n", errColor.Sprint("error:"), err)
			return 1
		}
	}

	return exit
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
