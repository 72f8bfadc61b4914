// Command fintab rebuilds financial tables from statement scans and exports,
// and prints or saves the combined result.
//
// Usage:
//
//	fintab [flags] file...
//
// Files are processed in the order given; when two files report a different
// value for the same line item and period, the earlier file wins unless
// -precedence says otherwise.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/tsawler/fintab"
	"github.com/tsawler/fintab/config"
	"github.com/tsawler/fintab/logging"
	"github.com/tsawler/fintab/model"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "fintab:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fintab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML configuration file")
		output     = fs.String("format", "", "output format: csv or markdown")
		outDir     = fs.String("out", "", "directory to write sorted and unsorted tables to")
		workers    = fs.Int("workers", 0, "documents processed concurrently")
		lang       = fs.String("lang", "", "OCR language(s), e.g. eng+deu")
		precedence = fs.String("precedence", "", "comma-separated files whose values win over the others")
		logLevel   = fs.String("log-level", "", "debug, info, warn or error")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: fintab [flags] file...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("no input files")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	// flags win over file and environment
	if *output != "" {
		cfg.Output = strings.ToLower(*output)
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *lang != "" {
		cfg.OCR.Language = *lang
	}
	if *precedence != "" {
		cfg.Precedence = config.SplitList(*precedence)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})))

	ext := fintab.Open(fs.Args()...).WithConfig(cfg)
	results, warnings, err := ext.Tables(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(stderr, "%s: %s\n", r.Path, r.Message())
	}
	for _, w := range warnings {
		if w.Code != model.WarnExtractionFailed {
			fmt.Fprintln(stderr, "warning:", w)
		}
	}

	result := fintab.CombineResults(results, cfg.Precedence...)

	sorted, unsorted := render(result, cfg.Output)
	fmt.Fprintln(stdout, "--- Sorted Data ---")
	fmt.Fprint(stdout, orNone(sorted))
	fmt.Fprintln(stdout, "--- Unsortable Data ---")
	fmt.Fprint(stdout, orNone(unsorted))

	if *outDir == "" {
		return nil
	}
	return save(*outDir, cfg.Output, sorted, unsorted)
}

func render(result *model.CombinedResult, output string) (sorted, unsorted string) {
	if output == config.OutputMarkdown {
		return result.Sorted.ToMarkdown(), result.Unsorted.ToMarkdown()
	}
	if !result.Sorted.IsEmpty() {
		sorted = result.Sorted.ToCSV()
	}
	if !result.Unsorted.IsEmpty() {
		unsorted = result.Unsorted.ToCSV()
	}
	return sorted, unsorted
}

func orNone(s string) string {
	if s == "" {
		return "(none)\n"
	}
	return s
}

func save(dir, output, sorted, unsorted string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	ext := ".csv"
	if output == config.OutputMarkdown {
		ext = ".md"
	}
	files := []struct{ name, content string }{
		{"sorted" + ext, sorted},
		{"unsorted" + ext, unsorted},
	}
	for _, f := range files {
		if f.content == "" {
			continue
		}
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}
