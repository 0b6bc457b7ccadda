// Package main implements the provet command-line tool: it generates a
// discharge note from a single consultation document and reports the
// output path.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/provetlabs/provet-api/internal/config"
	"github.com/provetlabs/provet-api/internal/platform/gemini"
	"github.com/provetlabs/provet-api/internal/platform/template"
	"github.com/provetlabs/provet-api/internal/service"
	"github.com/provetlabs/provet-api/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with the given arguments and returns the process
// exit code: 0 on success, 1 on any failure.
func run(args []string) int {
	flags := flag.NewFlagSet("provet", flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	templateDir := flags.String("template-dir", "", "Directory containing prompt templates (default: from configuration)")
	outputDir := flags.String("output-dir", "", "Directory to save the output file (default: from configuration)")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: provet [flags] <file>")
		fmt.Fprintln(os.Stderr, "Generate a discharge note from a consultation data file.")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}
	inputPath := flags.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *templateDir != "" {
		cfg.Paths.TemplatesDir = *templateDir
	}
	if *outputDir != "" {
		cfg.Paths.OutputDir = *outputDir
	}

	// Keep the terminal clean: only warnings and errors, on stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx := context.Background()

	engine, err := template.NewEngine(cfg.Paths.TemplatesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	documentStore := store.NewDocumentStore(cfg.Paths.OutputDir, logger)
	notes := service.NewNoteService(documentStore, engine, generator, cfg.LLM.CustomInstruction, logger)

	outputPath, err := notes.ProcessFile(ctx, inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Discharge note successfully generated and saved to %s\n", outputPath)
	return 0
}
