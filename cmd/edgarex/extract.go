package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pvickers/edgarex/config"
	"github.com/pvickers/edgarex/edgar"
	"github.com/pvickers/edgarex/report"
	"github.com/pvickers/edgarex/sections"
)

func handleExtract(cfg *config.Config, contact, archiveDB string, args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	output := fs.String("o", "10k_extracted.json", "Output JSON file")
	archive := fs.Bool("archive", false, "Also save the run to the archive database")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	timeout := fs.Duration("timeout", 0, "Fetch timeout (0 uses the configured default)")
	fs.Parse(args)

	url := fs.Arg(0)
	if url == "" {
		fmt.Fprintln(os.Stderr, "Error: a filing URL is required")
		fs.Usage()
		os.Exit(1)
	}

	fetchTimeout := *timeout
	if fetchTimeout == 0 {
		fetchTimeout = cfg.Timeout()
	}

	progress := func(format string, a ...interface{}) {
		if !*quiet {
			fmt.Printf(format, a...)
		}
	}

	client := edgar.NewClient(contact, fetchTimeout)

	progress("Fetching 10-K from %s...\n", url)
	doc, err := client.FetchFiling(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to fetch filing: %v\n", err)
		os.Exit(1)
	}

	segmenter := sections.NewSegmenter()
	result, err := segmenter.Segment(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to segment filing: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		printSummary(result)
	}

	outputPath := *output
	if cfg != nil && cfg.OutputDir != "" && !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(cfg.OutputDir, outputPath)
	}

	rep := report.New(result, url, time.Now())
	if err := rep.WriteFile(outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	progress("\nExtraction complete! Data saved to %s\n", outputPath)

	if *archive {
		store, err := report.NewStore(archiveDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open archive: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		runID, err := store.SaveReport(rep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to archive run: %v\n", err)
			os.Exit(1)
		}
		progress("Archived as run %s\n", runID)
	}
}

// printSummary reports per-target word and character counts, mirroring what
// a reader checks first: did the big sections come out, and are they a
// sensible size.
func printSummary(result *sections.Result) {
	fmt.Println("\nExtraction Summary:")
	targets := sections.Targets()
	totalWords := 0
	found := 0
	for _, key := range targets {
		content, ok := result.Sections[key]
		if !ok || content == "" {
			fmt.Printf("  %s: NOT FOUND\n", key)
			continue
		}
		words := len(strings.Fields(content))
		totalWords += words
		found++
		fmt.Printf("  %s: %d words, %d characters\n", key, words, len(content))
	}
	fmt.Printf("\nMethod used: %s\n", result.Method)
	fmt.Printf("Sections found: %d/%d\n", found, len(targets))
	fmt.Printf("Total words: %d\n", totalWords)
}
