package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pvickers/edgarex/report"
)

func handleRuns(archiveDB string, args []string) {
	sub := "list"
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		sub = args[0]
		args = args[1:]
	}

	switch sub {
	case "list":
		handleRunsList(archiveDB, args)
	case "show":
		handleRunsShow(archiveDB, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown runs subcommand: %s\n", sub)
		os.Exit(1)
	}
}

func handleRunsList(archiveDB string, args []string) {
	fs := flag.NewFlagSet("runs list", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Maximum number of runs to display")
	fs.Parse(args)

	store := openStore(archiveDB)
	defer store.Close()

	runs, err := store.ListRuns(*limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to list runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No archived runs")
		return
	}

	fmt.Printf("%-38s %-20s %-18s %-9s %s\n", "RUN ID", "EXTRACTED", "METHOD", "SECTIONS", "SOURCE")
	for _, run := range runs {
		fmt.Printf("%-38s %-20s %-18s %-9d %s\n",
			run.RunID, run.ExtractedAt.Format("2006-01-02 15:04:05"),
			run.Method, run.SectionCount, run.SourceURL)
	}
}

func handleRunsShow(archiveDB string, args []string) {
	fs := flag.NewFlagSet("runs show", flag.ExitOnError)
	full := fs.Bool("full", false, "Print full section text instead of a preview")
	fs.Parse(args)

	idArg := fs.Arg(0)
	if idArg == "" {
		fmt.Fprintln(os.Stderr, "Error: a run id is required")
		os.Exit(1)
	}
	runID, err := uuid.Parse(idArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id: %v\n", err)
		os.Exit(1)
	}

	store := openStore(archiveDB)
	defer store.Close()

	run, err := store.GetRun(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run:       %s\n", run.RunID)
	fmt.Printf("Source:    %s\n", run.SourceURL)
	fmt.Printf("Method:    %s\n", run.Method)
	fmt.Printf("Extracted: %s\n", run.ExtractedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Sections:  %d\n", run.SectionCount)

	for _, sec := range run.Sections {
		fmt.Printf("\n--- %s (%d words) ---\n", sec.Key, sec.WordCount)
		if *full {
			fmt.Println(sec.Text)
			continue
		}
		preview := sec.Text
		if len(preview) > 300 {
			preview = preview[:300] + "..."
		}
		fmt.Println(preview)
	}
}

func openStore(archiveDB string) *report.Store {
	store, err := report.NewStore(archiveDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open archive: %v\n", err)
		os.Exit(1)
	}
	return store
}
