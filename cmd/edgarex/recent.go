package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/pvickers/edgarex/edgar"
)

func handleRecent(contact string, args []string) {
	fs := flag.NewFlagSet("recent", flag.ExitOnError)
	cik := fs.String("cik", "", "Company CIK number (required)")
	form := fs.String("form", "10-K", "Filing form type")
	limit := fs.Int("limit", 10, "Maximum number of filings to list")
	format := fs.String("format", "table", "Output format: table, json")
	fs.Parse(args)

	if *cik == "" {
		fmt.Fprintln(os.Stderr, "Error: -cik is required")
		fs.Usage()
		os.Exit(1)
	}

	client := edgar.NewClient(contact, 0)
	filings, err := client.RecentFilings(*cik, *form, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to list filings: %v\n", err)
		os.Exit(1)
	}

	if len(filings) == 0 {
		fmt.Printf("No %s filings found for CIK %s\n", *form, *cik)
		return
	}

	switch *format {
	case "json":
		data, err := json.MarshalIndent(filings, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to marshal filings: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	default:
		fmt.Printf("%-12s %-22s %-12s %s\n", "FORM", "ACCESSION", "FILED", "INDEX URL")
		for _, f := range filings {
			filed := ""
			if !f.FilingDate.IsZero() {
				filed = f.FilingDate.Format("2006-01-02")
			}
			fmt.Printf("%-12s %-22s %-12s %s\n", f.Form, f.AccessionNo, filed, f.IndexURL)
		}
	}
}
