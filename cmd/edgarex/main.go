package main

import (
	"fmt"
	"os"

	"github.com/pvickers/edgarex/config"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	contact := getEnv("EDGAREX_CONTACT", configContact(cfg))
	archiveDB := getEnv("EDGAREX_ARCHIVE_DB", configArchiveDB(cfg))

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "extract":
		handleExtract(cfg, contact, archiveDB, args)
	case "recent":
		handleRecent(contact, args)
	case "runs":
		handleRuns(archiveDB, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func configContact(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.Contact
}

func configArchiveDB(cfg *config.Config) string {
	if cfg == nil || cfg.ArchiveDB == "" {
		return "edgarex.db"
	}
	return cfg.ArchiveDB
}

func printUsage() {
	fmt.Println(`edgarex - extract item sections from SEC 10-K filings

Usage:
  edgarex extract <url> [-o file.json] [-archive] [-quiet]
      Fetch a 10-K HTML document and extract its target item sections.

  edgarex recent -cik <cik> [-form 10-K] [-limit n] [-format table|json]
      List a company's recent filings from the EDGAR Atom feed.

  edgarex runs [list|show <run-id>] [-limit n]
      Inspect the archive of past extraction runs.

Environment:
  EDGAREX_CONTACT      Contact e-mail for the SEC User-Agent header
  EDGAREX_ARCHIVE_DB   Path of the run archive database

Configuration may also be placed in ~/.edgarex/config.yaml.`)
}
