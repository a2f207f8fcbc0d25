package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openhire/matchengine/internal/ingestion"
	"github.com/openhire/matchengine/internal/skills"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract canonical skills from a job description",
	Long:  "Extract canonical skill names from a plain text or HTML job description file and print them as JSON.",
	RunE:  runExtract,
}

var (
	extractTextFile string
	extractHTMLFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractTextFile, "text-file", "t", "", "Path to a plain text job description")
	extractCmd.Flags().StringVar(&extractHTMLFile, "html-file", "", "Path to a raw HTML job description")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractTextFile == "" && extractHTMLFile == "" {
		return fmt.Errorf("either --text-file or --html-file must be provided")
	}
	if extractTextFile != "" && extractHTMLFile != "" {
		return fmt.Errorf("--text-file and --html-file are mutually exclusive; provide only one")
	}

	var text string
	if extractTextFile != "" {
		data, err := os.ReadFile(extractTextFile)
		if err != nil {
			return fmt.Errorf("failed to read text file: %w", err)
		}
		text = ingestion.CleanText(string(data))
	} else {
		data, err := os.ReadFile(extractHTMLFile)
		if err != nil {
			return fmt.Errorf("failed to read HTML file: %w", err)
		}
		text, err = ingestion.ExtractText(string(data))
		if err != nil {
			return fmt.Errorf("failed to parse HTML: %w", err)
		}
	}

	cat, err := loadCatalog("", "")
	if err != nil {
		return err
	}

	found := skills.NewExtractor(cat.Skills).Extract(text)
	return printJSON(found)
}

// printJSON writes indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
