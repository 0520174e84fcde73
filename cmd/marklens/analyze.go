package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/marklens/marklens/internal/analysis"
	"github.com/marklens/marklens/internal/source"
	"github.com/marklens/marklens/internal/views"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		maxDepth    int
		mode        string
		heatmapTopN int
		indentUnit  string
		asJSON      bool
		pdftotext   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <export-file>",
		Short: "Analyze a bookmark export file",
		Long:  "Reads a bookmark export (CSV, JSON, Netscape HTML, Markdown, DOCX or PDF), builds the folder hierarchy and prints the folder tree or, with --json, every projected view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedMode, err := views.ParseMode(mode)
			if err != nil {
				return err
			}
			opts := analysis.Options{
				MaxDepth:    maxDepth,
				Mode:        parsedMode,
				HeatmapTopN: heatmapTopN,
				IndentUnit:  indentUnit,
			}
			return runAnalyze(args[0], opts, asJSON, pdftotext)
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "truncate treemap/sunburst below this depth (0 = unlimited)")
	cmd.Flags().StringVar(&mode, "mode", "", "treemap mode: hierarchical or grouped")
	cmd.Flags().IntVar(&heatmapTopN, "heatmap-top-n", analysis.DefaultHeatmapTopN, "number of folders to rank in the heatmap (0 = all)")
	cmd.Flags().StringVar(&indentUnit, "indent", "", "indentation unit for the text tree")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full analysis result as JSON")
	cmd.Flags().BoolVar(&pdftotext, "pdftotext-fallback", false, "shell out to pdftotext when PDF text extraction fails")

	return cmd
}

func runAnalyze(path string, opts analysis.Options, asJSON, pdftotext bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := source.ForFile(path)
	if err != nil {
		return err
	}
	if pdfSrc, ok := src.(*source.PDFSource); ok {
		pdfSrc.FallbackPdftotext = pdftotext
	}

	records, err := src.Parse(f, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	result, err := analysis.Run(records, opts)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%s: %d bookmarks in %d folders\n", filepath.Base(path), result.Stats.TotalBookmarks, result.Stats.TotalFolders)
	if result.TreeText != "" {
		fmt.Println(result.TreeText)
	}
	return nil
}
