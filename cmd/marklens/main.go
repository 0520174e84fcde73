package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "marklens",
		Short: "Bookmark hierarchy analysis",
		Long:  "Builds folder hierarchies from bookmark exports and projects them into treemap, sunburst, heatmap and text views",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
