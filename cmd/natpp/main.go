// Package main provides the CLI entry point for natpp.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/natpp-go/pkg/natpp"
	"github.com/ukaji3/natpp-go/pkg/natpp/output"
	"github.com/ukaji3/natpp-go/pkg/natpp/tidy"
)

var (
	opts    = natpp.DefaultOptions()
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "natpp [release.zip]",
		Short: "Convert national population projections to a tidy CSV",
		Long: `natpp reads a zip of national population projection workbooks
(spreadsheet XML, one per projection variant) and writes a single tidy table
with one observation per row.

The canonical invocation is the archive path alone:

  natpp release.zip

which writes "Experimental-National Population Projections.csv" to the
working directory. The flags below only override that default.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&opts.OutputPath, "output", "o", opts.OutputPath, "Output CSV path")
	rootCmd.Flags().StringVar(&opts.XLSXPath, "xlsx", "", "Also write the table to this workbook path")
	rootCmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when a workbook lacks any expected named range")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	table, err := natpp.Extract(inputPath, opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := output.WriteCSVFile(opts.OutputPath, table); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.WithFields(log.Fields{"path": opts.OutputPath, "rows": table.NumRows()}).Info("Wrote tidy table")

	if opts.ShouldWriteXLSX() {
		if err := output.WriteXLSX(opts.XLSXPath, table, tidy.ColValue); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		log.WithField("path", opts.XLSXPath).Info("Wrote workbook copy")
	}

	return nil
}
