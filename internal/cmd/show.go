package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/oleg578/fixedcsv"
	"github.com/oleg578/fixedcsv/internal/stats"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show [flags] csv_file",
		Short: "print one row of a CSV file.",
		Long: `Load a CSV file whose lines all have the given number of
	columns and print a single row as "name: value" lines.  Files
	ending in .lz4 are decompressed first.`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	showCmd.Flags().IntP("columns", "n", 0, "number of columns in every line")
	showCmd.Flags().IntP("row", "r", 1, "index of the row to print (0 is the first data row)")
	showCmd.Flags().Bool("trim-quotes", false, "remove quote characters from fields")
	showCmd.Flags().Bool("timing", false, "print the execution time")
	showCmd.Flags().String("format", "text", "output format: text, csv or json")
	_ = showCmd.MarkFlagRequired("columns")

	return showCmd
}

func runShow(cmd *cobra.Command, args []string) error {
	var (
		columns    = getInt(cmd, "columns")
		index      = getInt(cmd, "row")
		trimQuotes = getFlag(cmd, "trim-quotes")
		timing     = getFlag(cmd, "timing")
		format     = getString(cmd, "format")
		out        = cmd.OutOrStdout()
	)
	// Reject bad formats before doing any work
	if format != "text" && format != "csv" && format != "json" {
		return fmt.Errorf("unknown output format %q", format)
	}
	//
	perf := stats.NewPerfStats()
	table, err := fixedcsv.LoadFile(args[0], columns, func(r *fixedcsv.Reader) {
		r.TrimQuotes = trimQuotes
	})
	if err != nil {
		return err
	}
	delta := perf.Since()
	perf.Log("loading " + args[0])
	//
	if err := printRow(out, table, index, format); err != nil {
		return err
	}
	if timing {
		fmt.Fprintf(out, "Execution Time = %gs\n", delta.Elapsed.Seconds())
	}
	return nil
}

// printRow writes row index of table to out in the requested format.
func printRow(out io.Writer, table *fixedcsv.Table, index int, format string) error {
	switch format {
	case "csv":
		row, err := table.Fields(index)
		if err != nil {
			return err
		}
		w := fixedcsv.NewWriter(out)
		if err := w.WriteAll([]fixedcsv.Row{table.Columns(), row}); err != nil {
			return err
		}
		return w.Flush()
	case "json":
		view, err := table.Row(index)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	default:
		row, err := table.Fields(index)
		if err != nil {
			return err
		}
		log.Debugf("printing row %d of %d", index, table.Len())
		for i, name := range table.Columns() {
			fmt.Fprintf(out, "%s: %s\n", name, row[i])
		}
		return nil
	}
}
