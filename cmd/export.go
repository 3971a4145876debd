package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
)

var (
	exportPartition string
	exportOut       string
)

// Header row matching the partition column order A-F.
var exportHeader = []string{"Customer ID", "Post ID", "Page", "Customer Name", "Phone", "Comment Time"}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one monthly partition to a local .xlsx file",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSheetsClient(cmd.Context())
		if err != nil {
			return err
		}

		rows, err := client.ReadRange(cmd.Context(), fmt.Sprintf("%s!A:F", exportPartition))
		if err != nil {
			return err
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet(exportPartition)
		if err != nil {
			return eris.Wrap(err, "export: add sheet")
		}

		headerRow := sheet.AddRow()
		for _, h := range exportHeader {
			headerRow.AddCell().Value = h
		}
		for _, row := range rows {
			xr := sheet.AddRow()
			for _, cell := range row {
				xr.AddCell().Value = cell
			}
		}

		out := exportOut
		if out == "" {
			out = exportPartition + ".xlsx"
		}
		if err := file.Save(out); err != nil {
			return eris.Wrapf(err, "export: save %s", out)
		}

		zap.L().Info("export complete",
			zap.String("partition", exportPartition),
			zap.Int("rows", len(rows)),
			zap.String("file", out))
		fmt.Printf("exported %d row(s) from %s to %s\n", len(rows), exportPartition, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPartition, "partition", "", "partition tab name, e.g. data_202406")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default <partition>.xlsx)")
	exportCmd.MarkFlagRequired("partition")
	rootCmd.AddCommand(exportCmd)
}
