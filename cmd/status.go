package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List monthly lead partitions in the target spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSheetsClient(cmd.Context())
		if err != nil {
			return err
		}

		titles, err := client.SheetTitles(cmd.Context())
		if err != nil {
			return err
		}

		var partitions []string
		for _, title := range titles {
			if strings.HasPrefix(title, "data_") {
				partitions = append(partitions, title)
			}
		}
		sort.Strings(partitions)

		if len(partitions) == 0 {
			fmt.Println("no lead partitions found")
			return nil
		}

		fmt.Printf("%d lead partition(s):\n", len(partitions))
		for _, p := range partitions {
			fmt.Printf("  %s\n", p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
