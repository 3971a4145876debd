package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Never print the service-account key.
		redacted := *cfg
		if redacted.Sheets.CredentialsJSON != "" {
			redacted.Sheets.CredentialsJSON = "<redacted>"
		}

		out, err := yaml.Marshal(&redacted)
		if err != nil {
			return eris.Wrap(err, "config: marshal")
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
