// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/industry-analyst/internal/industry"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List available industry bundles",
	Long: `Industries lists the industry bundles available to the run command:
the built-ins plus any YAML bundles found in the industries directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		bundles, err := industry.Load(cfg.IndustriesDir)
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(bundles))
		for k := range bundles {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Printf("%-12s  %s\n", k, bundles[k].Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(industriesCmd)
}
