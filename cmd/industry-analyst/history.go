// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/industry-analyst/internal/archive"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past research runs from the local archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		store, err := archive.Open(cfg.Archive.Dir)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		entries, err := store.List(limit)
		if err != nil {
			return err
		}
		archive.FormatTable(entries, os.Stdout)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list (0 for all)")

	rootCmd.AddCommand(historyCmd)
}
