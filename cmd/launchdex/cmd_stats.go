package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfreitag/launchdex/internal/stats"
	"github.com/mfreitag/launchdex/pkg/catalog"
)

// statsCmd prints homepage statistics for the embedded dataset.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print statistics for the embedded dataset",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cat := catalog.New(logger)
	ds, err := cat.Dataset()
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(stats.Calculate(ds))
}
