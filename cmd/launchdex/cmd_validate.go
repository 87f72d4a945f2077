package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfreitag/launchdex/pkg/catalog"
)

// validateCmd checks an external dataset file against the directory schema.
var validateCmd = &cobra.Command{
	Use:   "validate <dataset.json>",
	Short: "Validate a dataset file against the directory schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	cat := catalog.NewFromBytes(data, logger)
	ds, err := cat.Dataset()
	if err != nil {
		return fmt.Errorf("validate %q: %w", path, err)
	}

	fmt.Printf("%s: valid (%d items, %d categories, %d tags)\n",
		path, len(ds.Items), len(ds.Categories), len(ds.Tags))
	return nil
}
