package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhitmore/ledgerlens/internal/classify"
	"github.com/mwhitmore/ledgerlens/internal/config"
	"github.com/mwhitmore/ledgerlens/internal/engine"
	"github.com/mwhitmore/ledgerlens/internal/memory"
	"github.com/mwhitmore/ledgerlens/internal/review"
	"github.com/mwhitmore/ledgerlens/internal/storage"
)

func extractCmd() *cobra.Command {
	var (
		vendorOverride string
		noMemory       bool
	)

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract and categorize a receipt from OCR text",
		Long: `Run the receipt understanding pipeline over OCR text read from a file
(or stdin when omitted) and print the combined record as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(args)
			if err != nil {
				return err
			}

			settings, err := config.Load()
			if err != nil {
				return err
			}

			var store memory.Store
			if !noMemory {
				sqlStore, err := storage.NewSQLiteStore(settings.DatabasePath)
				if err != nil {
					return fmt.Errorf("failed to open vendor memory: %w", err)
				}
				defer func() { _ = sqlStore.Close() }()
				store = sqlStore
			}

			var opts []classify.Option
			if settings.RulesFile != "" {
				rules, err := classify.LoadRules(settings.RulesFile)
				if err != nil {
					return err
				}
				opts = append(opts, classify.WithRules(rules))
			}
			if settings.KeywordTablesFile != "" {
				tables, err := classify.LoadKeywordTables(settings.KeywordTablesFile)
				if err != nil {
					return err
				}
				opts = append(opts, classify.WithKeywordTables(tables))
			}

			policy := review.Policy{
				ParseThreshold:    settings.ReviewThreshold,
				CategoryThreshold: settings.CategoryThreshold,
			}

			record := engine.New(store, policy, opts...).Process(cmd.Context(), raw, vendorOverride)

			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode record: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&vendorOverride, "vendor", "", "already-known vendor name, overrides extraction for categorization")
	cmd.Flags().BoolVar(&noMemory, "no-memory", false, "skip the learned vendor memory tier")

	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
