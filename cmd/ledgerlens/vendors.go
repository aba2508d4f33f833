package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mwhitmore/ledgerlens/internal/common"
	"github.com/mwhitmore/ledgerlens/internal/config"
	"github.com/mwhitmore/ledgerlens/internal/memory"
	"github.com/mwhitmore/ledgerlens/internal/model"
	"github.com/mwhitmore/ledgerlens/internal/storage"
)

func vendorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Manage learned vendor memory",
		Long:  `View and manage the learned vendor-to-category memory.`,
	}

	cmd.AddCommand(vendorsListCmd())
	cmd.AddCommand(vendorsSetCmd())
	cmd.AddCommand(vendorsSearchCmd())
	cmd.AddCommand(vendorsDeleteCmd())

	return cmd
}

func openStore() (*storage.SQLiteStore, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	return storage.NewSQLiteStore(settings.DatabasePath)
}

func printVendors(cmd *cobra.Command, vendors []model.Vendor) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VENDOR\tCATEGORY\tACCOUNT\tSEEN\tUPDATED")
	for _, v := range vendors {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			v.Name, v.Category, v.AccountCode, v.UseCount,
			v.LastUpdated.Format("2006-01-02"))
	}
	_ = w.Flush()
}

func vendorsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all learned vendors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vendors, err := store.ListVendors(cmd.Context())
			if err != nil {
				return err
			}
			if len(vendors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No vendors learned yet.")
				return nil
			}
			printVendors(cmd, vendors)
			return nil
		},
	}
}

func vendorsSetCmd() *cobra.Command {
	var accountCode string

	cmd := &cobra.Command{
		Use:   "set <vendor> <category>",
		Short: "Record an approved vendor categorization",
		Long: `Record an approved categorization for a vendor. This is the review
workflow's write-back: the vendor name is normalized, the category and
account code replace any prior value, and the observation count grows.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vendor, category := args[0], args[1]
			if !model.ValidCategory(category) {
				return fmt.Errorf("%w: %s", common.ErrInvalidCategory, category)
			}
			if accountCode == "" {
				accountCode = model.AccountCodeFor(category)
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := memory.Remember(cmd.Context(), store, vendor, category, accountCode); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Learned %q -> %s (%s)\n",
				memory.Normalize(vendor), category, accountCode)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountCode, "account-code", "", "chart-of-accounts code (default: the category's code)")
	return cmd
}

func vendorsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search learned vendors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			vendors, err := store.SearchVendors(cmd.Context(), memory.Normalize(args[0]))
			if err != nil {
				return err
			}
			if len(vendors) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching vendors.")
				return nil
			}
			printVendors(cmd, vendors)
			return nil
		},
	}
}

func vendorsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <vendor>",
		Short: "Forget a learned vendor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			key := memory.Normalize(args[0])
			if err := store.DeleteVendor(cmd.Context(), key); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return fmt.Errorf("no learned vendor %q", key)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Forgot %q\n", key)
			return nil
		},
	}
}
