package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyxnb666/AccountingApp/internal/cli"
)

func clearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all expenses (categories and budget are kept)",
		RunE:  runClear,
	}
	cmd.Flags().Bool("yes", false, "confirm deletion")
	return cmd
}

func runClear(cmd *cobra.Command, _ []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		return fmt.Errorf("refusing to delete all expenses without --yes")
	}

	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	n := len(l.Expenses())
	l.ClearExpenses(cmd.Context())
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("已清空 %d 条记录", n)))
	return nil
}
