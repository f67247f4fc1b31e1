package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cyxnb666/AccountingApp/internal/cli"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget [set AMOUNT]",
		Short: "Show or set the monthly budget",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runBudget,
	}
	return cmd
}

func runBudget(cmd *cobra.Command, args []string) error {
	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		fmt.Printf("每月预算 %s\n", cli.FormatAmount(l.Budget()))
		return nil
	}

	if args[0] != "set" || len(args) != 2 {
		return fmt.Errorf("usage: accounting budget set AMOUNT")
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid budget %q: %w", args[1], err)
	}

	l.SetBudget(cmd.Context(), v)
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("每月预算已更新为 %s", cli.FormatAmount(v))))
	return nil
}
