package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyxnb666/AccountingApp/internal/cli"
	"github.com/cyxnb666/AccountingApp/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Example: `  accounting add --amount 14 --desc 午饭 --category food
  accounting add --amount 128.5 --desc 理发 --date 2025-06-14`,
		RunE: runAdd,
	}

	cmd.Flags().String("amount", "", "expense amount (required)")
	cmd.Flags().String("desc", "", "description (required)")
	cmd.Flags().String("category", model.CategoryOther, "category id")
	cmd.Flags().String("date", "", "occurrence date (YYYY-MM-DD, default: now)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	amountFlag, _ := cmd.Flags().GetString("amount")
	desc, _ := cmd.Flags().GetString("desc")
	category, _ := cmd.Flags().GetString("category")
	dateFlag, _ := cmd.Flags().GetString("date")

	// Boundary validation: these never reach the ledger.
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountFlag), 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amountFlag, err)
	}
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return fmt.Errorf("description cannot be empty")
	}

	var date time.Time
	if dateFlag != "" {
		date, err = time.ParseInLocation("2006-01-02", dateFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateFlag, err)
		}
	}

	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	e := model.NewExpense(amount, desc, category, date)
	l.AddExpense(cmd.Context(), e)

	cat := l.DisplayCategory(e.Category)
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("记账成功 %s %s %s",
		cat.Icon, desc, cli.FormatAmount(amount))))
	return nil
}
