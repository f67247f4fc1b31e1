package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyxnb666/AccountingApp/internal/aggregate"
	"github.com/cyxnb666/AccountingApp/internal/cli"
	"github.com/cyxnb666/AccountingApp/internal/common"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse expenses grouped by day",
		Example: `  accounting list
  accounting list --month 2025-06
  accounting list --week 2025-06-09
  accounting list --back 2`,
		RunE: runList,
	}

	addPeriodFlags(cmd)
	cmd.Flags().Int("back", 0, "step this many periods back from the selection")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	period, err := periodFromFlags(cmd)
	if err != nil {
		return err
	}
	back, _ := cmd.Flags().GetInt("back")

	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	// Stepping is clamped to the range of recorded expenses; hitting a
	// boundary keeps the selection and tells the user.
	nav := aggregate.NewNavigator(l, period)
	for i := 0; i < back; i++ {
		if err := nav.Prev(); err != nil {
			var userErr *common.UserError
			if errors.As(err, &userErr) {
				fmt.Println(cli.FormatWarning(userErr.UserMessage))
				break
			}
			return err
		}
	}
	period = nav.Current()

	agg := aggregate.NewAggregator()
	groups := agg.Groups(period, l.Generation(), l.Expenses())

	fmt.Println(cli.FormatTitle(period.Label()))
	if len(groups) == 0 {
		fmt.Println(cli.SubtleStyle.Render("本期没有记录"))
		return nil
	}

	for _, g := range groups {
		fmt.Printf("%s  %s\n",
			cli.FormatTitle(g.Label),
			cli.SubtleStyle.Render(fmt.Sprintf("合计 ¥%d", g.Total)))
		for _, e := range g.Expenses {
			cat := l.DisplayCategory(e.Category)
			fmt.Printf("  %s %-12s %s  %s\n",
				cat.Icon, e.Description,
				cli.FormatAmount(e.Amount),
				cli.SubtleStyle.Render(cat.Name))
		}
	}
	return nil
}
