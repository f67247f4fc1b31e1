package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cyxnb666/AccountingApp/internal/cli"
	"github.com/cyxnb666/AccountingApp/internal/stats"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals, category breakdown, and trends for a period",
		Example: `  accounting stats
  accounting stats --month 2025-06
  accounting stats --week 2025-06-09`,
		RunE: runStats,
	}

	addPeriodFlags(cmd)
	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	period, err := periodFromFlags(cmd)
	if err != nil {
		return err
	}

	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	expenses := l.Expenses()
	summary := stats.Summarize(period, expenses, l.Budget())

	var card strings.Builder
	fmt.Fprintf(&card, "%s\n", cli.FormatTitle(period.Label()))
	fmt.Fprintf(&card, "支出合计   %s\n", cli.FormatAmount(summary.Total))
	fmt.Fprintf(&card, "记录笔数   %d\n", summary.Count)
	fmt.Fprintf(&card, "日均支出   %s\n", cli.FormatAmount(summary.DailyAverage))
	fmt.Fprintf(&card, "单笔平均   %s\n", cli.FormatAmount(summary.PerRecord))
	fmt.Fprintf(&card, "预算       %s  已用 %.0f%%\n",
		cli.FormatAmount(summary.Budget), summary.BudgetUsedPct)
	fmt.Fprintf(&card, "预算剩余   %s", cli.FormatAmount(summary.Remaining))
	fmt.Println(cli.BoxStyle.Render(card.String()))

	breakdown := stats.Breakdown(period, expenses)
	if len(breakdown) > 0 {
		fmt.Println(cli.FormatTitle("分类占比"))
		for _, c := range breakdown {
			cat := l.DisplayCategory(c.CategoryID)
			fmt.Printf("  %s %-8s %s  %s\n",
				cat.Icon, cat.Name,
				cli.FormatAmount(c.Amount),
				cli.SubtleStyle.Render(fmt.Sprintf("%d%%", c.Percent)))
		}
	}

	prev := stats.Compare(summary.Total, stats.PeriodTotal(period.Prev(), expenses))
	yoy := stats.Compare(summary.Total, stats.PeriodTotal(period.YearEarlier(), expenses))
	fmt.Println(cli.FormatTitle("趋势"))
	fmt.Printf("  较上期   %s\n", formatChange(prev))
	fmt.Printf("  较去年   %s\n", formatChange(yoy))

	return nil
}

func formatChange(c stats.Change) string {
	switch c.Direction {
	case stats.Up:
		return cli.ErrorStyle.Render(fmt.Sprintf("↑ %.1f%%", c.Percent))
	case stats.Down:
		return cli.SuccessStyle.Render(fmt.Sprintf("↓ %.1f%%", c.Percent))
	default:
		return cli.SubtleStyle.Render("持平")
	}
}
