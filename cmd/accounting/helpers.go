package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cyxnb666/AccountingApp/internal/aggregate"
	"github.com/cyxnb666/AccountingApp/internal/config"
	"github.com/cyxnb666/AccountingApp/internal/ledger"
	"github.com/cyxnb666/AccountingApp/internal/storage"
)

// openLedger opens the configured database and loads the ledger. The
// caller must Close the returned store.
func openLedger(ctx context.Context) (*ledger.Ledger, *storage.SQLiteStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	l, err := ledger.New(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return l, store, nil
}

// addPeriodFlags registers the period-selection flags shared by list and
// stats.
func addPeriodFlags(cmd *cobra.Command) {
	cmd.Flags().String("month", "", "month to show (YYYY-MM, default: current)")
	cmd.Flags().String("week", "", "week to show, by any day in it (YYYY-MM-DD)")
}

// periodFromFlags resolves --month/--week into a period, defaulting to the
// current month.
func periodFromFlags(cmd *cobra.Command) (aggregate.Period, error) {
	monthFlag, _ := cmd.Flags().GetString("month")
	weekFlag, _ := cmd.Flags().GetString("week")

	if monthFlag != "" && weekFlag != "" {
		return aggregate.Period{}, fmt.Errorf("--month and --week are mutually exclusive")
	}

	switch {
	case monthFlag != "":
		t, err := time.ParseInLocation("2006-01", monthFlag, time.Local)
		if err != nil {
			return aggregate.Period{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", monthFlag, err)
		}
		return aggregate.MonthOf(t), nil
	case weekFlag != "":
		t, err := time.ParseInLocation("2006-01-02", weekFlag, time.Local)
		if err != nil {
			return aggregate.Period{}, fmt.Errorf("invalid week day %q (want YYYY-MM-DD): %w", weekFlag, err)
		}
		return aggregate.WeekOf(t), nil
	default:
		return aggregate.MonthOf(time.Now()), nil
	}
}
