package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cyxnb666/AccountingApp/internal/cli"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [FILE]",
		Short: "Export all expenses as plain text",
		Long: `Export every expense in the same line format import accepts, so an
exported file can be re-imported. With no FILE, writes to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	text := l.Export()

	if len(args) == 0 {
		fmt.Print(text)
		return nil
	}

	if err := os.WriteFile(args[0], []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("已导出 %d 条记录到 %s", len(l.Expenses()), args[0])))
	return nil
}
