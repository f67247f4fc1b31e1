package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/cyxnb666/AccountingApp/internal/cli"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import historical expenses from a plain-text file",
		Long: `Import expenses from a plain-text file with one record per line:

  year,month,day,amount,description,categoryName

Malformed lines are skipped; the rest of the file still imports.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat import file: %w", err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "reading")
	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), f); err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	res := l.Import(cmd.Context(), buf.String())

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("成功导入 %d 条记录", len(res.Imported))))
	if len(res.SkippedLines) > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("跳过 %d 条无法解析的记录 (行号 %v)",
			len(res.SkippedLines), res.SkippedLines)))
	}
	return nil
}
