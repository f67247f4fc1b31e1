package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyxnb666/AccountingApp/internal/cli"
	"github.com/cyxnb666/AccountingApp/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		RunE:  runCategoriesList,
	}

	addCmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a user-defined category",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategoriesAdd,
	}
	addCmd.Flags().String("icon", "🏷️", "display icon")

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a category (its expenses fall back to 其他)",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategoriesDelete,
	}

	renameCmd := &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE:  runCategoriesRename,
	}

	cmd.AddCommand(addCmd, deleteCmd, renameCmd)
	return cmd
}

func runCategoriesList(cmd *cobra.Command, _ []string) error {
	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	for _, c := range l.Categories() {
		fmt.Printf("%s %-8s %s\n", c.Icon, c.Name, cli.SubtleStyle.Render(c.ID))
	}
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	icon, _ := cmd.Flags().GetString("icon")

	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	c := model.NewCategory(args[0], icon)
	l.AddCategory(cmd.Context(), c)
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("已添加分类 %s %s (%s)", c.Icon, c.Name, c.ID)))
	return nil
}

func runCategoriesDelete(cmd *cobra.Command, args []string) error {
	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	c, ok := l.CategoryByID(args[0])
	if !ok {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("分类 %s 不存在", args[0])))
		return nil
	}
	l.DeleteCategory(cmd.Context(), args[0])
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("已删除分类 %s %s", c.Icon, c.Name)))
	return nil
}

func runCategoriesRename(cmd *cobra.Command, args []string) error {
	l, store, err := openLedger(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()

	c, ok := l.CategoryByID(args[0])
	if !ok {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("分类 %s 不存在", args[0])))
		return nil
	}
	c.Name = args[1]
	l.UpdateCategory(cmd.Context(), c)
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("已重命名为 %s %s", c.Icon, c.Name)))
	return nil
}
