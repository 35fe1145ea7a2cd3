package cmd

import (
	"github.com/LavenderBridge/vocab/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all words (English: List all words | Vietnamese: Liệt kê tất cả từ)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		locale, ok := resolveLocale(cmd, ui.NewPalette(cmd.OutOrStdout()))
		if !ok {
			return nil
		}

		svc, store, err := openService(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		return svc.List(locale)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	addLangFlag(listCmd)
}
