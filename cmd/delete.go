package cmd

import (
	"github.com/LavenderBridge/vocab/internal/ui"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <word>",
	Short: "Delete a word (English: Delete a word | Vietnamese: Xóa một từ)",
	Long: `Delete a word.
Every entry whose word matches, ignoring case, is removed.`,
	Args: cobra.ExactArgs(1),
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

		return svc.Delete(args[0], locale)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	addLangFlag(deleteCmd)
}
