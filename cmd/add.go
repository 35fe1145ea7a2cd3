package cmd

import (
	"fmt"

	"github.com/LavenderBridge/vocab/internal/ui"
	"github.com/spf13/cobra"
)

var (
	addWord string
	addVI   string
	addEN   string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new word (English: Add a new word | Vietnamese: Thêm từ mới)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addWord == "" || addVI == "" || addEN == "" {
			palette := ui.NewPalette(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), palette.Error("Please provide word, Vietnamese meaning, and English meaning."))
			return nil
		}

		svc, store, err := openService(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		return svc.Add(addWord, addVI, addEN)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addWord, "word", "", "The word to add | Từ cần thêm")
	addCmd.Flags().StringVar(&addVI, "vi", "", "Vietnamese meaning | Nghĩa tiếng Việt")
	addCmd.Flags().StringVar(&addEN, "en", "", "English meaning | Nghĩa tiếng Anh")
}
