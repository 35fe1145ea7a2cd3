package cmd

import (
	"github.com/LavenderBridge/vocab/internal/ui"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Start a quiz (English: Start a quiz | Vietnamese: Bắt đầu bài kiểm tra)",
	Long: `Start a quiz.
Picks one word at random and asks for its meaning in the chosen language.
Case is ignored when checking the answer, spaces are not.`,
	Args: cobra.NoArgs,
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

		return svc.Quiz(cmd.Context(), locale)
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
	addLangFlag(quizCmd)
}
