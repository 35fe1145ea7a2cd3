package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/LavenderBridge/vocab/internal/config"
	"github.com/LavenderBridge/vocab/internal/db"
	"github.com/LavenderBridge/vocab/internal/models"
	"github.com/LavenderBridge/vocab/internal/prompt"
	"github.com/LavenderBridge/vocab/internal/ui"
	"github.com/LavenderBridge/vocab/internal/vocab"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	verbose  bool
	settings *viper.Viper
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vocab",
	Short: "A bilingual vocabulary flashcard tool",
	Long: `Vocab keeps your own word list with English and Vietnamese meanings,
lists it, quizzes you on a random word and deletes words you no longer need.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.New()
		if err != nil {
			return err
		}
		if err := v.BindPFlag(config.KeyVerbose, cmd.Root().PersistentFlags().Lookup("verbose")); err != nil {
			return err
		}
		if err := config.ReadFile(v, cfgFile); err != nil {
			return err
		}
		settings = v

		level := slog.LevelWarn
		if v.GetBool(config.KeyVerbose) {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.vocab.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

// addLangFlag registers --lang on commands that print localized output.
func addLangFlag(cmd *cobra.Command) {
	cmd.Flags().String("lang", "en", "Language (en or vi) | Ngôn ngữ (en hoặc vi)")
}

// resolveLocale picks the locale from --lang, VOCAB_LANG or the config file.
// An invalid value is reported on out and ok is false.
func resolveLocale(cmd *cobra.Command, palette ui.Palette) (models.Locale, bool) {
	if err := settings.BindPFlag(config.KeyLang, cmd.Flags().Lookup("lang")); err != nil {
		logger.Debug("cannot bind --lang", "err", err)
	}

	l, err := models.ParseLocale(settings.GetString(config.KeyLang))
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), palette.Error(err.Error()))
		return "", false
	}
	return l, true
}

// openService opens the configured store and wires a Service writing to
// the command's output. The caller closes the returned store.
func openService(cmd *cobra.Command) (*vocab.Service, db.Store, error) {
	cfg := config.Resolve(settings)
	store, err := db.Open(cfg.StoreOptions())
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("store opened", "backend", cfg.Backend)

	out := cmd.OutOrStdout()
	svc := vocab.NewService(store, out,
		vocab.WithPalette(ui.NewPalette(out)),
		vocab.WithPrompter(newPrompter(cmd.InOrStdin(), out)),
		vocab.WithLogger(logger),
	)
	return svc, store, nil
}

func newPrompter(in io.Reader, out io.Writer) prompt.Prompter {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return prompt.NewTeaPrompter(in, out)
	}
	return prompt.NewLinePrompter(in, out)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
