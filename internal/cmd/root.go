// ABOUTME: Cobra root command: config loading, env, and logging setup

package cmd

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/overhearhq/overhear/internal/config"
	"github.com/overhearhq/overhear/internal/log"
)

var (
	flagConfig  string
	flagRules   string
	flagVerbose bool

	store *config.Store
)

var rootCmd = &cobra.Command{
	Use:   "overhear",
	Short: "Real-time context assistance engine",
	Long: `overhear composes live transcript, screen, and profile context into
prompts and streams AI analysis back as incremental text.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real env vars win.
		_ = godotenv.Load()

		s, err := config.NewStore(flagConfig, flagRules)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			// No config file: run on defaults.
			s = config.NewStaticStore(config.Default(), config.LoadPromptRules(flagRules))
		}
		store = s

		log.Init(s.Config().LogFile, flagVerbose)
		return nil
	},
}

// Execute runs the CLI.
func Execute() {
	defer log.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "config.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "prompt_rules.md", "Path to the custom prompt rules file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}
