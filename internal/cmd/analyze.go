// ABOUTME: One-shot analysis command: compose a prompt and stream the reply

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/overhearhq/overhear/internal/assist"
	"github.com/overhearhq/overhear/internal/profile"
	"github.com/overhearhq/overhear/internal/prompt"
	"github.com/overhearhq/overhear/internal/topics"
)

var (
	flagTranscript string
	flagScreen     string
	flagClipboard  string
	flagScenario   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one analysis pass and stream the response to stdout",
	Long: `analyze reads a transcript (one entry per line, optionally tagged
[USER] or [SYSTEM]) from a file or stdin, composes a scenario prompt and
streams the provider's answer as it arrives.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := store.Config()

	entries, err := readTranscript(flagTranscript)
	if err != nil {
		return err
	}

	engine, err := assist.New(&cfg, store.PromptRules(),
		assist.WithProfile(profile.NewManager(cfg.UserProfile.ResumePath)),
		assist.WithTopics(topics.NewMatcher(cfg.TopicGraph)),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if cfg.ResponseTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.ResponseTimeoutSeconds)*time.Second)
		defer cancel()
	}

	out := engine.Analyze(ctx, assist.Request{
		Transcript: entries,
		Screen:     flagScreen,
		Clipboard:  flagClipboard,
		Scenario:   prompt.Scenario(flagScenario),
	})

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for chunk := range out {
		w.WriteString(chunk)
		w.Flush()
	}
	fmt.Fprintln(w)
	return nil
}

// readTranscript loads one transcript entry per non-blank line, from a file
// when path is set and from stdin otherwise.
func readTranscript(path string) ([]string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading transcript from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading transcript: %w", err)
		}
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}

func init() {
	analyzeCmd.Flags().StringVarP(&flagTranscript, "transcript", "t", "", "Transcript file, one entry per line (default stdin)")
	analyzeCmd.Flags().StringVar(&flagScreen, "screen", "", "Active window or screen context")
	analyzeCmd.Flags().StringVar(&flagClipboard, "clipboard", "", "Clipboard content to include")
	analyzeCmd.Flags().StringVarP(&flagScenario, "scenario", "s", "general", "Prompt scenario: meeting, coding or general")
	rootCmd.AddCommand(analyzeCmd)
}
