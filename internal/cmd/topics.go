// ABOUTME: Topic graph commands: match transcript text and find topic names

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/overhearhq/overhear/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Inspect the topic graph",
}

var topicsMatchCmd = &cobra.Command{
	Use:   "match <text>...",
	Short: "Match text against the topic graph",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := topics.NewMatcher(store.Config().TopicGraph)

		matches := m.Match(strings.Join(args, " "))
		if len(matches) == 0 {
			fmt.Println("no topics matched")
			return nil
		}
		for _, hit := range matches {
			fmt.Printf("%-24s %.2f  %s\n", hit.Topic, hit.Confidence, strings.Join(hit.Path, " -> "))
		}
		for _, s := range m.Suggestions(matches) {
			fmt.Println("  " + s)
		}
		return nil
	},
}

var topicsFindCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy-search topic names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := topics.NewMatcher(store.Config().TopicGraph)

		names := m.Lookup(args[0])
		if len(names) == 0 {
			fmt.Println("no topics found")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	topicsCmd.AddCommand(topicsMatchCmd, topicsFindCmd)
	rootCmd.AddCommand(topicsCmd)
}
