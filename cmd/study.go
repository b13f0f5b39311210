package cmd

import (
	"errors"
	"fmt"
	"os"

	"bubble/internal/clix"
	"bubble/internal/models"
	"bubble/internal/services"
	"bubble/internal/tasks"

	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Compose study questions and a presentation prompt for a topic",
	Long: `Reads an article (--text, --article-path or stdin), extracts its keywords and
composes study questions, a presentation prompt and impact hints.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		topic, _ := cmd.Flags().GetString("topic")
		category, _ := cmd.Flags().GetString("category")
		mode, _ := cmd.Flags().GetString("mode")
		async, _ := cmd.Flags().GetBool("async")

		article, err := appInstance.InputProcessor.Process(cmd.Context(), clix.ParseArticle(cmd.Flags(), os.Stdin))
		if err != nil {
			return articleError(err)
		}

		if async {
			if appInstance.JobClient == nil {
				return fmt.Errorf("--async requires redis.address: %w", models.ErrNotConfigured)
			}
			info, err := appInstance.JobClient.EnqueueStudy(cmd.Context(), tasks.StudyPayload{
				Topic: topic, Category: category, Text: article.Text, Mode: mode,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"task_id": info.ID, "queue": info.Queue})
		}

		suggestion, err := appInstance.SuggestionService.Study(cmd.Context(), services.StudyParams{
			Topic:    topic,
			Category: category,
			Text:     article.Text,
			Mode:     mode,
		})
		if err != nil {
			return err
		}
		echoMethod(suggestion.Method)
		return printJSON(cmd.OutOrStdout(), suggestion)
	},
}

// articleError explains how to supply an article when none was found.
func articleError(err error) error {
	if errors.Is(err, models.ErrEmptyArticle) {
		return fmt.Errorf("%w: pass --text, --article-path, or pipe the article on stdin", err)
	}
	return fmt.Errorf("failed to read article: %w", err)
}

func addArticleFlags(cmd *cobra.Command) {
	cmd.Flags().String("text", "", "Article text")
	cmd.Flags().String("article-path", "", "Path or http(s) URL of the article")
}

func init() {
	studyCmd.Flags().String("topic", "", "Topic headline (required)")
	studyCmd.Flags().String("category", "", "Category slug (required)")
	studyCmd.Flags().String("mode", models.DefaultMode, "Mode, e.g. quen-3.4b or quen-2.5-thinking")
	studyCmd.Flags().Bool("async", false, "Enqueue the job instead of composing inline")
	addArticleFlags(studyCmd)
	studyCmd.MarkFlagRequired("topic")
	studyCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(studyCmd)
}
