package cmd

import (
	"fmt"
	"os"

	"bubble/internal/clix"
	"bubble/internal/models"
	"bubble/internal/services"
	"bubble/internal/tasks"

	"github.com/spf13/cobra"
)

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Compose a professional brief tuned to a persona",
	Long: `Reads an article (--text, --article-path or stdin) and composes key points, a
creative hook, a pitch outline and visual direction for the chosen persona
(strategist, designer, investor; anything else is treated as generalist).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		topic, _ := cmd.Flags().GetString("topic")
		category, _ := cmd.Flags().GetString("category")
		persona, _ := cmd.Flags().GetString("persona")
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
			info, err := appInstance.JobClient.EnqueueBrief(cmd.Context(), tasks.BriefPayload{
				Topic: topic, Category: category, Text: article.Text, Persona: persona, Mode: mode,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"task_id": info.ID, "queue": info.Queue})
		}

		brief, err := appInstance.SuggestionService.Brief(cmd.Context(), services.BriefParams{
			Topic:    topic,
			Category: category,
			Text:     article.Text,
			Persona:  persona,
			Mode:     mode,
		})
		if err != nil {
			return err
		}
		echoMethod(brief.Method)
		return printJSON(cmd.OutOrStdout(), brief)
	},
}

func init() {
	briefCmd.Flags().String("topic", "", "Topic headline (required)")
	briefCmd.Flags().String("category", "", "Category slug (required)")
	briefCmd.Flags().String("persona", models.DefaultPersona.String(), "Persona: strategist, designer or investor")
	briefCmd.Flags().String("mode", models.DefaultMode, "Mode, e.g. quen-3.4b or quen-2.5-thinking")
	briefCmd.Flags().Bool("async", false, "Enqueue the job instead of composing inline")
	addArticleFlags(briefCmd)
	briefCmd.MarkFlagRequired("topic")
	briefCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(briefCmd)
}
