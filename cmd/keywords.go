package cmd

import (
	"os"

	"bubble/internal/clix"

	"github.com/spf13/cobra"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Extract keywords from an article",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		article, err := appInstance.InputProcessor.Process(cmd.Context(), clix.ParseArticle(cmd.Flags(), os.Stdin))
		if err != nil {
			return articleError(err)
		}
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = appInstance.Extractor.MaxKeywords()
		}
		return printJSON(cmd.OutOrStdout(), appInstance.Extractor.ExtractN(article.Text, limit))
	},
}

func init() {
	keywordsCmd.Flags().IntP("limit", "n", 0, "Maximum number of keywords (default keywords.max_keywords)")
	addArticleFlags(keywordsCmd)
	rootCmd.AddCommand(keywordsCmd)
}
