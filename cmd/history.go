package cmd

import (
	"fmt"

	"bubble/internal/clix"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// historyCmd represents the base command for stored results
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View stored study suggestions and briefs",
	Long:  `Lists results recorded when database.dsn is configured, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listHistoryCmd.RunE(cmd, args)
	},
}

var listHistoryCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		pagination, err := clix.ParsePagination(cmd.Flags())
		if err != nil {
			return fmt.Errorf("invalid pagination flags: %w", err)
		}
		kind, _ := cmd.Flags().GetString("kind")

		artifacts, err := appInstance.SuggestionService.History(cmd.Context(), kind, pagination.Limit, pagination.Offset)
		if err != nil {
			return fmt.Errorf("error listing history: %w", err)
		}
		if len(artifacts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No history found.")
			return nil
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"ID", "Kind", "Topic", "Category", "Persona", "Method", "Created"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, a := range artifacts {
			table.Append([]string{
				a.ID.String(),
				a.Kind,
				a.Topic,
				a.Category,
				a.Persona,
				a.Method,
				a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			})
		}
		table.Render()
		return nil
	},
}

var showHistoryCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one stored result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid artifact id %q: %w", args[0], err)
		}
		artifact, err := appInstance.SuggestionService.Artifact(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("error fetching artifact %s: %w", id, err)
		}
		return printJSON(cmd.OutOrStdout(), artifact)
	},
}

func addHistoryListFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "l", clix.DefaultLimit, "Number of results to display")
	cmd.Flags().IntP("offset", "o", 0, "Number of results to skip")
	cmd.Flags().String("kind", "", "Only show one kind: study or brief")
}

func init() {
	addHistoryListFlags(historyCmd)
	addHistoryListFlags(listHistoryCmd)
	historyCmd.AddCommand(listHistoryCmd)
	historyCmd.AddCommand(showHistoryCmd)
	rootCmd.AddCommand(historyCmd)
}
