package cmd

import (
	"fmt"
	"strconv"

	"bubble/internal/clix"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// costCmd represents the base command for cost operations.
var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "View generative model usage and cost",
	Long:  `Provides subcommands to list model usage logs and view a cost summary.`,
}

// costListCmd represents the command to list cost logs.
var costListCmd = &cobra.Command{
	Use:   "list",
	Short: "List model usage logs",
	Long:  `Displays a paginated list of recorded model calls with their token counts and cost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		pagination, err := clix.ParsePagination(cmd.Flags())
		if err != nil {
			return fmt.Errorf("invalid pagination flags: %w", err)
		}

		logs, err := appInstance.CostService.ListUsage(cmd.Context(), pagination.Limit, pagination.Offset)
		if err != nil {
			return fmt.Errorf("failed to list cost logs: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(logs) == 0 {
			fmt.Fprintln(out, "No cost logs found.")
			return nil
		}

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Timestamp", "Provider", "Service", "Model", "Mode", "In Tokens", "Out Tokens", "Cost"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, l := range logs {
			table.Append([]string{
				l.Timestamp.Local().Format("2006-01-02 15:04:05"),
				l.ProviderName,
				l.ServiceType,
				l.ModelName,
				l.Mode,
				strconv.Itoa(l.InputTokens),
				strconv.Itoa(l.OutputTokens),
				fmt.Sprintf("%.8f", l.Cost),
			})
		}
		table.Render()

		fmt.Fprintf(out, "\nDisplayed %d logs.\n", len(logs))
		return nil
	},
}

// costSummaryCmd represents the command to view cost summary.
var costSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show total model cost and token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		summary, err := appInstance.CostService.GetSummary(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get cost summary: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Model Usage Cost Summary:")
		fmt.Fprintln(out, "-------------------------")
		fmt.Fprintf(out, "Total Cost:          $%.6f\n", summary.TotalCost)
		fmt.Fprintf(out, "Total Input Tokens:  %d\n", summary.TotalInputTokens)
		fmt.Fprintf(out, "Total Output Tokens: %d\n", summary.TotalOutputTokens)
		return nil
	},
}

func init() {
	costCmd.AddCommand(costListCmd)
	costCmd.AddCommand(costSummaryCmd)

	costListCmd.Flags().IntP("limit", "l", 50, "Number of logs to display")
	costListCmd.Flags().IntP("offset", "o", 0, "Number of logs to skip")
}
