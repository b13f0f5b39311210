package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"bubble/internal/clix"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random subject from the taxonomy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		group, _ := cmd.Flags().GetString("group")
		subject, err := appInstance.Randomizer.PickSubject(group, clix.ParseProfessional(cmd.Flags()))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), subject)
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List taxonomy categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		group, _ := cmd.Flags().GetString("group")
		cats := appInstance.Taxonomy.Select(group, clix.ParseProfessional(cmd.Flags()))
		if len(cats) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No categories found.")
			return nil
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Slug", "Label", "Group", "Professional", "Tags"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, c := range cats {
			table.Append([]string{c.Slug, c.Label, c.Group, strconv.FormatBool(c.Professional), strings.Join(c.Tags, ", ")})
		}
		table.Render()
		return nil
	},
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List taxonomy groups",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		for _, g := range appInstance.Taxonomy.Groups() {
			fmt.Fprintln(cmd.OutOrStdout(), g)
		}
		return nil
	},
}

func init() {
	randomCmd.Flags().String("group", "", "Restrict to one group")
	randomCmd.Flags().Bool("professional", false, "Only professional (true) or only non-professional (false) categories")
	categoriesCmd.Flags().String("group", "", "Restrict to one group")
	categoriesCmd.Flags().Bool("professional", false, "Only professional (true) or only non-professional (false) categories")

	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(groupsCmd)
}
