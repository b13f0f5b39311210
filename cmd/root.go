package cmd

import (
	"context"
	"fmt"
	"os"

	"bubble/internal/app"
	"bubble/internal/config"
	"bubble/internal/inputprocessor"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bubble",
	Short: "Study suggestions and professional briefs from news topics",
	Long: `bubble turns a topic, a taxonomy category and optional article text into
study questions or a persona-tuned professional brief. A generative model is
used when one is configured; deterministic templates are used otherwise.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd == cmd.Root() {
			return nil
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cmd.Context(), cfg, inputprocessor.New())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store the app instance in the command's context
		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appInstance, err := GetAppFromContext(cmd.Context()); err == nil {
			appInstance.Close()
		}
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./bubble.yaml or ~/.config/bubble/bubble.yaml)")
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(costCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, taxonomy and store connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Taxonomy: %d categories in %d groups\n", appInstance.Taxonomy.Len(), len(appInstance.Taxonomy.Groups()))

		if appInstance.Completer != nil {
			fmt.Fprintf(out, "Augmenter: %s (%s), loaded=%v\n",
				appInstance.Completer.Name(), appInstance.Completer.ModelName(), appInstance.Completer.Loaded())
		} else {
			fmt.Fprintln(out, "Augmenter: none")
		}

		if appInstance.Store == nil {
			fmt.Fprintln(out, "History store: not configured")
		} else {
			if err := appInstance.Store.Ping(ctx); err != nil {
				return fmt.Errorf("database ping failed: %w", err)
			}
			fmt.Fprintln(out, "History store: connection successful")
		}

		if appInstance.JobClient == nil {
			fmt.Fprintln(out, "Background jobs: not configured")
		} else {
			fmt.Fprintf(out, "Background jobs: redis at %s\n", appInstance.Config.Redis.Address)
		}
		return nil
	},
}
