package cmd

import (
	"fmt"

	"bubble/internal/apihandlers"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run bubble as an HTTP API server",
	Long: `Starts an HTTP server exposing taxonomy browsing, random subjects, study
suggestions, professional briefs, keyword extraction and history over /api/v1.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		addr := appInstance.Config.Server.Addr
		port := appInstance.Config.Server.Port
		if cmd.Flags().Changed("addr") || addr == "" {
			addr = serveAddr
		}
		if cmd.Flags().Changed("port") || port == "" {
			port = servePort
		}

		router := apihandlers.NewRouter(&apihandlers.APIHandler{
			Taxonomy:    appInstance.Taxonomy,
			Randomizer:  appInstance.Randomizer,
			Suggestions: appInstance.SuggestionService,
			Costs:       appInstance.CostService,
			Keywords:    appInstance.Extractor,
			Input:       appInstance.InputProcessor,
			Jobs:        appInstance.JobClient,
		})

		listenAddr := fmt.Sprintf("%s:%s", addr, port)
		log.Infof("Starting bubble API server on http://%s", listenAddr)

		// router.Run blocks unless an error occurs
		if err := router.Run(listenAddr); err != nil {
			log.Errorf("Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")
}
