// Command screening-report строит аналитический отчет по снимку заявок из JSON-файла без БД и HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "screening-report",
		Short:         "Offline analytics for AI applicant screening",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newBuildCmd())
	return rootCmd
}

func main() {
	// .env необязателен
	_ = godotenv.Load()

	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	log.SetOutput(os.Stderr)
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
