package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lexdoc-ai/lexdoc/internal/interfaces/cli/migrate"
	"github.com/lexdoc-ai/lexdoc/internal/interfaces/cli/server"
)

// @title LexDoc AI API
// @version 1.0
// @description Document management backend for Brazilian law offices.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "lexdoc",
		Short: "LexDoc AI - legal document management backend",
		Long:  `LexDoc AI analyzes uploaded legal documents, drafts filings with configurable agents and organizes office archives.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
