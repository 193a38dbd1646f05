package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the ip-assistant application
var rootCmd = &cobra.Command{
	Use:   "ip-assistant",
	Short: "IP Assistant MCP server for patent research and intake scheduling",
	Long: `ip-assistant is an MCP (Model Context Protocol) server that helps engineers
move inventions through the IP pipeline.

It provides tools for patent and prior-art research via Perplexity AI and for
scheduling IP intake meetings via Google Calendar.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "ip-assistant version %s\n" .Version}}`)

	// Values already present in the environment win over .env entries.
	_ = godotenv.Load()

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
