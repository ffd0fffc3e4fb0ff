package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	contactcmd "github.com/Alijeyrad/portfolio_backend/cmd/contact"
	httpcmd "github.com/Alijeyrad/portfolio_backend/cmd/http"
	systemcmd "github.com/Alijeyrad/portfolio_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Contact pipeline for the portfolio website.",
	Long: `portfolio runs the delivery endpoint behind the portfolio contact form
and ships a command-line client for composing and submitting messages to it.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(contactcmd.NewContactCommand())
}
