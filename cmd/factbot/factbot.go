// Package factbotcmder
package factbotcmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/luggagemoose/factbot/cmd/factbot/config"
	factscmder "github.com/luggagemoose/factbot/cmd/factbot/facts"
	servecmder "github.com/luggagemoose/factbot/cmd/factbot/serve"
	versioncmder "github.com/luggagemoose/factbot/cmd/factbot/version"
)

const factbotLongDesc string = `Factbot is a Discord webhook bot for keeping a small list of facts.

Run the webhook server with:
  factbot serve

Manage the stored facts locally with:
  factbot facts list
  factbot facts add "Ben likes tea"
  factbot facts select "Ben likes tea"`

const factbotShortDesc string = "Factbot - Discord fact keeper"

func NewFactbotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factbot",
		Short: factbotShortDesc,
		Long:  factbotLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .factbot/ config directory")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(factscmder.NewFactsCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
