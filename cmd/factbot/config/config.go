// Package configcmder provides the config command for managing persistent
// factbot configuration stored in the .factbot/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent factbot configuration.

Configuration is stored as config.toml in the .factbot/ directory and
provides default values for command flags. CLI flags always take
precedence over config file values.

Keys use dotted notation matching the TOML section structure:
  api.listen, discord.public_key,
  storage.driver, storage.facts_path, storage.sqlite_path,
  access.allowed_users

Use subcommands to get, set, or list configuration values:
  factbot config set <key> <value>    Set a configuration value
  factbot config get <key>            Get a configuration value
  factbot config list                 List all configuration values

Examples:
  factbot config set api.listen :8787
  factbot config set discord.public_key 3aa1...
  factbot config get storage.facts_path
  factbot config list`

const configShortDesc string = "Manage persistent factbot configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
