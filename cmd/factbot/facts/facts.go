// Package factscmder provides the facts command for inspecting and
// editing the stored facts without going through Discord.
package factscmder

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/luggagemoose/factbot/pkg/config"
	"github.com/luggagemoose/factbot/pkg/dotdir"
	"github.com/luggagemoose/factbot/pkg/facts"
	"github.com/luggagemoose/factbot/pkg/facts/jsonfile"
	"github.com/luggagemoose/factbot/pkg/facts/sqlite"
	"github.com/luggagemoose/factbot/pkg/logger"
)

const factsLongDesc string = `Inspect and edit the stored facts.

Operates on the same storage the webhook server uses, resolved from
.factbot/config.toml (or FACTBOT_* environment variables).

Use subcommands to list, add, or select facts:
  factbot facts list                 List all facts with their state
  factbot facts add <text>           Add a fact (enabled)
  factbot facts select <text>...     Enable exactly the given facts

Examples:
  factbot facts add "Ben likes tea"
  factbot facts select "Ben likes tea" "Ben has a dog"`

const factsShortDesc string = "Inspect and edit the stored facts"

func NewFactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facts",
		Short: factsShortDesc,
		Long:  factsLongDesc,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newSelectCmd())

	return cmd
}

// openStore resolves configuration and opens the configured facts store.
// The returned store must be closed by the caller.
func openStore(cmd *cobra.Command) (facts.Store, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	configDir, _ := cmd.Flags().GetString("config-dir")

	log := logger.New(logger.WithDebug(debug), logger.WithPretty(true))

	v, err := config.InitViper(configDir)
	if err != nil {
		return nil, err
	}

	target, err := dotdir.NewManager().Target(configDir)
	if err != nil {
		return nil, err
	}

	switch driver := v.GetString("storage.driver"); driver {
	case "sqlite":
		path := v.GetString("storage.sqlite_path")
		if path == "" {
			path = "facts.db"
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(target, path)
		}
		return sqlite.NewDriver(path)

	case "json", "memory":
		// An in-memory store is useless from a one-shot CLI run;
		// fall through to the JSON file the server would also use.
		path := v.GetString("storage.facts_path")
		if !filepath.IsAbs(path) {
			path = filepath.Join(target, path)
		}
		return jsonfile.NewDriver(path, log), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q (available: json, sqlite, memory)", driver)
	}
}
