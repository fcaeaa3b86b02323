// Package servecmder provides the serve command that runs the webhook server.
package servecmder

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luggagemoose/factbot/api"
	"github.com/luggagemoose/factbot/pkg/access"
	"github.com/luggagemoose/factbot/pkg/config"
	"github.com/luggagemoose/factbot/pkg/discord"
	"github.com/luggagemoose/factbot/pkg/dotdir"
	"github.com/luggagemoose/factbot/pkg/facts"
	"github.com/luggagemoose/factbot/pkg/facts/inmemory"
	"github.com/luggagemoose/factbot/pkg/facts/jsonfile"
	"github.com/luggagemoose/factbot/pkg/facts/sqlite"
	"github.com/luggagemoose/factbot/pkg/logger"
	"github.com/luggagemoose/factbot/pkg/router"
)

const logFile = "factbot.log"

type ServeCommander struct {
	listen     string
	publicKey  string
	driver     string
	factsPath  string
	sqlitePath string
	configDir  string
	debug      bool
	logger     *slog.Logger
}

const serveLongDesc string = `Run the factbot webhook server.

The server exposes a single POST route that receives Discord interaction
webhooks, verifies their Ed25519 signatures, and answers slash commands,
modal submits, and select menu submits.

Configuration follows viper precedence: flags > FACTBOT_* environment
variables > .factbot/config.toml > defaults.`

const serveShortDesc string = "Run the webhook server"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			cmder.configDir, err = cmd.Flags().GetString("config-dir")
			if err != nil {
				return fmt.Errorf("could not get config-dir flag: %v", err)
			}

			v, err := config.InitViper(cmder.configDir)
			if err != nil {
				return err
			}
			config.BindRegisteredFlags(v, cmd, config.Flags, []string{
				config.FlagListen,
				config.FlagPublicKey,
				config.FlagDriver,
				config.FlagFacts,
				config.FlagSQLite,
			})

			cmder.listen = v.GetString("api.listen")
			cmder.publicKey = v.GetString("discord.public_key")
			cmder.driver = v.GetString("storage.driver")
			cmder.factsPath = v.GetString("storage.facts_path")
			cmder.sqlitePath = v.GetString("storage.sqlite_path")

			return cmder.run(v.GetStringSlice("access.allowed_users"))
		},
	}

	cmder.registerFlags(cmd)

	return cmd
}

// registerFlags declares the serve flags from the shared registry.
func (c *ServeCommander) registerFlags(cmd *cobra.Command) {
	config.AddStringFlag(cmd, config.Flags, config.FlagListen, &c.listen)
	config.AddStringFlag(cmd, config.Flags, config.FlagPublicKey, &c.publicKey)
	config.AddStringFlag(cmd, config.Flags, config.FlagDriver, &c.driver)
	config.AddStringFlag(cmd, config.Flags, config.FlagFacts, &c.factsPath)
	config.AddStringFlag(cmd, config.Flags, config.FlagSQLite, &c.sqlitePath)
}

func (c *ServeCommander) run(allowedUsers []string) error {
	target, err := dotdir.NewManager().Target(c.configDir)
	if err != nil {
		return err
	}

	// Pretty output on the terminal, JSON to the log file in .factbot/.
	logHandle, err := os.OpenFile(filepath.Join(target, logFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logHandle.Close()

	c.logger = logger.Multi(
		logger.New(logger.WithDebug(c.debug), logger.WithPretty(true)),
		logger.New(logger.WithDebug(c.debug), logger.WithJSON(true), logger.WithWriter(logHandle)),
	)

	verifier, err := discord.NewVerifier(c.publicKey)
	if err != nil {
		return fmt.Errorf("discord.public_key: %w", err)
	}

	store, err := c.createStore(target)
	if err != nil {
		return err
	}
	defer store.Close()

	guard := access.NewGuard(allowedUsers)
	rtr := router.New(store, guard, c.logger)

	server := api.NewServer(api.Config{ListenAddr: c.listen}, verifier, rtr, c.logger)

	c.logger.Info("starting factbot",
		"listen", c.listen,
		"driver", c.driver,
		"allowed_users", len(allowedUsers),
	)

	// Channel to capture errors from the server goroutine
	errChan := make(chan error, 1)

	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("webhook server error: %w", err)
		}
	}()

	// Wait for interrupt signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", "signal", sig.String())
		return server.Shutdown()
	}
}

// createStore builds the facts store selected by storage.driver.
// Relative paths resolve inside the .factbot/ directory.
func (c *ServeCommander) createStore(target string) (facts.Store, error) {
	switch c.driver {
	case "sqlite":
		path := c.sqlitePath
		if path == "" {
			path = "facts.db"
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(target, path)
		}
		store, err := sqlite.NewDriver(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite store: %w", err)
		}
		c.logger.Info("using SQLite storage", "path", path)
		return store, nil

	case "memory":
		c.logger.Info("using in-memory storage")
		return inmemory.NewDriver(), nil

	case "json":
		path := c.factsPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(target, path)
		}
		c.logger.Info("using JSON file storage", "path", path)
		return jsonfile.NewDriver(path, c.logger), nil
	}

	return nil, fmt.Errorf("unknown storage driver %q (available: json, sqlite, memory)", c.driver)
}
