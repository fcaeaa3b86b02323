package config

import "strings"

// Config represents the persistent factbot configuration stored as
// config.toml in the .factbot/ directory. The TOML layout uses sections
// for logical grouping.
type Config struct {
	Version int           `toml:"version"`
	API     APIConfig     `toml:"api"`
	Discord DiscordConfig `toml:"discord"`
	Storage StorageConfig `toml:"storage"`
	Access  AccessConfig  `toml:"access"`
}

// APIConfig holds webhook server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// DiscordConfig holds Discord application settings.
type DiscordConfig struct {
	// PublicKey is the hex-encoded Ed25519 public key from the
	// application portal, used to verify inbound webhook signatures.
	PublicKey string `toml:"public_key,omitempty"`
}

// StorageConfig selects and configures the facts store backend.
type StorageConfig struct {
	// Driver is one of "json", "sqlite", "memory".
	Driver     string `toml:"driver,omitempty"`
	FactsPath  string `toml:"facts_path,omitempty"`
	SQLitePath string `toml:"sqlite_path,omitempty"`
}

// AccessConfig holds the command allow-list.
type AccessConfig struct {
	AllowedUsers []string `toml:"allowed_users,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"api.listen": {
		get: func(c *Config) string { return c.API.Listen },
		set: func(c *Config, v string) error { c.API.Listen = v; return nil },
	},
	"discord.public_key": {
		get: func(c *Config) string { return c.Discord.PublicKey },
		set: func(c *Config, v string) error { c.Discord.PublicKey = v; return nil },
	},
	"storage.driver": {
		get: func(c *Config) string { return c.Storage.Driver },
		set: func(c *Config, v string) error { c.Storage.Driver = v; return nil },
	},
	"storage.facts_path": {
		get: func(c *Config) string { return c.Storage.FactsPath },
		set: func(c *Config, v string) error { c.Storage.FactsPath = v; return nil },
	},
	"storage.sqlite_path": {
		get: func(c *Config) string { return c.Storage.SQLitePath },
		set: func(c *Config, v string) error { c.Storage.SQLitePath = v; return nil },
	},
	"access.allowed_users": {
		get: func(c *Config) string { return strings.Join(c.Access.AllowedUsers, ",") },
		set: func(c *Config, v string) error {
			c.Access.AllowedUsers = splitUsers(v)
			return nil
		},
	},
}

// splitUsers parses a comma-separated allow-list, dropping empty entries.
func splitUsers(v string) []string {
	parts := strings.Split(v, ",")
	users := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			users = append(users, p)
		}
	}
	return users
}
