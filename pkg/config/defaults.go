package config

const (
	defaultAPIListen     = ":8787"
	defaultStorageDriver = "json"
	defaultFactsPath     = "facts.json"
)

// defaultAllowedUsers is the fixed allow-list of identities permitted to
// run fact commands.
var defaultAllowedUsers = []string{"LuggageMoose", "encryptoknight"}

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		Storage: StorageConfig{
			Driver:    defaultStorageDriver,
			FactsPath: defaultFactsPath,
		},
		Access: AccessConfig{
			AllowedUsers: append([]string(nil), defaultAllowedUsers...),
		},
	}
}
