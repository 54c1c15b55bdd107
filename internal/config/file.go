package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
type FileConfig struct {
	ServerPort       string `toml:"server_port"`
	SupabaseURL      string `toml:"supabase_url"`
	SupabaseAnonKey  string `toml:"supabase_anon_key"`
	ChatModel        string `toml:"chat_model"`
	ImageModel       string `toml:"image_model"`
	SearchModel      string `toml:"search_model"`
	EnableRequestLog *bool  `toml:"enable_request_log"`
}

// ConfigPath returns the path to the config file (~/.levao/config.toml).
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.toml")
}

// LoadFile loads configuration from the TOML file.
// Returns an empty FileConfig if the file doesn't exist.
func LoadFile() (*FileConfig, error) {
	cfg := &FileConfig{}

	path := ConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnsureConfigFile creates a default config file with commented examples if none exists.
func EnsureConfigFile() error {
	path := ConfigPath()

	// If config already exists, do nothing
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	// Ensure directory exists
	if err := EnsureDataDir(); err != nil {
		return err
	}

	defaultConfig := `# Levao AI backend configuration
# server_port = ":8080"
# enable_request_log = true

# Supabase edge function upstream (API keys can also come from the
# SUPABASE_URL / SUPABASE_ANON_KEY environment variables)
# supabase_url = "https://yourproject.supabase.co"
# supabase_anon_key = "eyJ..."

# Direct Gemini mode models (GEMINI_API_KEY must be set via environment)
# chat_model = "gemini-2.5-flash"
# image_model = "gemini-2.5-flash-image"
# search_model = "gemini-2.5-flash"
`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
