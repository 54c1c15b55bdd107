package config

import "os"

// Default Gemini models used when direct mode is active.
const (
	DefaultChatModel   = "gemini-2.5-flash"
	DefaultImageModel  = "gemini-2.5-flash-image"
	DefaultSearchModel = "gemini-2.5-flash"
)

// Config holds application configuration loaded from environment and file.
// Priority: Env vars → config.toml → defaults. Built once at startup and
// passed to the components that need it; never mutated afterwards.
type Config struct {
	// ServerPort is the address to bind the server to (e.g., ":8080")
	ServerPort string

	// Supabase edge function upstream. When both are set the proxy
	// forwards to {SupabaseURL}/functions/v1/<route>.
	SupabaseURL     string
	SupabaseAnonKey string

	// GeminiAPIKey enables direct Gemini mode when no Supabase upstream
	// is configured.
	GeminiAPIKey string

	// Model names for direct Gemini mode.
	ChatModel   string
	ImageModel  string
	SearchModel string

	// AdminPassword protects the admin API. Empty disables auth
	// (localhost-first design).
	AdminPassword string

	// EnableRequestLog persists request logs and usage aggregates.
	EnableRequestLog bool
}

// Load reads configuration from file and environment variables.
// Environment variables override file config values.
func Load() *Config {
	fileConfig, _ := LoadFile() // Ignore error, use defaults

	return &Config{
		ServerPort:       resolvePort(fileConfig.ServerPort),
		SupabaseURL:      getEnvOrFile("SUPABASE_URL", fileConfig.SupabaseURL, ""),
		SupabaseAnonKey:  getEnvOrFile("SUPABASE_ANON_KEY", fileConfig.SupabaseAnonKey, ""),
		GeminiAPIKey:     getEnvOrFile("GEMINI_API_KEY", "", ""),
		ChatModel:        getEnvOrFile("CHAT_MODEL", fileConfig.ChatModel, DefaultChatModel),
		ImageModel:       getEnvOrFile("IMAGE_MODEL", fileConfig.ImageModel, DefaultImageModel),
		SearchModel:      getEnvOrFile("SEARCH_MODEL", fileConfig.SearchModel, DefaultSearchModel),
		AdminPassword:    getEnvOrFile("ADMIN_PASSWORD", "", ""),
		EnableRequestLog: getEnvBoolOrFile("ENABLE_REQUEST_LOG", fileConfig.EnableRequestLog, true),
	}
}

// EdgeConfigured reports whether the Supabase edge upstream is usable.
func (c *Config) EdgeConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

// GeminiConfigured reports whether the direct Gemini upstream is usable.
func (c *Config) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

// resolvePort returns the bind address, honoring the bare PORT variable
// common on hosting platforms (Render, Railway, Heroku).
func resolvePort(fileValue string) string {
	if value := os.Getenv("SERVER_PORT"); value != "" {
		return value
	}
	if value := os.Getenv("PORT"); value != "" {
		return ":" + value
	}
	if fileValue != "" {
		return fileValue
	}
	return ":8080"
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvBoolOrFile returns env bool, file bool, or default (in priority order)
func getEnvBoolOrFile(key string, fileValue *bool, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}
