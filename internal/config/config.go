package config

// Config holds all runtime settings for foliobot.
type Config struct {
	Server  ServerConfig
	Ollama  OllamaConfig
	Profile ProfileConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type OllamaConfig struct {
	BaseURL string
	Model   string
}

type ProfileConfig struct {
	// Path to the personal information JSON file.
	Path string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 4180,
		},
		Ollama: OllamaConfig{
			BaseURL: "http://localhost:11434",
			Model:   "gemma3",
		},
		Profile: ProfileConfig{
			Path: "personal_info.json",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON file at
// $XDG_CONFIG_HOME/foliobot/config.json (falling back to ~/.config), then
// applies FOLIOBOT_* environment variable overrides on top.
func Load() (Config, error) {
	return loadWith(newFileBackend(configFilePath()))
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()

	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}
