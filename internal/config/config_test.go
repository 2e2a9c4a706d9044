package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, s := range specs {
		t.Setenv(s.env, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	path := writeTempConfig(t, `{}`)

	cfg, err := loadWith(newFileBackend(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 4180 {
		t.Errorf("Server.Port = %d, want 4180", cfg.Server.Port)
	}
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("Ollama.BaseURL = %q", cfg.Ollama.BaseURL)
	}
	if cfg.Ollama.Model != "gemma3" {
		t.Errorf("Ollama.Model = %q, want gemma3", cfg.Ollama.Model)
	}
	if cfg.Profile.Path != "personal_info.json" {
		t.Errorf("Profile.Path = %q", cfg.Profile.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestFileValues(t *testing.T) {
	clearEnv(t)
	path := writeTempConfig(t, `{
		"server.port": 9000,
		"ollama.model": "phi3.5",
		"profile.path": "/data/me.json"
	}`)

	cfg, err := loadWith(newFileBackend(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Ollama.Model != "phi3.5" {
		t.Errorf("Ollama.Model = %q", cfg.Ollama.Model)
	}
	if cfg.Profile.Path != "/data/me.json" {
		t.Errorf("Profile.Path = %q", cfg.Profile.Path)
	}
	// Untouched keys keep defaults.
	if cfg.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("Ollama.BaseURL = %q", cfg.Ollama.BaseURL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeTempConfig(t, `{"server.port": 9000}`)

	t.Setenv("FOLIOBOT_SERVER_PORT", "9100")
	t.Setenv("FOLIOBOT_OLLAMA_MODEL", "mistral-nemo")

	cfg, err := loadWith(newFileBackend(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want env override 9100", cfg.Server.Port)
	}
	if cfg.Ollama.Model != "mistral-nemo" {
		t.Errorf("Ollama.Model = %q, want env override", cfg.Ollama.Model)
	}
}

func TestInvalidEnvIntFallsBack(t *testing.T) {
	clearEnv(t)
	path := writeTempConfig(t, `{}`)

	t.Setenv("FOLIOBOT_SERVER_PORT", "not-a-number")

	cfg, err := loadWith(newFileBackend(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 4180 {
		t.Errorf("Server.Port = %d, want default after bad env value", cfg.Server.Port)
	}
}

func TestMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := loadWith(newFileBackend(filepath.Join(t.TempDir(), "nope.json")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 4180 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
}

func TestShowAll_CoversAllKeys(t *testing.T) {
	clearEnv(t)
	cfg := defaults()
	infos := ShowAll(cfg)
	if len(infos) != len(specs) {
		t.Fatalf("ShowAll returned %d keys, want %d", len(infos), len(specs))
	}
	seen := make(map[string]bool)
	for _, k := range infos {
		seen[k.Key] = true
	}
	for _, key := range ValidKeys() {
		if !seen[key] {
			t.Errorf("ShowAll missing key %q", key)
		}
	}
}
