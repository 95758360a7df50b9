package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/addressbook/internal/domain"
)

func TestParse_Seed(t *testing.T) {
	data := []byte(`
logging:
  level: debug
book:
  seed:
    - name: John
      phones: ["1234567890", "5555555555"]
    - name: Jane
      phones: ["9876543210"]
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Book.Seed) != 2 {
		t.Fatalf("Seed len = %d, want 2", len(cfg.Book.Seed))
	}
	if cfg.Book.Seed[0].Name != "John" || len(cfg.Book.Seed[0].Phones) != 2 {
		t.Errorf("Seed[0] = %+v", cfg.Book.Seed[0])
	}
	if cfg.Metrics.Namespace != "addressbook" {
		t.Errorf("Metrics.Namespace = %q, want default addressbook", cfg.Metrics.Namespace)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Book.Seed) != 0 {
		t.Errorf("Seed len = %d, want 0", len(cfg.Book.Seed))
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("book: [unterminated")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParse_EnvExpansion(t *testing.T) {
	t.Setenv("ADDRESSBOOK_TEST_PHONE", "1112223333")

	data := []byte(`
metrics:
  namespace: ${ADDRESSBOOK_TEST_NS:-contacts}
book:
  seed:
    - name: John
      phones: ["${ADDRESSBOOK_TEST_PHONE}"]
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Book.Seed[0].Phones[0] != "1112223333" {
		t.Errorf("phone = %q, want 1112223333", cfg.Book.Seed[0].Phones[0])
	}
	if cfg.Metrics.Namespace != "contacts" {
		t.Errorf("namespace = %q, want contacts", cfg.Metrics.Namespace)
	}
}

func TestValidate_InvalidSeedPhone(t *testing.T) {
	cfg := Config{
		Book: BookConfig{Seed: []ContactSeed{{Name: "John", Phones: []string{"123-456"}}}},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid seed phone")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestValidate_DuplicateSeedName(t *testing.T) {
	cfg := Config{
		Book: BookConfig{Seed: []ContactSeed{{Name: "John"}, {Name: "John"}}},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for duplicate seed name")
	}
}

func TestValidate_LogLevel(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		t.Run("level="+level, func(t *testing.T) {
			cfg := Config{Logging: LoggingConfig{Level: level}}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for level %q: %v", level, err)
			}
		})
	}

	cfg := Config{Logging: LoggingConfig{Level: "verbose"}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	if err := os.WriteFile(path, []byte("book:\n  seed:\n    - name: Jane\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Book.Seed) != 1 || cfg.Book.Seed[0].Name != "Jane" {
		t.Errorf("Seed = %+v", cfg.Book.Seed)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_RepoConfigs(t *testing.T) {
	for _, env := range []string{"local", "test"} {
		if _, err := Load(env); err != nil {
			t.Errorf("Load(%q): %v", env, err)
		}
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}
