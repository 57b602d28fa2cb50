package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if *cfg != (Config{}) {
		t.Errorf("DefaultConfig() = %+v, want zero value", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{"empty", "", 10, false},
		{"at limit", strings.Repeat("a", 10), 10, false},
		{"over limit", strings.Repeat("a", 11), 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateFieldLength("page.size", tt.value, tt.maxLength)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error should wrap ErrFieldTooLong: %v", err)
				}
				if !strings.Contains(err.Error(), "page.size") {
					t.Errorf("error should name the field: %v", err)
				}
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "full valid config",
			cfg: Config{
				Input:    InputConfig{DefaultDir: "./docs"},
				Output:   OutputConfig{DefaultDir: "./out"},
				Page:     PageConfig{Size: "a4", Orientation: "landscape", Margin: 1},
				Code:     CodeConfig{Highlight: true, Wrap: 90, Style: "monokai"},
				Document: DocumentConfig{Title: "Weekly", CSS: "./extra.css"},
				Timeout:  "45s",
				Workers:  3,
			},
		},
		{
			name:    "negative code wrap disables wrapping",
			cfg:     Config{Code: CodeConfig{Wrap: -1}},
			wantErr: nil,
		},
		{
			name:    "page size too long",
			cfg:     Config{Page: PageConfig{Size: "extraordinarily-large"}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "title too long",
			cfg:     Config{Document: DocumentConfig{Title: strings.Repeat("t", MaxTitleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "style name too long",
			cfg:     Config{Code: CodeConfig{Style: strings.Repeat("s", MaxStyleNameLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unknown code style",
			cfg:     Config{Code: CodeConfig{Style: "monokia"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative margin",
			cfg:     Config{Page: PageConfig{Margin: -0.5}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative workers",
			cfg:     Config{Workers: -2},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unparseable timeout",
			cfg:     Config{Timeout: "soon"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "zero timeout",
			cfg:     Config{Timeout: "0s"},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		timeout string
		want    time.Duration
		wantErr bool
	}{
		{"", 0, false},
		{"30s", 30 * time.Second, false},
		{"1m30s", 90 * time.Second, false},
		{"-5s", 0, true},
		{"fast", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.timeout, func(t *testing.T) {
			t.Parallel()

			cfg := Config{Timeout: tt.timeout}
			got, err := cfg.TimeoutDuration()
			if (err != nil) != tt.wantErr {
				t.Fatalf("TimeoutDuration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TimeoutDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("loads every section from a path", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "report.yaml")
		content := `input:
  defaultDir: ./notes
output:
  defaultDir: ./pdf
page:
  size: legal
  orientation: landscape
  margin: 0.75
code:
  highlight: true
  wrap: 100
  style: github
document:
  title: Status Report
  css: ./print.css
timeout: 1m
workers: 2
`
		if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		cfg, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		want := Config{
			Input:    InputConfig{DefaultDir: "./notes"},
			Output:   OutputConfig{DefaultDir: "./pdf"},
			Page:     PageConfig{Size: "legal", Orientation: "landscape", Margin: 0.75},
			Code:     CodeConfig{Highlight: true, Wrap: 100, Style: "github"},
			Document: DocumentConfig{Title: "Status Report", CSS: "./print.css"},
			Timeout:  "1m",
			Workers:  2,
		}
		if *cfg != want {
			t.Errorf("LoadConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("missing path returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(configPath, []byte("page:\n  gutter: 2\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(configPath, []byte("timeout: never\n"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

// NOTE: these tests change the working directory or environment and cannot
// run in parallel.

func TestLoadConfig_ByName(t *testing.T) {
	t.Run("prefers .yaml over .yml in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "team.yaml"), "document:\n  title: yaml\n")
		writeFile(t, filepath.Join(dir, "team.yml"), "document:\n  title: yml\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Document.Title != "yaml" {
			t.Errorf("Document.Title = %q, want %q", cfg.Document.Title, "yaml")
		}
	})

	t.Run("falls back to .yml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "team.yml"), "workers: 4\n")
		t.Chdir(dir)

		cfg, err := LoadConfig("team")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("resolves from user config directory", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("XDG_CONFIG_HOME drives os.UserConfigDir only on linux")
		}

		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		writeFile(t, filepath.Join(home, appDirName, "shared.yaml"), "page:\n  size: a4\n")
		t.Chdir(t.TempDir())

		cfg, err := LoadConfig("shared")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Page.Size != "a4" {
			t.Errorf("Page.Size = %q, want %q", cfg.Page.Size, "a4")
		}
	})

	t.Run("not found lists tried paths", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := LoadConfig("nowhere")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nowhere.yaml") || !strings.Contains(err.Error(), "nowhere.yml") {
			t.Errorf("error should list tried paths: %v", err)
		}
	})
}

func TestConfig_Dump(t *testing.T) {
	t.Parallel()

	cfg := Config{Page: PageConfig{Size: "a4", Margin: 1}, Timeout: "10s"}
	data, err := cfg.Dump()
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{"page:", "size: a4", "timeout: 10s"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() missing %q:\n%s", want, out)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}
