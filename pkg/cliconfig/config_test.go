package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCLIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  CLIConfig
		wantErr string
	}{
		{
			name:    "valid defaults",
			config:  *NewDefault(),
			wantErr: "",
		},
		{
			name: "valid custom values",
			config: CLIConfig{
				EditorURL: "https://editor.lan:9000",
				Port:      8080,
				Timeout:   5,
				LogLevel:  "DEBUG",
				LogFormat: "json",
			},
			wantErr: "",
		},
		{
			name:    "port too high",
			config:  CLIConfig{Port: 70000},
			wantErr: "port 70000 is out of range",
		},
		{
			name:    "port negative",
			config:  CLIConfig{Port: -1},
			wantErr: "port -1 is out of range",
		},
		{
			name:    "timeout too high",
			config:  CLIConfig{Timeout: 9999},
			wantErr: "timeout 9999 is out of range",
		},
		{
			name:    "timeout negative",
			config:  CLIConfig{Timeout: -1},
			wantErr: "timeout -1 is out of range",
		},
		{
			name:    "editor URL without scheme",
			config:  CLIConfig{EditorURL: "localhost:7777"},
			wantErr: "must use http or https",
		},
		{
			name:    "editor URL without host",
			config:  CLIConfig{EditorURL: "http://"},
			wantErr: "has no host",
		},
		{
			name:    "unknown log level",
			config:  CLIConfig{LogLevel: "trace"},
			wantErr: `logLevel "trace"`,
		},
		{
			name:    "unknown log format",
			config:  CLIConfig{LogFormat: "logfmt"},
			wantErr: `logFormat "logfmt"`,
		},
		{
			name:    "zero timeout allowed (disabled)",
			config:  CLIConfig{Timeout: 0},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantErr)
				} else if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
			}
		})
	}
}

func TestCLIConfig_Validate_ReportsAll(t *testing.T) {
	err := (&CLIConfig{Port: -1, Timeout: -1}).Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "port") || !strings.Contains(err.Error(), "timeout") {
		t.Errorf("expected both problems reported, got %q", err.Error())
	}
}

func TestResolvedURL(t *testing.T) {
	cfg := NewDefault()
	if got := cfg.ResolvedURL(); got != "http://localhost:7777" {
		t.Errorf("default ResolvedURL() = %q", got)
	}

	cfg.Host = "10.0.0.5"
	cfg.Port = 8080
	if got := cfg.ResolvedURL(); got != "http://10.0.0.5:8080" {
		t.Errorf("host/port ResolvedURL() = %q", got)
	}

	cfg.EditorURL = "https://editor.example"
	if got := cfg.ResolvedURL(); got != "https://editor.example" {
		t.Errorf("editorUrl should win, got %q", got)
	}

	if got := DefaultEditorURL("::1", 0); got != "http://[::1]:7777" {
		t.Errorf("DefaultEditorURL(::1) = %q", got)
	}
}

func TestTimeoutDuration(t *testing.T) {
	cfg := NewDefault()
	if cfg.TimeoutDuration() != 30*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 30s", cfg.TimeoutDuration())
	}
}

func TestMergeConfig_BasicFields(t *testing.T) {
	t.Run("merges non-zero values", func(t *testing.T) {
		target := NewDefault()
		source := &CLIConfig{
			Port:      9000,
			EditorURL: "http://custom:9090",
			SetFields: map[string]bool{"port": true, "editorUrl": true},
		}

		MergeConfig(target, source, SourceLocal)

		if target.Port != 9000 {
			t.Errorf("expected port 9000, got %d", target.Port)
		}
		if target.EditorURL != "http://custom:9090" {
			t.Errorf("expected custom editor URL, got %q", target.EditorURL)
		}
		if target.Sources["port"] != SourceLocal {
			t.Errorf("expected source 'local', got %q", target.Sources["port"])
		}
		if target.Sources["host"] != SourceDefault {
			t.Errorf("expected host to stay default, got %q", target.Sources["host"])
		}
	})

	t.Run("does not overwrite with zero values", func(t *testing.T) {
		target := NewDefault()
		MergeConfig(target, &CLIConfig{}, SourceLocal)

		if target.Port != DefaultPort {
			t.Errorf("expected default port %d, got %d", DefaultPort, target.Port)
		}
		if target.Timeout != DefaultTimeout {
			t.Errorf("expected default timeout %d, got %d", DefaultTimeout, target.Timeout)
		}
	})

	t.Run("explicit zero timeout with SetFields", func(t *testing.T) {
		target := NewDefault()
		MergeConfig(target, &CLIConfig{Timeout: 0, SetFields: map[string]bool{"timeout": true}}, SourceLocal)

		if target.Timeout != 0 {
			t.Errorf("expected timeout 0, got %d", target.Timeout)
		}
	})

	t.Run("handles boolean false with SetFields", func(t *testing.T) {
		target := NewDefault()
		target.JSON = true

		MergeConfig(target, &CLIConfig{JSON: false, SetFields: map[string]bool{"json": true}}, SourceLocal)

		if target.JSON {
			t.Error("expected json to be false after merge")
		}
	})

	t.Run("does not merge boolean false without SetFields", func(t *testing.T) {
		target := NewDefault()
		target.Verbose = true

		MergeConfig(target, &CLIConfig{Verbose: false}, SourceLocal)

		if !target.Verbose {
			t.Error("expected verbose to remain true without SetFields")
		}
	})

	t.Run("nil source is no-op", func(t *testing.T) {
		target := NewDefault()
		MergeConfig(target, nil, SourceLocal)

		if target.Port != DefaultPort {
			t.Errorf("expected port unchanged, got %d", target.Port)
		}
	})
}

func TestParseConfig(t *testing.T) {
	t.Run("records set fields", func(t *testing.T) {
		cfg, err := ParseConfig("c.yaml", []byte("port: 8000\njson: false\nlayout: scene.yaml\n"))
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if cfg.Port != 8000 || cfg.Layout != "scene.yaml" {
			t.Errorf("unexpected config %+v", cfg)
		}
		if !cfg.SetFields["json"] || cfg.SetFields["host"] {
			t.Errorf("SetFields = %v", cfg.SetFields)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := ParseConfig("c.yaml", nil)
		if err != nil {
			t.Fatalf("ParseConfig() error = %v", err)
		}
		if len(cfg.SetFields) != 0 {
			t.Errorf("SetFields = %v, want empty", cfg.SetFields)
		}
	})

	t.Run("unknown key has position", func(t *testing.T) {
		_, err := ParseConfig("c.yaml", []byte("port: 8000\nadminUrl: x\n"))
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ConfigError, got %v", err)
		}
		if cerr.Line != 2 || cerr.Column != 1 {
			t.Errorf("position = %d:%d, want 2:1", cerr.Line, cerr.Column)
		}
		if got := cerr.Error(); got != `c.yaml (line 2, column 1): unknown key "adminUrl"` {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := ParseConfig("c.yaml", []byte("port: lots\n"))
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			t.Fatalf("expected ConfigError, got %v", err)
		}
	})

	t.Run("not a mapping", func(t *testing.T) {
		_, err := ParseConfig("c.yaml", []byte("- a\n- b\n"))
		if err == nil || !strings.Contains(err.Error(), "expected a mapping") {
			t.Errorf("expected mapping error, got %v", err)
		}
	})
}

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv(EnvEditorURL, "http://env:1234")
	t.Setenv(EnvTimeout, "5")
	t.Setenv(EnvJSON, "yes")
	t.Setenv(EnvLogLevel, "debug")

	cfg := NewDefault()
	if err := LoadEnvConfig(cfg); err != nil {
		t.Fatalf("LoadEnvConfig() error = %v", err)
	}

	if cfg.EditorURL != "http://env:1234" || cfg.Timeout != 5 || !cfg.JSON || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Sources["timeout"] != SourceEnv {
		t.Errorf("timeout source = %q, want env", cfg.Sources["timeout"])
	}
	if cfg.Sources["port"] != SourceDefault {
		t.Errorf("port source = %q, want default", cfg.Sources["port"])
	}
}

func TestLoadEnvConfig_InvalidValues(t *testing.T) {
	t.Setenv(EnvPort, "seven")
	t.Setenv(EnvVerbose, "maybe")

	cfg := NewDefault()
	err := LoadEnvConfig(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), EnvPort) || !strings.Contains(err.Error(), EnvVerbose) {
		t.Errorf("error should name both variables, got %q", err.Error())
	}
	if cfg.Port != DefaultPort {
		t.Errorf("port changed to %d", cfg.Port)
	}
}

// isolate points the config search at empty temp dirs.
func isolate(t *testing.T) (cwd, configHome string) {
	t.Helper()
	cwd = t.TempDir()
	configHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", t.TempDir())
	for _, env := range []string{EnvEditorURL, EnvHost, EnvPort, EnvTimeout, EnvLogLevel, EnvLogFormat, EnvLayout, EnvJSON, EnvVerbose, EnvConfig} {
		t.Setenv(env, "")
	}
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(cwd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return cwd, configHome
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAll_Precedence(t *testing.T) {
	cwd, configHome := isolate(t)
	writeFile(t, filepath.Join(configHome, GlobalConfigDir, "config.yaml"), "host: global-host\nport: 1111\ntimeout: 10\n")
	writeFile(t, filepath.Join(cwd, ".scenectlrc.yaml"), "port: 2222\n")
	t.Setenv(EnvTimeout, "3")

	cfg, err := LoadAll("")
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	checks := []struct {
		key, source string
		ok          bool
	}{
		{"host", SourceGlobal, cfg.Host == "global-host"},
		{"port", SourceLocal, cfg.Port == 2222},
		{"timeout", SourceEnv, cfg.Timeout == 3},
		{"logLevel", SourceDefault, cfg.LogLevel == DefaultLogLevel},
	}
	for _, c := range checks {
		if !c.ok {
			t.Errorf("%s has wrong value: %+v", c.key, cfg)
		}
		if cfg.Sources[c.key] != c.source {
			t.Errorf("%s source = %q, want %q", c.key, cfg.Sources[c.key], c.source)
		}
	}
}

func TestLoadAll_ExplicitFile(t *testing.T) {
	cwd, _ := isolate(t)
	writeFile(t, filepath.Join(cwd, ".scenectlrc.yaml"), "port: 2222\n")
	explicit := filepath.Join(t.TempDir(), "ci.yaml")
	writeFile(t, explicit, "port: 3333\n")

	cfg, err := LoadAll(explicit)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if cfg.Port != 3333 || cfg.Sources["port"] != SourceFile {
		t.Errorf("port = %d from %q, want 3333 from file", cfg.Port, cfg.Sources["port"])
	}

	_, err = LoadAll(filepath.Join(cwd, "missing.yaml"))
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Errorf("expected ConfigError for missing explicit file, got %v", err)
	}
}

func TestLoadAll_BadLocalFile(t *testing.T) {
	cwd, _ := isolate(t)
	writeFile(t, filepath.Join(cwd, ".scenectlrc.yml"), "prot: 1\n")

	_, err := LoadAll("")
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if !strings.HasSuffix(cerr.Path, ".scenectlrc.yml") {
		t.Errorf("Path = %q", cerr.Path)
	}
}
