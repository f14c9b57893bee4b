package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Export.MayaVersion != "2018" {
		t.Errorf("expected maya version 2018, got %s", cfg.Export.MayaVersion)
	}
	if cfg.Export.LinearUnit != "meter" {
		t.Errorf("expected linear unit meter, got %s", cfg.Export.LinearUnit)
	}
	if cfg.Export.FrameRate != 0 {
		t.Errorf("expected frame rate 0 (use clip rate), got %v", cfg.Export.FrameRate)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "export2maya.yaml")

	yamlContent := `
export:
  maya_version: "2020"
  linear_unit: centimeter
  frame_rate: 60
  texture_path: "/assets/textures/"

logging:
  level: "debug"
  log_file: "export.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Export.MayaVersion != "2020" {
		t.Errorf("expected maya version 2020, got %s", cfg.Export.MayaVersion)
	}
	if cfg.Export.LinearUnit != "centimeter" {
		t.Errorf("expected centimeter, got %s", cfg.Export.LinearUnit)
	}
	if cfg.Export.FrameRate != 60 {
		t.Errorf("expected frame rate 60, got %v", cfg.Export.FrameRate)
	}
	if cfg.Export.TexturePath != "/assets/textures/" {
		t.Errorf("unexpected texture path %q", cfg.Export.TexturePath)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Export.Application != "export2maya" {
		t.Errorf("expected default application, got %q", cfg.Export.Application)
	}
	if cfg.Logging.LogFile != "export.log" {
		t.Errorf("expected log file 'export.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "export2maya.toml")
	tomlContent := `
[export]
maya_version = "2022"
linear_unit = "centimeter"

[logging]
level = "warn"
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Export.MayaVersion != "2022" {
		t.Errorf("expected maya version 2022, got %s", cfg.Export.MayaVersion)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad yaml", "bad.yaml", "export:\n  frame_rate: not a number\n  invalid syntax here\n"},
		{"unknown yaml key", "extra.yaml", "export:\n  resolution: 4k\n"},
		{"unknown toml key", "extra.toml", "[export]\nresolution = \"4k\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if cfg.Export.MayaVersion != "2018" {
		t.Errorf("empty file changed defaults: %+v", cfg.Export)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"newer version", func(c *Config) { c.Export.MayaVersion = "2024.2" }, true},
		{"old version", func(c *Config) { c.Export.MayaVersion = "2011" }, false},
		{"garbage version", func(c *Config) { c.Export.MayaVersion = "latest" }, false},
		{"unknown unit", func(c *Config) { c.Export.LinearUnit = "inch" }, false},
		{"negative fps", func(c *Config) { c.Export.FrameRate = -1 }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "export2maya.toml")
	if err := os.WriteFile(configPath, []byte("[export]\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./export2maya.toml" {
		t.Errorf("expected ./export2maya.toml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(*testing.T, *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "export flags",
			args: []string{"-maya-version", "2023", "-units", "centimeter", "-fps", "24", "-texture-path", "tex/", "-o", "out.ma"},
			verify: func(t *testing.T, cfg *Config) {
				want := ExportConfig{
					MayaVersion: "2023",
					LinearUnit:  "centimeter",
					FrameRate:   24,
					TexturePath: "tex/",
					Output:      "out.ma",
					Application: "export2maya",
				}
				if cfg.Export != want {
					t.Errorf("got %+v, want %+v", cfg.Export, want)
				}
			},
		},
		{
			name: "no flags",
			args: nil,
			verify: func(t *testing.T, cfg *Config) {
				if *cfg != *Default() {
					t.Errorf("expected defaults, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			BindFlags(fs)
			defer func() { flags = flagValues{} }()
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("parse flags: %v", err)
			}
			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestSaveTo(t *testing.T) {
	for _, name := range []string{"out/config.yaml", "out/config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := Default()
			cfg.Export.LinearUnit = "centimeter"
			cfg.Export.FrameRate = 25
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("save: %v", err)
			}
			loaded := Default()
			if err := loadFromFile(loaded, path); err != nil {
				t.Fatalf("reload: %v", err)
			}
			if *loaded != *cfg {
				t.Errorf("round trip mismatch: got %+v, want %+v", loaded, cfg)
			}
		})
	}
}
