package config

import (
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/srv/photos", "/srv/photos"},
		{"single trailing slash", "/srv/photos/", "/srv/photos"},
		{"multiple trailing slashes", "/srv/photos///", "/srv/photos"},
		{"root path", "/", "/"},
		{"relative path", "shots", "shots"},
		{"relative with slash", "shots/", "shots"},
		{"dot", ".", "."},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_InputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() accepted empty InputDir")
	}

	cfg.CheckOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() in CheckOnly mode: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.InputDir != "." {
		t.Errorf("InputDir = %q, want %q", cfg.InputDir, ".")
	}
	if cfg.SkipExisting {
		t.Error("SkipExisting should default to false (outputs are overwritten)")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
}
