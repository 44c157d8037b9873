package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port == "" || cfg.DBPath == "" || cfg.LogLevel == "" {
		t.Errorf("expected defaults for all fields, got %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Port: "8080", LogLevel: "info"}},
		{name: "non-numeric port", cfg: Config{Port: "http", LogLevel: "info"}, wantErr: true},
		{name: "port out of range", cfg: Config{Port: "70000", LogLevel: "info"}, wantErr: true},
		{name: "bad log level", cfg: Config{Port: "8080", LogLevel: "verbose"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
