package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("valid sqlite config", func(t *testing.T) {
		cfg := Config{Backend: BackendSQLite, DataDir: "/tmp/larder"}
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("empty rules path is valid", func(t *testing.T) {
		cfg := Config{Backend: BackendSQLite}
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("empty backend", func(t *testing.T) {
		cfg := Config{}
		if !errors.Is(cfg.Validate(), ErrBackendEmpty) {
			t.Fatal("expected ErrBackendEmpty")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := Config{Backend: "postgres"}
		if !errors.Is(cfg.Validate(), ErrBackendUnknown) {
			t.Fatal("expected ErrBackendUnknown")
		}
	})
}

func TestValidRisk(t *testing.T) {
	for _, risk := range []string{RiskHigh, RiskModerate, RiskLow} {
		if !ValidRisk(risk) {
			t.Fatalf("expected %q to be valid", risk)
		}
	}
	if ValidRisk("Catastrophic perishability") {
		t.Fatal("unexpected valid risk")
	}
}
