package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmptyServeConfigDefaults(t *testing.T) {
	cfg := EmptyServeConfig()

	if cfg.GetListenAddr() != ":8080" {
		t.Errorf("GetListenAddr() = %q, want \":8080\"", cfg.GetListenAddr())
	}
	if cfg.GetCataloguePath() != "scenario_catalogue.db" {
		t.Errorf("GetCataloguePath() = %q, want \"scenario_catalogue.db\"", cfg.GetCataloguePath())
	}
	if cfg.GetMaxChartPoints() != 8000 {
		t.Errorf("GetMaxChartPoints() = %d, want 8000", cfg.GetMaxChartPoints())
	}
	if cfg.GetShutdownTimeout() != 5*time.Second {
		t.Errorf("GetShutdownTimeout() = %v, want 5s", cfg.GetShutdownTimeout())
	}
}

func TestLoadServeConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "serve.json")

	testJSON := `{
  "listen_addr": ":9090",
  "catalogue_path": "/data/catalogue.db",
  "max_chart_points": 20000,
  "shutdown_timeout": "10s"
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadServeConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GetListenAddr() != ":9090" {
		t.Errorf("GetListenAddr() = %q, want \":9090\"", cfg.GetListenAddr())
	}
	if cfg.GetCataloguePath() != "/data/catalogue.db" {
		t.Errorf("GetCataloguePath() = %q, want \"/data/catalogue.db\"", cfg.GetCataloguePath())
	}
	if cfg.GetMaxChartPoints() != 20000 {
		t.Errorf("GetMaxChartPoints() = %d, want 20000", cfg.GetMaxChartPoints())
	}
	if cfg.GetShutdownTimeout() != 10*time.Second {
		t.Errorf("GetShutdownTimeout() = %v, want 10s", cfg.GetShutdownTimeout())
	}
}

func TestLoadServeConfigPartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.json")

	if err := os.WriteFile(configPath, []byte(`{"listen_addr": ":7070"}`), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadServeConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// specified field overridden, the rest keep defaults
	if cfg.GetListenAddr() != ":7070" {
		t.Errorf("GetListenAddr() = %q, want \":7070\"", cfg.GetListenAddr())
	}
	if cfg.GetMaxChartPoints() != 8000 {
		t.Errorf("GetMaxChartPoints() = %d, want default 8000", cfg.GetMaxChartPoints())
	}
}

func TestLoadServeConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(tmpDir, "serve.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadServeConfig(path); err == nil {
			t.Error("expected error for non-json extension")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadServeConfig(filepath.Join(tmpDir, "absent.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadServeConfig(path); err == nil {
			t.Error("expected error for malformed json")
		}
	})

	t.Run("out-of-range max_chart_points", func(t *testing.T) {
		path := filepath.Join(tmpDir, "range.json")
		if err := os.WriteFile(path, []byte(`{"max_chart_points": 10}`), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadServeConfig(path); err == nil {
			t.Error("expected error for out-of-range max_chart_points")
		}
	})

	t.Run("bad shutdown_timeout", func(t *testing.T) {
		path := filepath.Join(tmpDir, "timeout.json")
		if err := os.WriteFile(path, []byte(`{"shutdown_timeout": "soon"}`), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadServeConfig(path); err == nil {
			t.Error("expected error for unparseable shutdown_timeout")
		}
	})
}
