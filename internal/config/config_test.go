package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":8080" || cfg.DataDir != "data" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.ExpirySchedule == "" {
		t.Fatal("default expiry schedule empty")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gym.yaml")
	content := "listen_addr: \":9090\"\ndata_dir: /var/lib/gym\nexpiry_schedule: \"30 5 * * *\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9090" || cfg.DataDir != "/var/lib/gym" || cfg.ExpirySchedule != "30 5 * * *" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gym.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("GYM_LISTEN_ADDR", ":7070")
	t.Setenv("GYM_DATA_DIR", "/srv/gym-data")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":7070" {
		t.Fatalf("env override lost: %+v", cfg)
	}
	if cfg.DataDir != "/srv/gym-data" {
		t.Fatalf("data dir override lost: %+v", cfg)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing explicit config accepted")
	}
}
