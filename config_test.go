package ctiscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.BM25.K1 != bm25K1 || cfg.BM25.B != bm25B {
		t.Errorf("LoadConfig() defaults = %+v, want k1=%v b=%v", cfg.BM25, bm25K1, bm25B)
	}
	if cfg.RetrievedResultsLimit != RetrievedResultsLimit {
		t.Errorf("RetrievedResultsLimit = %d, want %d", cfg.RetrievedResultsLimit, RetrievedResultsLimit)
	}
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.BM25.K1 != bm25K1 {
		t.Errorf("LoadConfig(\"\") k1 = %v, want %v", cfg.BM25.K1, bm25K1)
	}
}

func TestLoadConfig_OverridesBM25Params(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[bm25]\nk1 = 2.0\nb = 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.BM25.K1 != 2.0 || cfg.BM25.B != 0.5 {
		t.Errorf("LoadConfig() overrides = %+v, want k1=2.0 b=0.5", cfg.BM25)
	}
	if cfg.RetrievedResultsLimit != RetrievedResultsLimit {
		t.Errorf("RetrievedResultsLimit should remain default, got %d", cfg.RetrievedResultsLimit)
	}
}
