package spawn

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxTrials != 100 {
		t.Errorf("MaxTrials = %d, ожидали 100", cfg.MaxTrials)
	}

	region := cfg.Region()
	if region.Min != (mgl64.Vec3{-1, -1, -1}) || region.Max != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("область спавна по умолчанию = %v..%v, ожидали (-1..1)^3", region.Min, region.Max)
	}
	if cfg.Saturation != 1.0 || cfg.Value != 1.0 {
		t.Errorf("цветовые настройки по умолчанию: s=%v v=%v, ожидали 1 и 1", cfg.Saturation, cfg.Value)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("пустой путь должен возвращать конфигурацию по умолчанию")
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("addr: \":9000\"\nmax_trials: 42\nspawn_region:\n  min: [-3, -3, -3]\n  max: [3, 3, 3]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, ожидали :9000", cfg.Addr)
	}
	if cfg.MaxTrials != 42 {
		t.Errorf("MaxTrials = %d, ожидали 42", cfg.MaxTrials)
	}
	if cfg.Region().Min != (mgl64.Vec3{-3, -3, -3}) {
		t.Errorf("область спавна не прочитана: %v", cfg.Region().Min)
	}

	// Не заданные в файле поля сохраняют значения по умолчанию
	if cfg.MinSize != DefaultConfig().MinSize {
		t.Errorf("MinSize = %v, ожидали значение по умолчанию", cfg.MinSize)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("ожидали ошибку для отсутствующего файла")
	}
}

func TestLoadConfigInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("max_trials: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("ожидали ошибку разбора yaml")
	}
}
