package spawn

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/markkua/kubric/internal/scene"
)

// Config содержит настройки генерации сцены
type Config struct {
	// Адрес HTTP/WebSocket сервера
	Addr string `yaml:"addr"`

	// Область спавна объектов
	SpawnRegion RegionConfig `yaml:"spawn_region"`

	// Максимальное число попыток размещения одного объекта
	MaxTrials int `yaml:"max_trials"`

	// Диапазон размеров создаваемых объектов
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`

	// Насыщенность и яркость случайных цветов (HSV)
	Saturation float64 `yaml:"saturation"`
	Value      float64 `yaml:"value"`

	// Размер ячейки пространственной сетки симулятора
	CellSize float64 `yaml:"cell_size"`
}

// RegionConfig — область спавна в формате yaml-файла
type RegionConfig struct {
	Min [3]float64 `yaml:"min"`
	Max [3]float64 `yaml:"max"`
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() Config {
	return Config{
		Addr: ":8080",
		SpawnRegion: RegionConfig{
			Min: [3]float64{-1, -1, -1},
			Max: [3]float64{1, 1, 1},
		},
		MaxTrials:  100,
		MinSize:    0.1,
		MaxSize:    0.25,
		Saturation: 1.0,
		Value:      1.0,
		CellSize:   2.0,
	}
}

// LoadConfig читает конфигурацию из yaml-файла поверх значений по умолчанию.
// Пустой путь возвращает значения по умолчанию.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Region возвращает область спавна в виде scene.AABB
func (c Config) Region() scene.AABB {
	return scene.AABB{
		Min: mgl64.Vec3{c.SpawnRegion.Min[0], c.SpawnRegion.Min[1], c.SpawnRegion.Min[2]},
		Max: mgl64.Vec3{c.SpawnRegion.Max[0], c.SpawnRegion.Max[1], c.SpawnRegion.Max[2]},
	}
}
