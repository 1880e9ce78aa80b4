// Package spawn наполняет сцену случайными объектами без пересечений.
package spawn

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/markkua/kubric/internal/placement"
	"github.com/markkua/kubric/internal/scene"
)

// Simulator — коллаборатор проверки пересечений с регистрацией объектов
type Simulator interface {
	placement.Simulator
	Add(obj *scene.Object)
}

// Spawner создает случайные объекты и размещает их в области спавна
// методом отбраковки
type Spawner struct {
	manager *scene.Manager
	sim     Simulator
	cfg     Config
	logger  *log.Logger
}

// NewSpawner создает новый Spawner
func NewSpawner(manager *scene.Manager, sim Simulator, cfg Config, logger *log.Logger) *Spawner {
	return &Spawner{
		manager: manager,
		sim:     sim,
		cfg:     cfg,
		logger:  logger,
	}
}

// Populate создает count случайных объектов (сферы и коробки со случайным
// тоном цвета), размещает каждый без пересечений и регистрирует в менеджере
// сцены и симуляторе. Возвращает успешно размещенные объекты; при
// исчерпании попыток размещения — их и ошибку.
func (s *Spawner) Populate(count int, rng *rand.Rand) ([]*scene.Object, error) {
	region := s.cfg.Region()
	placed := make([]*scene.Object, 0, count)

	for i := 0; i < count; i++ {
		obj := s.randomObject(rng)

		if err := placement.MoveUntilNoOverlap(obj, s.sim, region, s.cfg.MaxTrials, rng); err != nil {
			return placed, fmt.Errorf("populating scene: %w", err)
		}

		s.sim.Add(obj)
		s.manager.AddObject(obj)
		placed = append(placed, obj)

		s.logger.Printf("[Spawn] Размещен объект %s в (%.2f, %.2f, %.2f)",
			obj.ID, obj.Position.X(), obj.Position.Y(), obj.Position.Z())
	}

	return placed, nil
}

// randomObject создает объект случайной формы, размера и цвета
func (s *Spawner) randomObject(rng *rand.Rand) *scene.Object {
	size := s.cfg.MinSize + rng.Float64()*(s.cfg.MaxSize-s.cfg.MinSize)
	color := placement.RandomHueColor(s.cfg.Saturation, s.cfg.Value, rng).Hex()

	if rng.Intn(2) == 0 {
		id := fmt.Sprintf("sphere-%s", uuid.NewString())
		return scene.NewSphere(id, mgl64.Vec3{}, size/2, 1.0, color)
	}
	id := fmt.Sprintf("box-%s", uuid.NewString())
	return scene.NewBox(id, mgl64.Vec3{}, size, size, size, 1.0, color)
}
