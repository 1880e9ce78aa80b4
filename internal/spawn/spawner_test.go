package spawn

import (
	"errors"
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/markkua/kubric/internal/placement"
	"github.com/markkua/kubric/internal/scene"
	"github.com/markkua/kubric/internal/sim"
)

func newTestSpawner(cfg Config) (*Spawner, *scene.Manager, *sim.Local) {
	logger := log.New(io.Discard, "", 0)
	manager := scene.NewManager()
	simulator := sim.NewLocal(cfg.CellSize, logger)
	return NewSpawner(manager, simulator, cfg, logger), manager, simulator
}

func TestPopulatePlacesWithoutOverlap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnRegion = RegionConfig{
		Min: [3]float64{-5, -5, -5},
		Max: [3]float64{5, 5, 5},
	}
	spawner, manager, _ := newTestSpawner(cfg)

	rng := rand.New(rand.NewSource(40))
	placed, err := spawner.Populate(20, rng)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(placed) != 20 {
		t.Fatalf("размещено %d объектов, ожидали 20", len(placed))
	}
	if manager.Count() != 20 {
		t.Errorf("в менеджере %d объектов, ожидали 20", manager.Count())
	}

	region := cfg.Region()
	for i, a := range placed {
		worldA := placement.WorldBounds(a)

		// Все объекты внутри области спавна
		if !region.Contains(worldA.Min) || !region.Contains(worldA.Max) {
			t.Errorf("объект %s вне области спавна: %v..%v", a.ID, worldA.Min, worldA.Max)
		}

		// Попарно без пересечений
		for _, b := range placed[i+1:] {
			if worldA.Overlaps(placement.WorldBounds(b)) {
				t.Errorf("объекты %s и %s пересекаются", a.ID, b.ID)
			}
		}
	}
}

func TestPopulateAssignsColorsAndShapes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnRegion = RegionConfig{
		Min: [3]float64{-5, -5, -5},
		Max: [3]float64{5, 5, 5},
	}
	spawner, _, _ := newTestSpawner(cfg)

	rng := rand.New(rand.NewSource(41))
	placed, err := spawner.Populate(30, rng)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	ids := make(map[string]bool)
	for _, obj := range placed {
		if obj.Color == "" || obj.Color[0] != '#' {
			t.Errorf("объект %s без hex-цвета: %q", obj.ID, obj.Color)
		}
		if obj.Shape.Type != scene.SPHERE && obj.Shape.Type != scene.BOX {
			t.Errorf("объект %s неизвестной формы %d", obj.ID, obj.Shape.Type)
		}
		if ids[obj.ID] {
			t.Errorf("повторяющийся идентификатор %s", obj.ID)
		}
		ids[obj.ID] = true
	}
}

func TestPopulateExhaustsTightRegion(t *testing.T) {
	// Два куба 0.8 в области (-0.5..0.5)^3 не могут не пересекаться:
	// эффективная область схлопывается до (-0.1..0.1)^3
	cfg := DefaultConfig()
	cfg.SpawnRegion = RegionConfig{
		Min: [3]float64{-0.5, -0.5, -0.5},
		Max: [3]float64{0.5, 0.5, 0.5},
	}
	cfg.MinSize = 0.8
	cfg.MaxSize = 0.8
	cfg.MaxTrials = 20
	spawner, _, _ := newTestSpawner(cfg)

	rng := rand.New(rand.NewSource(42))
	placed, err := spawner.Populate(3, rng)

	var placementErr *placement.PlacementError
	if !errors.As(err, &placementErr) {
		t.Fatalf("ожидали *PlacementError, получили %v", err)
	}
	if placementErr.Trials != 20 {
		t.Errorf("в ошибке %d попыток, ожидали 20", placementErr.Trials)
	}
	// Первый объект размещается в пустой сцене всегда
	if len(placed) != 1 {
		t.Errorf("размещено %d объектов до исчерпания, ожидали 1", len(placed))
	}
}

func TestPopulateDeterministicBySeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnRegion = RegionConfig{
		Min: [3]float64{-5, -5, -5},
		Max: [3]float64{5, 5, 5},
	}

	spawnerA, _, _ := newTestSpawner(cfg)
	spawnerB, _, _ := newTestSpawner(cfg)

	placedA, errA := spawnerA.Populate(10, rand.New(rand.NewSource(99)))
	placedB, errB := spawnerB.Populate(10, rand.New(rand.NewSource(99)))
	if errA != nil || errB != nil {
		t.Fatalf("неожиданные ошибки: %v, %v", errA, errB)
	}

	// Идентификаторы случайны, но позиции, повороты и цвета при одном
	// seed должны совпадать
	for i := range placedA {
		if placedA[i].Position != placedB[i].Position {
			t.Errorf("объект %d: позиции %v и %v различаются", i, placedA[i].Position, placedB[i].Position)
		}
		if placedA[i].Rotation != placedB[i].Rotation {
			t.Errorf("объект %d: повороты различаются", i)
		}
		if placedA[i].Color != placedB[i].Color {
			t.Errorf("объект %d: цвета %s и %s различаются", i, placedA[i].Color, placedB[i].Color)
		}
	}
}
