// scenegen генерирует сцену из случайных непересекающихся объектов
// и печатает по одному JSON-объекту на строку.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/markkua/kubric/internal/scene"
	"github.com/markkua/kubric/internal/sim"
	"github.com/markkua/kubric/internal/spawn"
	"github.com/markkua/kubric/internal/transport/ws"
)

func main() {
	configPath := flag.String("config", "", "путь к yaml-файлу конфигурации")
	count := flag.Int("n", 10, "количество объектов")
	seed := flag.Int64("seed", 0, "seed генератора (0 = от текущего времени)")
	verbose := flag.Bool("v", false, "подробное логирование")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	cfg, err := spawn.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[Scenegen] Ошибка загрузки конфигурации: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	manager := scene.NewManager()
	simulator := sim.NewLocal(cfg.CellSize, logger)
	spawner := spawn.NewSpawner(manager, simulator, cfg, logger)

	placed, err := spawner.Populate(*count, rng)

	encoder := json.NewEncoder(os.Stdout)
	for _, obj := range placed {
		if encErr := encoder.Encode(ws.NewCreateMessage(obj)); encErr != nil {
			log.Fatalf("[Scenegen] Ошибка вывода: %v", encErr)
		}
	}

	if err != nil {
		log.Fatalf("[Scenegen] Размещено %d из %d: %v", len(placed), *count, err)
	}
}
