package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/markkua/kubric/internal/scene"
	"github.com/markkua/kubric/internal/sim"
	"github.com/markkua/kubric/internal/spawn"
	"github.com/markkua/kubric/internal/transport/ws"
)

func main() {
	configPath := flag.String("config", "", "путь к yaml-файлу конфигурации")
	addr := flag.String("addr", "", "адрес сервера (перекрывает конфигурацию)")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := spawn.LoadConfig(*configPath)
	if err != nil {
		logger.Fatalf("[Server] Ошибка загрузки конфигурации: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	manager := scene.NewManager()
	simulator := sim.NewLocal(cfg.CellSize, logger)
	spawner := spawn.NewSpawner(manager, simulator, cfg, logger)
	server := ws.NewServer(spawner, logger)

	http.HandleFunc("/ws", server.HandleWS)
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	logger.Printf("[Server] Запуск на %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		logger.Fatalf("[Server] Ошибка сервера: %v", err)
	}
}
