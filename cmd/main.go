package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kuantum/internal/config"
	"kuantum/internal/game"
	"kuantum/internal/models"
	"kuantum/internal/monitoring"
	"kuantum/internal/playground"
	"kuantum/internal/random"
	"kuantum/internal/ui"
)

var (
	configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 = generate)")
	observe    = flag.Bool("observe", false, "Serve the playground observer API")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *observe {
		cfg.Playground.Enabled = true
	}

	seed := cfg.Seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			log.Fatalf("Failed to generate seed: %v", err)
		}
	}

	kitchen := game.NewKitchen(settingsFrom(cfg), rand.New(rand.NewSource(seed)))
	monitor := monitoring.NewMonitor()
	monitor.RecordMetric("seed", seed)

	loop := ui.NewLoop(kitchen, os.Stdin, os.Stdout)

	collector := monitoring.NewCollector()
	loop.AddObserver(collector.Observe)
	loop.AddObserver(func(snap game.StatusSnapshot) {
		monitor.RecordDayResult(snap.Day, map[string]interface{}{
			"score":        snap.Score,
			"satisfaction": snap.Satisfaction,
			"stability":    snap.Stability,
		})
	})

	if cfg.Metrics.Enabled {
		go startMetricsServer(cfg.Metrics.Port, collector)
	}

	if cfg.Playground.Enabled {
		gin.SetMode(gin.ReleaseMode)
		server := playground.NewServer(monitor)
		loop.AddObserver(server.Publish)
		go startPlaygroundServer(cfg.Playground.Port, server)
	}

	loop.Run()

	fmt.Println("\nThank you for playing Kuantum Kitchen!")
}

// settingsFrom maps the loaded configuration onto game settings.
func settingsFrom(cfg config.Config) game.Settings {
	settings := game.DefaultSettings()
	settings.Satisfaction = cfg.Game.Satisfaction
	settings.Stability = cfg.Game.Stability
	settings.EventChance = cfg.Game.EventChance
	settings.Resources = map[models.ResourceType]int{
		models.ResourceQuantumEnergy:         cfg.Game.Resources.QuantumEnergy,
		models.ResourceProbabilityStabilizer: cfg.Game.Resources.ProbabilityStabilizer,
		models.ResourceTimelineToken:         cfg.Game.Resources.TimelineToken,
	}
	return settings
}

func startPlaygroundServer(port int, server *playground.Server) {
	log.Printf("Starting playground observer on port %d", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), server.Router()); err != nil {
		log.Printf("Playground server error: %v", err)
	}
}

func startMetricsServer(port int, collector *monitoring.Collector) {
	metricsRouter := gin.New()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})))

	log.Printf("Starting metrics server on port %d", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), metricsRouter); err != nil {
		log.Printf("Metrics server error: %v", err)
	}
}
