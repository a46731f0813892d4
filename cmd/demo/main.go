// cmd/demo/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"
	"github.com/gdamore/tcell/v2"
	"github.com/sony/gobreaker"

	"github.com/opd-ai/go-asterdodge/pkg/audio"
	"github.com/opd-ai/go-asterdodge/pkg/config"
	"github.com/opd-ai/go-asterdodge/pkg/event"
	"github.com/opd-ai/go-asterdodge/pkg/gesture"
	"github.com/opd-ai/go-asterdodge/pkg/health"
	"github.com/opd-ai/go-asterdodge/pkg/input"
	"github.com/opd-ai/go-asterdodge/pkg/logging"
	"github.com/opd-ai/go-asterdodge/pkg/physics"
	"github.com/opd-ai/go-asterdodge/pkg/render"
	engorender "github.com/opd-ai/go-asterdodge/pkg/render/engo"
	"github.com/opd-ai/go-asterdodge/pkg/scene"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	rendererFlag := flag.String("renderer", "", "Renderer override: terminal, engo, or null")
	providerFlag := flag.String("provider", "", "Input provider override: keyboard or script")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// .env is optional; a missing file is not an error
	if err := config.LoadEnvFile(""); err != nil {
		logger.Warn(ctx, "Failed to load .env file", "error", err.Error())
	}

	cfg := loadConfiguration(ctx, logger, *configPath)
	if *rendererFlag != "" {
		cfg.Demo.Renderer = *rendererFlag
	}
	if *providerFlag != "" {
		cfg.Demo.Provider = *providerFlag
	}

	// Audio is optional; the demo runs silent without a device
	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		logger.Warn(ctx, "Audio unavailable, running silent", "error", err.Error())
	}
	defer sound.Cleanup()

	switch cfg.Demo.Renderer {
	case "engo":
		runEngo(ctx, logger, cfg, sound)
	case "terminal", "null", "":
		runTick(ctx, logger, cfg, sound)
	default:
		logger.Error(ctx, "Unknown renderer", nil, "renderer", cfg.Demo.Renderer)
		os.Exit(1)
	}
}

func loadConfiguration(ctx context.Context, logger *logging.Logger, path string) *config.Config {
	var cfg *config.Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(cfg); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}
	return cfg
}

// wireAudio plays collision and reset cues off the scene's event bus.
func wireAudio(bus *event.Bus, sound *audio.SoundManager) {
	bus.Subscribe(event.CollisionDetected, func(event.Event) {
		sound.PlayCollision()
	})
	bus.Subscribe(event.SceneReset, func(event.Event) {
		sound.PlayReset()
	})
}

// startHealthServer serves liveness and readiness probes in the
// background and returns the server for shutdown.
func startHealthServer(ctx context.Context, logger *logging.Logger, checker *health.HealthChecker) *http.Server {
	port := "8080"
	if envPort := os.Getenv("ASTERDODGE_HEALTH_PORT"); envPort != "" {
		if _, err := strconv.Atoi(envPort); err == nil {
			port = envPort
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", checker.LivenessHandler)
	mux.HandleFunc("/ready", checker.ReadinessHandler)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info(ctx, "Starting health check server", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "Health check server failed", err)
		}
	}()
	return server
}

// defaultScript sweeps left, holds straight, then sweeps right, with a
// short untracked gap so the pause behavior shows up in demo runs.
func defaultScript() []input.ScriptStep {
	return []input.ScriptStep{
		{Detection: gesture.Detection{Tracked: true, HandClosed: true, SteerProgress: 0.5}, Ticks: 120},
		{Detection: gesture.Detection{Tracked: true, TurnLeft: true, SteerProgress: 0.1}, Ticks: 90},
		{Detection: gesture.Detection{Tracked: true, HandClosed: true, SteerProgress: 0.5}, Ticks: 60},
		{Detection: gesture.Detection{Tracked: true, TurnRight: true, SteerProgress: 0.9}, Ticks: 90},
		{Detection: gesture.Detection{Tracked: false}, Ticks: 60},
	}
}

// runEngo drives the demo through the engo window. engo.Run blocks
// until the window closes.
func runEngo(ctx context.Context, logger *logging.Logger, cfg *config.Config, sound *audio.SoundManager) {
	core, err := scene.NewScene(cfg, engorender.WindowBounds())
	if err != nil {
		logger.Error(ctx, "Failed to create scene", err)
		os.Exit(1)
	}
	wireAudio(core.Events(), sound)

	gameScene := engorender.NewGameScene(core, cfg.Asteroids.Count, func() {
		engo.Exit()
	})

	checker := health.NewHealthChecker()
	checker.AddCheck(health.NewTickLoopHealthCheck(func() uint64 {
		return core.Snapshot().Tick
	}))
	checker.AddCheck(health.NewGestureInputHealthCheck(func() gobreaker.State {
		if tracking := gameScene.Tracking(); tracking != nil {
			return tracking.State()
		}
		return gobreaker.StateClosed
	}))
	healthServer := startHealthServer(ctx, logger, checker)
	defer healthServer.Shutdown(context.Background())

	logger.Info(ctx, "Starting demo",
		"renderer", "engo",
		"asteroids", cfg.Asteroids.Count,
	)
	opts := engo.RunOptions{
		Title:  "AsterDodge",
		Width:  int(cfg.Arena.Width),
		Height: int(cfg.Arena.Height),
	}
	engo.Run(opts, gameScene)
}

// runTick drives the demo with a fixed-rate ticker and either the
// tcell terminal renderer or the null renderer.
func runTick(ctx context.Context, logger *logging.Logger, cfg *config.Config, sound *audio.SoundManager) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		renderer render.Renderer
		bounds   scene.BoundsProvider
		provider input.Provider
	)

	useTerminal := cfg.Demo.Renderer == "terminal" || cfg.Demo.Renderer == ""
	if useTerminal {
		screen, err := tcell.NewScreen()
		if err != nil {
			logger.Error(ctx, "Failed to create terminal screen", err)
			os.Exit(1)
		}
		if err := screen.Init(); err != nil {
			logger.Error(ctx, "Failed to initialize terminal screen", err)
			os.Exit(1)
		}

		term, err := render.NewTerminalRenderer(screen)
		if err != nil {
			logger.Error(ctx, "Failed to create terminal renderer", err)
			os.Exit(1)
		}
		renderer = term
		bounds = term

		if cfg.Demo.Provider == "keyboard" || cfg.Demo.Provider == "" {
			keyboard := render.NewKeyboardProvider(cancel)
			provider = keyboard
			go func() {
				for {
					ev := screen.PollEvent()
					if ev == nil {
						return
					}
					keyboard.HandleEvent(ev)
				}
			}()
		}
	} else {
		renderer = render.NewNullRenderer()
		bounds = scene.BoundsFunc(func() physics.Rect {
			return physics.NewRectFromEdges(0, 0, cfg.Arena.Width, cfg.Arena.Height)
		})
	}
	defer renderer.Close()

	if provider == nil {
		script, err := input.NewScriptProvider(defaultScript(), true)
		if err != nil {
			logger.Error(ctx, "Failed to create script provider", err)
			os.Exit(1)
		}
		provider = script
	}
	tracking := input.NewTrackingService(provider, input.DefaultTrackingConfig())

	core, err := scene.NewScene(cfg, bounds)
	if err != nil {
		logger.Error(ctx, "Failed to create scene", err)
		os.Exit(1)
	}
	wireAudio(core.Events(), sound)

	checker := health.NewHealthChecker()
	checker.AddCheck(health.NewTickLoopHealthCheck(func() uint64 {
		return core.Snapshot().Tick
	}))
	checker.AddCheck(health.NewGestureInputHealthCheck(tracking.State))
	healthServer := startHealthServer(ctx, logger, checker)
	defer healthServer.Shutdown(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	logger.Info(ctx, "Starting demo",
		"renderer", cfg.Demo.Renderer,
		"provider", cfg.Demo.Provider,
		"tick_rate", cfg.Demo.TickRate,
	)

	ticker := time.NewTicker(cfg.Demo.TickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			core.Update(tracking.Next(runCtx))
			if err := renderer.Render(core.Snapshot()); err != nil {
				logger.Error(ctx, "Render failed", err)
				return
			}
		case <-sigChan:
			logger.Info(ctx, "Shutting down")
			return
		case <-runCtx.Done():
			logger.Info(ctx, "Shutting down")
			return
		}
	}
}
