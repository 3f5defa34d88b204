package main

import (
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/google/perfoverlay/internal/config"
	"github.com/google/perfoverlay/internal/hotkey"
	"github.com/google/perfoverlay/internal/logger"
	"github.com/google/perfoverlay/internal/metrics"
	"github.com/google/perfoverlay/internal/overlay"
	"github.com/google/perfoverlay/internal/ui"
)

func main() {
	code := 0
	runMain(func() { code = run() })
	os.Exit(code)
}

func run() int {
	// Parse flags
	mockMode := pflag.Bool("mock", false, "Run with simulated GPU and CPU data")
	configPath := pflag.String("config", "", "Path to perfoverlay.json (default: working dir, then executable dir)")
	debug := pflag.Bool("debug", false, "Enable debug logging")
	logPath := pflag.String("log-file", filepath.Join(os.TempDir(), "perfoverlay.log"), "Where to log while the overlay is shown")
	hotkeyMode := pflag.String("hotkey-mode", "", "Toggle via a \"global\" OS hotkey or a \"terminal\" key press")
	cpuTemp := pflag.String("cpu-temp", "", "CPU temperature source: \"placeholder\" or \"sensors\"")
	pflag.Parse()

	// Startup problems go to the terminal; the TUI takes it over later.
	logger.Init(os.Stderr, *debug)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}
	if pflag.CommandLine.Changed("hotkey-mode") {
		cfg.HotkeyMode = *hotkeyMode
	}
	if pflag.CommandLine.Changed("cpu-temp") {
		cfg.CPUTemperature = *cpuTemp
	}
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("Invalid configuration")
		return 1
	}

	// Initialize telemetry providers
	var gpu metrics.GPUProvider
	var cpu metrics.CPUProvider
	if *mockMode {
		logger.Info().Msg("Starting in MOCK mode")
		gpu, cpu = metrics.NewMockGPU(), metrics.NewMockCPU()
	} else {
		nvml, err := metrics.OpenNVML()
		if err != nil {
			// Nothing to show without a GPU; leave without opening the overlay.
			logger.Error().Err(err).Msg("Failed to initialize NVML")
			return 0
		}
		defer func() {
			if err := nvml.Shutdown(); err != nil {
				logger.Warn().Err(err).Msg("NVML shutdown failed")
			}
		}()

		sys, err := metrics.NewSystemCPU(cfg.TemperatureSource())
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize CPU telemetry")
			return 1
		}
		gpu, cpu = nvml, sys
	}

	// Register the toggle hotkey
	var manager hotkey.Manager
	var presser ui.Presser
	if cfg.HotkeyMode == config.HotkeyModeTerminal {
		local := hotkey.NewLocalManager()
		manager, presser = local, local
	} else {
		manager, err = newGlobalManager()
		if err != nil {
			logger.Error().Err(err).Msg("Global hotkeys unavailable")
			return 1
		}
	}
	defer manager.Close()

	binding, err := manager.Register(cfg.Chord())
	if err != nil {
		logger.Error().Err(err).Str("hotkey", cfg.Chord().String()).
			Msg("Failed to register hotkey (try --hotkey-mode=terminal)")
		return 1
	}
	logger.Info().Str("hotkey", binding.Chord.String()).Str("mode", cfg.HotkeyMode).Msg("Toggle hotkey registered")

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", *logPath).Msg("Failed to open log file")
		return 1
	}
	defer logFile.Close()
	logger.Init(logFile, *debug)

	loop := overlay.NewLoop(time.Now(), metrics.NewCollector(gpu, cpu), binding, manager.Receiver())
	root := ui.NewRootModel(loop, cfg, presser)

	// Start Bubble Tea program
	p := tea.NewProgram(root, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("Error running overlay")
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.OverlayConfiguration, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	return config.LoadDefaultConfig()
}
