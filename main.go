// Command pond-pet runs the desktop pond widget: a small borderless window
// with a day/night sky, ambient fish and lotus leaves, splash and rain
// physics, and a scene that unlocks after days of continuous uptime.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pond-pet/widget/internal/app"
	"pond-pet/widget/internal/config"
	"pond-pet/widget/internal/sim"
	"pond-pet/widget/internal/uptime"
)

func main() {
	configPath := flag.String("config", "pond.toml", "path to the TOML config; missing file runs defaults")
	seed := flag.String("seed", "", "override the deterministic simulation seed")
	flag.Parse()

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "pond-pet: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, seedOverride string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seedOverride != "" {
		cfg.Seed = seedOverride
		cfg = cfg.Normalized()
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	engine := sim.NewEngine(cfg, sim.Deps{Logger: logger})

	var store *uptime.Store
	if cfg.Uptime.Persist {
		store = uptime.NewStore(cfg.Uptime.StatePath)
		seconds, err := store.Load()
		if err != nil {
			logger.Warn("uptime state unreadable, starting from zero", zap.Error(err))
		} else if seconds > 0 {
			engine.RestoreUptime(seconds)
			logger.Info("restored uptime", zap.Float64("seconds", seconds))
		}
	}

	game := app.New(cfg, logger, engine, store)
	defer game.Flush()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("pond")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetTPS(cfg.Window.TPS)

	opts := &ebiten.RunGameOptions{
		ScreenTransparent: true,
	}
	if err := ebiten.RunGameWithOptions(game, opts); err != nil {
		return fmt.Errorf("run widget: %w", err)
	}
	logger.Info("widget closed",
		zap.Float64("uptimeSeconds", engine.UptimeState().ContinuousSeconds),
	)
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
