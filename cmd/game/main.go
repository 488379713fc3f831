// cmd/game/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-arena-shooter/internal/assets"
	"go-arena-shooter/internal/audio"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/report"
	"go-arena-shooter/internal/state"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/gridmap"
	"go-arena-shooter/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

type options struct {
	tuningPath string
	assetsDir  string
	reportURL  string
	logLevel   string
	seed       int64
	character  string
	mute       bool
	pprofAddr  string
}

func parseFlags() options {
	seed, _ := strconv.ParseInt(utils.GetEnvDefault("ARENA_SEED", "0"), 10, 64)
	mute, _ := strconv.ParseBool(utils.GetEnvDefault("ARENA_MUTE", "false"))

	var o options
	flag.StringVar(&o.tuningPath, "tuning", utils.GetEnvDefault("ARENA_TUNING", ""), "path to a YAML balance override file")
	flag.StringVar(&o.assetsDir, "assets", utils.GetEnvDefault("ARENA_ASSETS", ""), "sprite directory (vector shapes when empty)")
	flag.StringVar(&o.reportURL, "report-url", utils.GetEnvDefault("ARENA_REPORT_URL", ""), "websocket URL of the progress relay")
	flag.StringVar(&o.logLevel, "log-level", utils.GetEnvDefault("ARENA_LOG_LEVEL", "info"), "debug, info, warn or error")
	flag.Int64Var(&o.seed, "seed", seed, "random seed, 0 means time based")
	flag.StringVar(&o.character, "character", utils.GetEnvDefault("ARENA_CHARACTER", config.Characters[0].Key), "initial character key")
	flag.BoolVar(&o.mute, "mute", mute, "start with sound off")
	flag.StringVar(&o.pprofAddr, "pprof", utils.GetEnvDefault("ARENA_PPROF", ""), "pprof listen address")
	flag.Parse()
	return o
}

func setupLogger(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("bad log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func reporterFactory(url string) state.ReporterFactory {
	return func(sessionID string, c config.Character) (report.Reporter, func()) {
		logRep := report.LogReporter{SessionID: sessionID}
		if url == "" {
			return logRep, func() {}
		}
		ws := report.NewWSReporter(url, sessionID, c.Key)
		ctx, cancel := context.WithCancel(context.Background())
		go ws.Run(ctx)
		return report.Multi{logRep, ws}, func() {
			ws.Close()
			cancel()
		}
	}
}

func run(o options) error {
	tuning := config.DefaultTuning()
	if o.tuningPath != "" {
		t, err := config.LoadTuning(o.tuningPath)
		if err != nil {
			return fmt.Errorf("failed to load tuning: %w", err)
		}
		tuning = t
	}
	character, err := config.CharacterByKey(o.character)
	if err != nil {
		return err
	}

	library := assets.NewLibrary(nil)
	var fsys fs.FS
	if o.assetsDir != "" {
		fsys = os.DirFS(o.assetsDir)
	}
	library.Preload(fsys, assets.Keys())

	grid := gridmap.NewArena(config.CellSize)
	colors := state.DefaultColors()
	env := &state.Env{
		Tuning:          tuning,
		Grid:            grid,
		Assets:          library,
		Renderer:        render.NewArenaRenderer(grid, library, assets.ExplosionKey, colors, config.ScreenWidth, config.ScreenHeight),
		Colors:          colors,
		NewReporter:     reporterFactory(o.reportURL),
		Seed:            o.seed,
		FrameMultiplier: config.FrameMultiplier(float64(ebiten.TPS())),
		Character:       character,
		SoundEnabled:    !o.mute,
		Volume:          config.DefaultVolume,
	}
	if player, err := audio.NewPlayer(o.seed); err != nil {
		slog.Warn("sound disabled", "err", err)
	} else {
		env.Sound = player
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, env))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena")
	slog.Info("starting", "character", character.Name, "frame_multiplier", env.FrameMultiplier, "report", o.reportURL != "")
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

func main() {
	o := parseFlags()
	if err := setupLogger(o.logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if o.pprofAddr != "" {
		go func() {
			slog.Info("pprof stopped", "err", http.ListenAndServe(o.pprofAddr, nil))
		}()
	}
	if err := run(o); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
