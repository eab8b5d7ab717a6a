package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/muckpond/audio"
	"github.com/lixenwraith/muckpond/core"
	"github.com/lixenwraith/muckpond/engine"
	"github.com/lixenwraith/muckpond/event"
	"github.com/lixenwraith/muckpond/parameter"
	"github.com/lixenwraith/muckpond/render"
	"github.com/lixenwraith/muckpond/sim"
)

// host drives one simulation from terminal input and wall time, single goroutine
type host struct {
	cfg    settings
	logger *slog.Logger
	screen tcell.Screen

	sim    *sim.Simulation
	clock  *engine.PausableClock
	router *event.Router
	player *audio.Player
	orch   *render.Orchestrator
	hud    *render.HUDLayer

	pressed bool
	round   uuid.UUID
}

func newHost(s settings, screen tcell.Screen, player *audio.Player, logger *slog.Logger, provider engine.TimeProvider) *host {
	seed := resolveSeed(s.cfg.Seed)
	pond := sim.New(sim.Options{Seed: seed})

	h := &host{
		cfg:    s,
		logger: logger,
		screen: screen,
		sim:    pond,
		clock:  engine.NewPausableClock(provider),
		router: event.NewRouter(pond.Events()),
		player: player,
		hud:    &render.HUDLayer{Visible: s.cfg.View.HUD},
		round:  pond.Endgame().Round(),
	}
	h.orch = render.NewDefault(screen, h.hud)

	if player != nil {
		player.SetMuted(s.muted || !s.cfg.Audio.Enabled)
		h.router.Register(player)
	}
	h.router.Register(event.HandlerFunc{
		Types: []event.EventType{
			event.EventEndgameArmed,
			event.EventEndgameResetStarted,
			event.EventEndgameResetCompleted,
			event.EventClusterBurst,
		},
		Fn: h.logEvent,
	})

	logger.Info("pond started", "seed", seed, "round", h.round, "cells", pond.Graph().Len())
	return h
}

// logEvent records endgame transitions with their round ids
func (h *host) logEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.EndgamePayload:
		h.logger.Info(ev.Type.String(), "time", ev.Time, "round", p.Round, "mucky", p.Mucky, "total", p.Total, "reason", p.Reason)
		if ev.Type == event.EventEndgameResetCompleted {
			h.round = p.Round
		}
	case *event.ClusterBurstPayload:
		h.logger.Debug(ev.Type.String(), "time", ev.Time, "root", p.Root, "members", len(p.Members))
	}
}

// handleEvent applies one terminal event, returns false to quit
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.orch.Resize()
	}
	return true
}

func (h *host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'p', ' ':
		paused := h.clock.Toggle()
		h.logger.Debug("pause toggled", "paused", paused)
	case 'm':
		if h.player != nil {
			h.player.SetMuted(!h.player.Muted())
		}
	case 'h':
		h.hud.Visible = !h.hud.Visible
	case 'r':
		// Skip the remaining fade of a pending reset
		if h.sim.CompleteReset() {
			h.router.DispatchAll()
		}
	}
	return true
}

// handleMouse pushes cells away from a held button and pokes the forager under a fresh press
func (h *host) handleMouse(ev *tcell.EventMouse) {
	if !h.cfg.cfg.View.Mouse {
		return
	}
	x, y := ev.Position()
	pos := h.orch.Viewport().ToPond(x, y)
	down := ev.Buttons()&tcell.Button1 != 0

	h.sim.SetPointer(down, pos)
	if down && !h.pressed && !h.clock.IsPaused() {
		if h.sim.Poke(pos) {
			h.logger.Debug("forager poked", "x", pos.X, "y", pos.Y)
		}
	}
	h.pressed = down
}

// step advances the simulation by unpaused wall time and routes its events
func (h *host) step() {
	dt := h.clock.Tick()
	if dt > 0 {
		h.sim.Update(dt)
	}
	h.router.DispatchAll()
}

func (h *host) draw() {
	muted := h.player == nil || h.player.Muted()
	h.orch.RenderFrame(render.Context{
		Snapshot: h.sim.Snapshot(),
		Metrics:  h.sim.Status().Snapshot(),
		Paused:   h.clock.IsPaused(),
		Muted:    muted,
	})
}

// loop runs until quit, context cancellation or terminal closure
func (h *host) loop(ctx context.Context, tickInterval time.Duration) error {
	events := make(chan tcell.Event, parameter.InputQueueSize)
	quit := make(chan struct{})
	defer close(quit)

	// Input polling blocks on the terminal, so it runs apart from the loop
	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	tick := time.NewTicker(tickInterval)
	defer tick.Stop()
	frame := time.NewTicker(parameter.FrameInterval)
	defer frame.Stop()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}
		case <-tick.C:
			h.step()
		case <-frame.C:
			h.draw()
		}
	}
}

// runPond is the root and run command: terminal, audio, then the host loop
func runPond(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, logFile := setupLogging(s.cfg.LogDir, s.cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Info("config loaded", "path", s.cfg.Path, "tick_rate", s.cfg.TickRate, "audio", s.cfg.Audio.Enabled)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	if s.cfg.View.Mouse {
		screen.EnableMouse()
	}
	screen.HideCursor()

	player := audio.NewPlayer(s.audio)
	if s.audio.Enabled {
		if err := player.Start(); err != nil {
			logger.Warn("audio unavailable, continuing silent", "error", err)
		} else {
			defer player.Close()
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := newHost(s, screen, player, logger, nil)
	err = h.loop(ctx, s.cfg.TickInterval())
	logger.Info("pond stopped", "ticks", h.sim.Ticks(), "resets", h.sim.Endgame().Resets())
	return err
}
