// Package client runs one player's game: it samples the keyboard, advances
// the simulation, plays sound cues and renders frames to a terminal.
package client

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/vectoroids/internal/audio"
	"github.com/tomz197/vectoroids/internal/draw"
	"github.com/tomz197/vectoroids/internal/input"
	"github.com/tomz197/vectoroids/internal/loop"
	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/loop/server"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
	"github.com/tomz197/vectoroids/internal/render"
)

// Client handles simulation, rendering and input for a single connection.
type Client struct {
	server       server.GameServer    // nil for local play
	handle       *server.ClientHandle // nil for local play
	game         *loop.Game
	scene        render.Scene
	snapshot     loop.Snapshot
	sink         audio.Sink
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	styles       styles
	logger       *log.Logger
	termSizeFunc draw.TermSizeFunc
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Audio        audio.Sink  // nil plays nothing
	Seed         uint64      // 0 seeds from the clock
	Logger       *log.Logger // nil discards
}

// NewClient creates a client with its own game. When gs is not nil the
// client registers with it, reports its score and obeys shutdown and
// inactivity rules; a nil gs is local single-player.
func NewClient(gs server.GameServer, r io.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	sink := opts.Audio
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var handle *server.ClientHandle
	if gs != nil {
		handle = gs.RegisterClient(opts.Username)
		logger = logger.With("client", handle.ID)
	}

	screen := object.Screen{Width: config.WorldWidth, Height: config.WorldHeight}
	game := loop.NewGame(screen, physics.NewRand(opts.Seed), loop.WithLogger(logger))

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		termWidth, termHeight = 80, 24
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.WorldWidth, config.WorldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       handle,
		game:         game,
		sink:         sink,
		state:        NewClientState(time.Now()),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		styles:       newStyles(w),
		logger:       logger,
		termSizeFunc: termSizeFunc,
	}
}

// Game returns the client's simulation.
func (c *Client) Game() *loop.Game {
	return c.game
}

// Run starts the client loop. Blocks until the player quits, the input ends,
// the server shuts the session down or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	defer c.close()

	for c.state.Running {
		if ctx.Err() != nil {
			break
		}
		frameStart := time.Now()

		c.updateScreen()
		c.update(input.ReadInput(c.inputStream), frameStart)

		if err := c.drawFrame(frameStart); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			select {
			case <-ctx.Done():
			case <-time.After(config.ClientTargetFrameTime - elapsed):
			}
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// close stops reading input, stops the game and leaves the server.
func (c *Client) close() {
	c.inputStream.Close()
	c.game.Stop()
	s := c.game.Session()
	c.logger.Info("session ended", "score", s.Score, "level", s.Level, "status", s.Status)
	if c.server != nil {
		c.server.UnregisterClient(c.handle.ID)
	}
}

// update applies one frame of input at wall time now.
func (c *Client) update(in input.Input, now time.Time) {
	c.state.Input = in
	c.trackActivity(in, now)
	if in.Quit {
		c.state.Running = false
		return
	}

	c.processServerEvents(now)
	if c.state.shutdown {
		if !now.Before(c.state.shutdownAt) {
			c.state.Running = false
		}
		return
	}

	switch c.game.Session().Status {
	case loop.StatusMenu:
		if input.StartPressed(in) {
			c.startGame()
		}
	case loop.StatusGameOver:
		if input.StartPressed(in) && c.state.restartReady(now) {
			c.startGame()
		}
	case loop.StatusPlaying:
		audio.Dispatch(c.sink, c.game.Advance(in.Controls))
	}

	status := c.game.Session().Status
	if status == loop.StatusGameOver && c.state.status != loop.StatusGameOver {
		c.state.gameOverAt = now
	}
	c.state.status = status
	c.reportSession()
}

// trackActivity raises the inactivity warning and ends idle remote sessions.
// Local play never times out.
func (c *Client) trackActivity(in input.Input, now time.Time) {
	if c.server == nil {
		return
	}
	idle := now.Sub(c.state.lastInput).Seconds()
	switch {
	case in.Active:
		c.state.lastInput = now
		c.state.isInactive = false
	case idle > config.InactivityDisconnectUser:
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	case idle > config.InactivityWarnUser:
		c.state.isInactive = true
	}
}

// processServerEvents handles events from the server.
func (c *Client) processServerEvents(now time.Time) {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				if !c.state.shutdown {
					c.state.shutdown = true
					c.state.shutdownAt = now.Add(time.Duration(config.ShutdownDisplaySeconds * float64(time.Second)))
					c.game.Stop()
				}
			}
		default:
			return
		}
	}
}

// startGame starts or restarts the game.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.sink.Resume()
	c.game.StartOrRestart()
}

// reportSession tells the server about score, level or status changes.
func (c *Client) reportSession() {
	if c.server == nil {
		return
	}
	s := c.game.Session()
	if s == c.state.reported {
		return
	}
	c.state.reported = s
	c.server.ReportSession(c.handle.ID, s)
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}
