package client

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/vectoroids/internal/input"
	"github.com/tomz197/vectoroids/internal/loop"
	"github.com/tomz197/vectoroids/internal/loop/server"
)

type recordingSink struct {
	resumed    int
	shots      int
	thrusts    int
	explosions []loop.ExplosionSize
}

func (s *recordingSink) Resume() { s.resumed++ }
func (s *recordingSink) Shoot()  { s.shots++ }
func (s *recordingSink) Thrust() { s.thrusts++ }
func (s *recordingSink) Explosion(size loop.ExplosionSize) {
	s.explosions = append(s.explosions, size)
}

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(t *testing.T, gs server.GameServer) (*Client, *bytes.Buffer, *recordingSink) {
	t.Helper()
	var out bytes.Buffer
	sink := &recordingSink{}
	c := NewClient(gs, strings.NewReader(""), &out, ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
		Username:     "alice",
		Audio:        sink,
		Seed:         1,
	})
	return c, &out, sink
}

var t0 = time.UnixMilli(0)

func TestStartGameFromMenu(t *testing.T) {
	srv := server.NewServer(nil)
	c, _, sink := newTestClient(t, srv)

	c.update(input.Input{}, t0)
	if got := c.Game().Session().Status; got != loop.StatusMenu {
		t.Fatalf("status = %v, want menu", got)
	}

	c.update(input.Input{Start: true}, t0)
	if got := c.Game().Session().Status; got != loop.StatusPlaying {
		t.Fatalf("status = %v, want playing", got)
	}
	if sink.resumed != 1 {
		t.Fatalf("audio resumed %d times, want 1", sink.resumed)
	}
	players := srv.Players()
	if len(players) != 1 || players[0].Status != loop.StatusPlaying || players[0].Username != "alice" {
		t.Fatalf("players = %+v", players)
	}
}

func TestPlayingDispatchesAudio(t *testing.T) {
	c, _, sink := newTestClient(t, nil)
	c.update(input.Input{Start: true}, t0)

	c.update(input.Input{Controls: input.Controls{Fire: true}}, t0)
	if sink.shots != 1 {
		t.Fatalf("shots = %d, want 1", sink.shots)
	}
	if c.Game().Now() != 1 {
		t.Fatalf("game advanced to tick %d, want 1", c.Game().Now())
	}
}

func TestQuitStopsClient(t *testing.T) {
	c, _, _ := newTestClient(t, nil)
	c.update(input.Input{Quit: true}, t0)
	if c.state.Running {
		t.Fatal("client still running after quit")
	}
}

func TestServerShutdown(t *testing.T) {
	srv := server.NewServer(nil)
	c, _, _ := newTestClient(t, srv)
	c.update(input.Input{Start: true}, t0)

	c.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.update(input.Input{}, t0)
	if !c.state.shutdown {
		t.Fatal("shutdown event ignored")
	}

	tick := c.Game().Now()
	c.update(input.Input{Controls: input.Controls{Thrust: true}}, t0.Add(time.Second))
	if c.Game().Now() != tick {
		t.Fatal("game kept running during shutdown")
	}
	if !c.state.Running {
		t.Fatal("client left before the shutdown countdown")
	}

	c.update(input.Input{}, t0.Add(11*time.Second))
	if c.state.Running {
		t.Fatal("client still running after the shutdown countdown")
	}
}

func TestInactivity(t *testing.T) {
	srv := server.NewServer(nil)
	c, _, _ := newTestClient(t, srv)
	c.state.lastInput = t0

	c.update(input.Input{}, t0.Add(91*time.Second))
	if !c.state.isInactive {
		t.Fatal("no inactivity warning after 91s")
	}

	c.update(input.Input{Active: true}, t0.Add(92*time.Second))
	if c.state.isInactive {
		t.Fatal("warning not cleared by activity")
	}

	c.update(input.Input{}, t0.Add(92*time.Second+121*time.Second))
	if c.state.Running {
		t.Fatal("idle client not disconnected")
	}
}

func TestLocalClientNeverIdles(t *testing.T) {
	c, _, _ := newTestClient(t, nil)
	c.state.lastInput = t0
	c.update(input.Input{}, t0.Add(time.Hour))
	if !c.state.Running || c.state.isInactive {
		t.Fatal("local play timed out")
	}
}

func TestRestartDelay(t *testing.T) {
	s := NewClientState(t0)
	s.gameOverAt = t0
	tests := []struct {
		after time.Duration
		want  bool
	}{
		{0, false},
		{restartDelay - time.Millisecond, false},
		{restartDelay, true},
	}
	for _, tt := range tests {
		if got := s.restartReady(t0.Add(tt.after)); got != tt.want {
			t.Errorf("restartReady(+%v) = %v, want %v", tt.after, got, tt.want)
		}
	}
}

func TestDrawFrame(t *testing.T) {
	srv := server.NewServer(nil)
	c, out, _ := newTestClient(t, srv)

	if err := c.drawFrame(t0); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Press SPACE to Start") {
		t.Fatalf("menu frame missing start prompt: %q", out.String())
	}

	out.Reset()
	c.update(input.Input{Start: true}, t0)
	if err := c.drawFrame(t0); err != nil {
		t.Fatal(err)
	}
	frame := out.String()
	for _, want := range []string{"Score: 0", "Lives: 3", "Level: 1", "Players: 1", "\033[2J"} {
		if !strings.Contains(frame, want) {
			t.Errorf("playing frame missing %q", want)
		}
	}
}

func TestOverlayChanged(t *testing.T) {
	s := NewClientState(t0)
	if !s.overlayChanged(loop.StatusMenu) {
		t.Fatal("first frame should clear the screen")
	}
	if s.overlayChanged(loop.StatusMenu) {
		t.Fatal("unchanged overlay cleared the screen")
	}
	s.isInactive = true
	if !s.overlayChanged(loop.StatusMenu) {
		t.Fatal("inactivity warning did not clear the screen")
	}
	if !s.overlayChanged(loop.StatusPlaying) {
		t.Fatal("status change did not clear the screen")
	}
}

func TestRunUnregistersOnCancel(t *testing.T) {
	srv := server.NewServer(nil)
	c, _, _ := newTestClient(t, srv)
	if srv.PlayerCount() != 1 {
		t.Fatalf("PlayerCount = %d, want 1", srv.PlayerCount())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if srv.PlayerCount() != 0 {
		t.Fatal("client still registered after Run")
	}
	if _, pending := c.Game().RespawnPending(); pending {
		t.Fatal("respawn pending after stop")
	}
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	c, _, _ := newTestClient(t, nil)
	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the reader closed")
	}
}
