package server

import (
	"testing"
	"time"

	"github.com/tomz197/vectoroids/internal/loop"
)

func TestRegisterAndUnregister(t *testing.T) {
	s := NewServer(nil)
	a := s.RegisterClient("alice")
	b := s.RegisterClient("bob")
	if a.ID == b.ID {
		t.Fatalf("duplicate client id %d", a.ID)
	}
	if n := s.PlayerCount(); n != 2 {
		t.Fatalf("PlayerCount = %d, want 2", n)
	}

	s.UnregisterClient(a.ID)
	s.UnregisterClient(a.ID) // second call is a no-op
	if n := s.PlayerCount(); n != 1 {
		t.Fatalf("PlayerCount = %d, want 1", n)
	}
}

func TestUsernameTruncated(t *testing.T) {
	s := NewServer(nil)
	h := s.RegisterClient("a-very-long-username-indeed")
	if got := len([]rune(h.Username)); got != 16 {
		t.Fatalf("username length = %d, want 16", got)
	}
}

func TestPlayersSortedByScore(t *testing.T) {
	s := NewServer(nil)
	a := s.RegisterClient("a")
	b := s.RegisterClient("b")
	c := s.RegisterClient("c")
	s.ReportSession(a.ID, loop.Session{Score: 100, Level: 1, Status: loop.StatusPlaying})
	s.ReportSession(b.ID, loop.Session{Score: 500, Level: 3, Status: loop.StatusGameOver})
	s.ReportSession(c.ID, loop.Session{Score: 100, Level: 2, Status: loop.StatusPlaying})
	s.ReportSession(999, loop.Session{Score: 1e6}) // unknown client ignored

	players := s.Players()
	want := []string{"b", "a", "c"}
	if len(players) != len(want) {
		t.Fatalf("players = %+v", players)
	}
	for i, name := range want {
		if players[i].Username != name {
			t.Fatalf("players[%d] = %q, want %q", i, players[i].Username, name)
		}
	}
	if players[0].Status != loop.StatusGameOver || players[0].Level != 3 {
		t.Fatalf("players[0] = %+v", players[0])
	}
}

func TestShutdownNotifiesClients(t *testing.T) {
	s := NewServer(nil)
	h := s.RegisterClient("alice")

	done := make(chan struct{})
	go func() {
		s.Shutdown(5 * time.Second)
		close(done)
	}()

	select {
	case ev := <-h.EventsCh:
		if ev.Type != EventServerShutdown {
			t.Fatalf("event = %v, want shutdown", ev.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("client never notified")
	}

	s.UnregisterClient(h.ID)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return after last client left")
	}
}

func TestShutdownTimesOut(t *testing.T) {
	s := NewServer(nil)
	s.RegisterClient("stuck")
	start := time.Now()
	s.Shutdown(50 * time.Millisecond)
	if time.Since(start) > time.Second {
		t.Fatal("Shutdown ignored its timeout")
	}
}
