package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tomz197/vectoroids/internal/loop"
	"github.com/tomz197/vectoroids/internal/loop/config"
	"github.com/tomz197/vectoroids/internal/object"
)

// styles are the overlay text styles for one terminal. Each SSH session gets
// its own renderer so color output never depends on the host's stdout.
type styles struct {
	title  lipgloss.Style
	text   lipgloss.Style
	hint   lipgloss.Style
	accent lipgloss.Style
	danger lipgloss.Style
	hud    lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)

	vector := lipgloss.Color(object.ColorVector.Hex())
	thrust := lipgloss.Color(object.ColorThrust.Hex())
	danger := lipgloss.Color(object.ColorDanger.Hex())

	return styles{
		title: r.NewStyle().Bold(true).Foreground(vector).
			Border(lipgloss.DoubleBorder()).BorderForeground(vector).Padding(0, 3),
		text:   r.NewStyle().Foreground(lipgloss.Color("#d0d0d0")),
		hint:   r.NewStyle().Faint(true),
		accent: r.NewStyle().Bold(true).Foreground(thrust),
		danger: r.NewStyle().Bold(true).Foreground(danger),
		hud:    r.NewStyle().Bold(true).Foreground(vector),
	}
}

// drawFrame draws the current frame.
func (c *Client) drawFrame(now time.Time) error {
	session := c.game.Session()

	// On status or overlay transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	if c.state.overlayChanged(session.Status) {
		c.chunkWriter.WriteString("\033[0m\033[H\033[2J")
		c.canvas.ForceRedraw()
	}

	c.game.SnapshotInto(&c.snapshot)
	c.scene.Draw(c.canvas, &c.snapshot)

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(session, now)

	return c.chunkWriter.Flush()
}

// drawUI draws the game UI overlay.
func (c *Client) drawUI(session loop.Session, now time.Time) {
	centerX := c.canvas.TerminalWidth() / 2
	centerY := c.canvas.TerminalHeight() / 2

	if c.state.shutdown {
		c.drawShutdownScreen(centerX, centerY, now)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY, now)
		return
	}

	switch session.Status {
	case loop.StatusMenu:
		c.drawStartScreen(centerX, centerY, now)
	case loop.StatusPlaying:
		c.drawPlayingHUD(session)
	case loop.StatusGameOver:
		c.drawPlayingHUD(session)
		c.drawGameOverScreen(centerX, centerY, session, now)
	}
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int, now time.Time) {
	st := c.styles
	lines := []string{
		st.title.Render("V E C T O R O I D S"),
		"",
		st.text.Render("~ Asteroids in your terminal ~"),
		"",
		st.accent.Render("Controls"),
		st.text.Render("W / Up  . . . . Thrust"),
		st.text.Render("A D / < >  . .  Rotate"),
		st.text.Render("SPACE  . . . . . Shoot"),
		st.text.Render("Q  . . . . . . .  Quit"),
		"",
		blink(now, st.hud.Render(">>  Press SPACE to Start  <<")),
	}
	c.writeBlock(centerX, centerY, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen (since we no longer clear every frame).
func (c *Client) drawPlayingHUD(session loop.Session) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	st := c.styles

	scoreText := fmt.Sprintf("Score: %-8d", session.Score)
	c.writeAt(2, 1, st.hud.Render(scoreText), len(scoreText))

	levelText := fmt.Sprintf("Level: %-3d", session.Level)
	c.writeAt(termWidth/2-len(levelText)/2, 1, st.hud.Render(levelText), len(levelText))

	livesText := fmt.Sprintf("Lives: %-3d", session.Lives)
	c.writeAt(termWidth-len(livesText)-1, 1, st.hud.Render(livesText), len(livesText))

	if at, ok := c.game.RespawnPending(); ok && session.Status == loop.StatusPlaying {
		secs := float64(at-c.game.Now()) / config.TickRate
		msg := fmt.Sprintf("Get ready %.1f", secs)
		c.writeAt(termWidth/2-len(msg)/2, termHeight/2+4, st.accent.Render(msg), len(msg))
	}

	if c.server != nil {
		c.drawPlayers(termWidth, termHeight)
	}
}

// drawPlayers shows the number of connected players and the best score.
func (c *Client) drawPlayers(termWidth, termHeight int) {
	players := c.server.Players()
	text := fmt.Sprintf("Players: %-4d", len(players))
	c.writeAt(termWidth-len(text)-1, termHeight, c.styles.hint.Render(text), len(text))

	if len(players) > 0 && players[0].Score > 0 {
		best := fmt.Sprintf("Best: %s %d", players[0].Username, players[0].Score)
		c.writeAt(2, termHeight, c.styles.hint.Render(best), lipgloss.Width(best))
	}
}

// drawGameOverScreen draws the final score and the restart prompt.
func (c *Client) drawGameOverScreen(centerX, centerY int, session loop.Session, now time.Time) {
	st := c.styles
	prompt := ""
	if c.state.restartReady(now) {
		prompt = blink(now, st.hud.Render(">>  Press SPACE to Restart  <<"))
	}
	lines := []string{
		st.danger.Render("G A M E   O V E R"),
		"",
		st.text.Render(fmt.Sprintf("Score: %d", session.Score)),
		st.text.Render(fmt.Sprintf("Level reached: %d", session.Level)),
		"",
		prompt,
		st.hint.Render("Q to quit"),
	}
	c.writeBlock(centerX, centerY, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int, now time.Time) {
	st := c.styles
	remaining := int(config.InactivityDisconnectUser - now.Sub(c.state.lastInput).Seconds())
	lines := []string{
		st.danger.Render("INACTIVITY WARNING"),
		"",
		st.text.Render(fmt.Sprintf(
			"You have been inactive for too long. You will be disconnected in %d seconds.", max(remaining, 0))),
		"",
		st.hint.Render("Press any key to continue"),
	}
	c.writeBlock(centerX, centerY, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int, now time.Time) {
	st := c.styles
	remaining := int(c.state.shutdownAt.Sub(now).Seconds()) + 1
	lines := []string{
		st.danger.Render("SERVER SHUTTING DOWN"),
		"",
		st.text.Render("The server is restarting for maintenance."),
		st.text.Render("Please reconnect in a moment."),
		"",
		st.accent.Render(fmt.Sprintf("Disconnecting in %d seconds...", max(remaining, 0))),
		"",
		st.hint.Render("Press Q to disconnect now"),
	}
	c.writeBlock(centerX, centerY, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// writeBlock writes a multi-line block centered on (centerX, centerY).
func (c *Client) writeBlock(centerX, centerY int, block string) {
	lines := strings.Split(block, "\n")
	width := lipgloss.Width(block)
	col := max(centerX-width/2, 1)
	row := centerY - len(lines)/2
	for i, line := range lines {
		c.writeAt(col, row+i, line, width)
	}
}

// writeAt writes styled text at a 1-based canvas position and marks the
// cells it covers so the canvas repaints them next frame.
func (c *Client) writeAt(col, row int, text string, width int) {
	if row < 1 || row > c.canvas.TerminalHeight() || col < 1 {
		return
	}
	c.chunkWriter.WriteAt(col, row, text)
	c.canvas.MarkTextDirty(col, row, width)
}

// blink hides s on alternating 600ms phases.
func blink(now time.Time, s string) string {
	if now.UnixMilli()/600%2 == 0 {
		return s
	}
	return ""
}
