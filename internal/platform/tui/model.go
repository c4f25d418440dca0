package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lunarisgames/rotagems/internal/config"
	"github.com/lunarisgames/rotagems/internal/core"
	"github.com/lunarisgames/rotagems/internal/engine"
	"github.com/lunarisgames/rotagems/internal/storage"
)

// HUD flash durations in ticks, scaled from the frame rate at startup.
const (
	deltaFlashSecs  = 1.5
	rotateFlashSecs = 0.8
)

// Model is the Bubble Tea model for one play session.
type Model struct {
	level  config.LevelConfig
	board  *engine.Board
	store  *storage.Store
	screen *core.Screen
	keys   *KeyMapper
	fps    int

	cursor   engine.Pos
	selected *engine.Pos

	paused   bool
	quitting bool
	runSaved bool

	ticks     int // session ticks, for run duration
	highScore int
	lastDelta int
	deltaTTL  int
	rotateTTL int
}

// NewModel creates a play model for the given level. A zero seed picks a
// time-based one.
func NewModel(level config.LevelConfig, store *storage.Store, seed int64, fps, width, height int) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ecfg, err := level.ToEngine(seed)
	if err != nil {
		return Model{}, err
	}
	board, err := engine.New(ecfg)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		level:  level,
		board:  board,
		store:  store,
		screen: core.NewScreen(width, height),
		keys:   NewKeyMapper(),
		fps:    fps,
		cursor: engine.P(board.Width()/2, board.Height()/2),
	}
	if store != nil {
		if high, err := store.HighScore(level.Name); err == nil {
			m.highScore = high
		}
	}
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp:
		m.moveCursor(0, -1)
	case core.ActionDown:
		m.moveCursor(0, 1)
	case core.ActionLeft:
		m.moveCursor(-1, 0)
	case core.ActionRight:
		m.moveCursor(1, 0)
	case core.ActionConfirm:
		if !m.paused {
			m.confirm()
		}
	case core.ActionCancel:
		m.selected = nil
	case core.ActionPause:
		m.paused = !m.paused
	case core.ActionRestart:
		m.restart()
	}
	return m, nil
}

// moveCursor shifts the cursor, clamped to the board.
func (m *Model) moveCursor(dx, dy int) {
	m.cursor = engine.P(
		core.Clamp(m.cursor.X+dx, 0, m.board.Width()-1),
		core.Clamp(m.cursor.Y+dy, 0, m.board.Height()-1),
	)
}

// confirm selects the cursor cell or attempts the pending swap.
func (m *Model) confirm() {
	if m.selected == nil {
		m.board.Select(m.cursor)
		sel := m.cursor
		m.selected = &sel
		return
	}
	if *m.selected == m.cursor {
		m.selected = nil
		return
	}
	events := m.board.RequestSwap(*m.selected, m.cursor)
	m.selected = nil
	m.consume(events)
}

// restart starts a fresh session on a new seed, saving the current run.
func (m *Model) restart() {
	m.saveRun()
	m.board.Reset(time.Now().UnixNano())
	m.selected = nil
	m.paused = false
	m.runSaved = false
	m.ticks = 0
	m.lastDelta = 0
	m.deltaTTL = 0
	m.rotateTTL = 0
}

// handleTick advances board time by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if !m.paused {
		m.ticks++
		m.consume(m.board.AdvanceTime(1.0 / float64(m.fps)))
		if m.deltaTTL > 0 {
			m.deltaTTL--
		}
		if m.rotateTTL > 0 {
			m.rotateTTL--
		}
	}
	return m, tickCmd(m.fps)
}

// consume folds board events into the HUD state.
func (m *Model) consume(events []engine.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case engine.ScoreChanged:
			if e.Delta > 0 {
				m.lastDelta = e.Delta
				m.deltaTTL = int(deltaFlashSecs * float64(m.fps))
			}
			if e.Score > m.highScore {
				m.highScore = e.Score
			}
		case engine.RotationStarted:
			m.rotateTTL = int(rotateFlashSecs * float64(m.fps))
		}
	}
}

// saveRun persists the session once, best effort.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil || m.board.Score() == 0 {
		return
	}
	stats := m.board.Stats()
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveRun(storage.Run{
		Level:        m.level.Name,
		Score:        m.board.Score(),
		MaxCombo:     stats.MaxCombo,
		Cascades:     stats.Cascades,
		Rotations:    stats.Rotations,
		DurationSecs: m.ticks / m.fps,
	})
	m.runSaved = true
}

// Board cell stride on screen: glyph plus a gap column.
const cellStride = 2

// boardOrigin is the top-left screen position of the grid.
var boardOrigin = engine.P(3, 2)

// View renders the board, HUD and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.renderBoard()
	m.renderHUD()
	return RenderScreen(m.screen)
}

// renderBoard draws the framed grid with cursor and selection markers.
func (m *Model) renderBoard() {
	w, h := m.board.Width(), m.board.Height()
	frame := core.NewRect(boardOrigin.X-2, boardOrigin.Y-1, w*cellStride+3, h+2)
	m.screen.DrawBox(frame)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := boardOrigin.X + x*cellStride
			sy := boardOrigin.Y + y
			if sym, ok := m.board.At(engine.P(x, y)); ok {
				m.screen.SetCell(sx, sy, symbolCell(sym))
			}
		}
	}

	if m.selected != nil {
		m.markCell(*m.selected, '(', ')', core.ColorBrightYellow)
	}
	m.markCell(m.cursor, '[', ']', core.ColorBrightWhite)
}

// markCell draws bracket markers around a board cell.
func (m *Model) markCell(p engine.Pos, left, right rune, color core.Color) {
	sx := boardOrigin.X + p.X*cellStride
	sy := boardOrigin.Y + p.Y
	m.screen.SetCell(sx-1, sy, core.Cell{Rune: left, Color: color})
	m.screen.SetCell(sx+1, sy, core.Cell{Rune: right, Color: color})
}

// renderHUD draws the score panel beside the board and the help line.
func (m *Model) renderHUD() {
	hx := boardOrigin.X + m.board.Width()*cellStride + 4
	hy := boardOrigin.Y

	m.screen.DrawTextColored(hx, hy, m.level.Name, core.ColorBrightCyan)
	m.screen.DrawText(hx, hy+2, fmt.Sprintf("Score  %d", m.board.Score()))
	m.screen.DrawText(hx, hy+3, fmt.Sprintf("Best   %d", m.highScore))
	m.screen.DrawText(hx, hy+4, fmt.Sprintf("Combo  x%d", m.board.Combo()))
	m.screen.DrawText(hx, hy+5, fmt.Sprintf("Spin   %.1fs", m.board.RotationRemaining()))

	if m.deltaTTL > 0 {
		m.screen.DrawTextColored(hx, hy+7, fmt.Sprintf("+%d", m.lastDelta), core.ColorBrightGreen)
	}
	if m.rotateTTL > 0 {
		m.screen.DrawTextColored(hx, hy+8, "SPIN!", core.ColorBrightMagenta)
	}
	if m.paused {
		m.screen.DrawTextColored(hx, hy+8, "PAUSED", core.ColorBrightYellow)
	}

	help := "move: arrows/hjkl  swap: enter  cancel: esc  pause: p  restart: r  quit: q"
	m.screen.DrawTextColored(1, m.screen.Height()-1, help, core.ColorGray)
}

// Run starts the Bubble Tea program for a local play session.
func Run(level config.LevelConfig, store *storage.Store, seed int64, fps, width, height int) error {
	model, err := NewModel(level, store, seed, fps, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
