package tetris

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionRotate:
		return "rotate"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

type LineClearHandler interface {
	OnLinesCleared(rows int)
}

type LineClearHandlerFunc func(rows int)

func (f LineClearHandlerFunc) OnLinesCleared(rows int) {
	f(rows)
}

type PieceState struct {
	Type   PieceType
	X, Y   int
	Blocks []Point
}

// Cells returns the playfield cells of the piece that are on screen.
func (p PieceState) Cells() []Point {
	cells := make([]Point, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		c := Point{X: p.X + b.X, Y: p.Y + b.Y}
		if c.Y >= 0 {
			cells = append(cells, c)
		}
	}
	return cells
}

// State is a copy of everything a renderer needs for one frame.
type State struct {
	ID            string
	Width, Height int
	Cells         [][]PieceType
	Current, Next PieceState
	Level         int
	Lines         int
	Score         int
	Pieces        int
	Step          time.Duration
	Running       bool
	Over          bool
}

type Game struct {
	id               string
	source           PieceSource
	clock            Clock
	logger           *log.Logger
	lineClearHandler LineClearHandler
	width, height    int

	field                       *Field
	current, next               *Piece
	step                        time.Duration
	level, score, lines, pieces int
	running, over               bool

	timer Timer
	epoch int
	m     *sync.Mutex
}

type GameOption func(*Game)

func WithSize(width, height int) GameOption {
	if width < 4 || height < 4 {
		panic(fmt.Errorf("minimal width x height is 4x4, got %dx%d", width, height))
	}
	return func(game *Game) {
		game.width = width
		game.height = height
	}
}

func WithSource(source PieceSource) GameOption {
	return func(game *Game) {
		game.source = source
	}
}

func WithClock(clock Clock) GameOption {
	return func(game *Game) {
		game.clock = clock
	}
}

func WithLogger(logger *log.Logger) GameOption {
	return func(game *Game) {
		if logger != nil {
			game.logger = logger
		}
	}
}

// WithLineClearHandler registers a handler called with the number of rows
// after every lock that clears lines. It runs without the game lock held.
func WithLineClearHandler(handler LineClearHandler) GameOption {
	return func(game *Game) {
		game.lineClearHandler = handler
	}
}

func WithID(id string) GameOption {
	return func(game *Game) {
		game.id = id
	}
}

func NewGame(options ...GameOption) *Game {
	game := &Game{
		id:     uuid.New().String(),
		source: NewRandomSource(time.Now().UnixNano()),
		clock:  RealClock{},
		logger: log.New(io.Discard, "", 0),
		width:  10,
		height: 20,
		m:      &sync.Mutex{},
	}
	for _, opt := range options {
		opt(game)
	}

	game.field = NewField(game.width, game.height)
	game.current = game.draw()
	game.next = game.draw()
	game.step = StepInterval(0)

	return game
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Running() bool {
	g.m.Lock()
	defer g.m.Unlock()
	return g.running
}

func (g *Game) Over() bool {
	g.m.Lock()
	defer g.m.Unlock()
	return g.over
}

// Start begins or resumes play. The first gravity step comes one step
// interval later. It does nothing once the game is over.
func (g *Game) Start() {
	g.m.Lock()
	defer g.m.Unlock()

	if g.running || g.over {
		return
	}
	g.running = true
	g.logger.Printf("game %s: started at level %d", g.id, g.level)
	g.arm()
}

// Stop pauses the game. No scheduled step fires after it returns.
func (g *Game) Stop() {
	g.m.Lock()
	defer g.m.Unlock()

	if !g.running {
		return
	}
	g.running = false
	g.disarm()
	g.logger.Printf("game %s: stopped", g.id)
}

// Tick runs one gravity step, the same one the timer runs.
func (g *Game) Tick() {
	g.m.Lock()
	if !g.running {
		g.m.Unlock()
		return
	}
	cleared := g.applyTick()
	g.m.Unlock()

	g.notify(cleared)
}

// Apply proposes a player move. Moves that do not fit are dropped, as is
// everything while the game is not running.
func (g *Game) Apply(action Action) {
	g.m.Lock()
	defer g.m.Unlock()

	if !g.running {
		return
	}

	switch action {
	case ActionMoveLeft:
		g.propose(func(p *Piece) { p.X-- })
	case ActionMoveRight:
		g.propose(func(p *Piece) { p.X++ })
	case ActionSoftDrop:
		g.propose(func(p *Piece) { p.Y++ })
	case ActionRotate:
		g.propose(func(p *Piece) { p.Rotate(false) })
	}
}

func (g *Game) State() State {
	g.m.Lock()
	defer g.m.Unlock()

	return State{
		ID:      g.id,
		Width:   g.width,
		Height:  g.height,
		Cells:   g.field.Rows(),
		Current: pieceState(g.current),
		Next:    pieceState(g.next),
		Level:   g.level,
		Lines:   g.lines,
		Score:   g.score,
		Pieces:  g.pieces,
		Step:    g.step,
		Running: g.running,
		Over:    g.over,
	}
}

func pieceState(p *Piece) PieceState {
	return PieceState{
		Type:   p.Type,
		X:      p.X,
		Y:      p.Y,
		Blocks: p.Blocks(),
	}
}

// propose applies mutate to a copy of the current piece and keeps the copy
// only if it fits. It reports whether the move was taken.
func (g *Game) propose(mutate func(p *Piece)) bool {
	candidate := g.current.Clone()
	mutate(candidate)
	if !g.field.Check(candidate) {
		return false
	}
	g.current = candidate
	return true
}

func (g *Game) applyTick() int {
	if g.propose(func(p *Piece) { p.Y++ }) {
		return 0
	}
	return g.lockCurrent()
}

func (g *Game) lockCurrent() int {
	g.field.Commit(g.current)
	g.pieces++

	cleared := g.field.ClearFullRows()
	if cleared > 0 {
		g.score += LineScore(g.level, cleared)
		g.lines += cleared
		g.logger.Printf("game %s: cleared %d rows, score %d", g.id, cleared, g.score)
	}
	if level := LevelFor(g.lines); level != g.level {
		g.logger.Printf("game %s: level %d", g.id, level)
		g.level = level
	}
	g.step = StepInterval(g.level)

	g.current = g.next
	g.next = g.draw()
	if !g.field.Check(g.current) || g.isStackAtTop() {
		g.over = true
		g.running = false
		g.disarm()
		g.logger.Printf("game %s: game over, score %d, lines %d, pieces %d", g.id, g.score, g.lines, g.pieces)
	}

	return cleared
}

func (g *Game) isStackAtTop() bool {
	for _, c := range g.field.Row(0) {
		if c != PieceNone {
			return true
		}
	}
	return false
}

func (g *Game) draw() *Piece {
	return NewPiece(g.source.Next(), g.width)
}

func (g *Game) arm() {
	g.epoch++
	epoch := g.epoch
	g.timer = g.clock.AfterFunc(g.step, func() {
		g.onTimer(epoch)
	})
}

func (g *Game) disarm() {
	g.epoch++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

// onTimer runs a scheduled step and re-arms with the step interval current
// after it, so a level up only changes the period from the next step on.
func (g *Game) onTimer(epoch int) {
	g.m.Lock()
	if !g.running || epoch != g.epoch {
		g.m.Unlock()
		return
	}
	cleared := g.applyTick()
	if g.running {
		g.arm()
	}
	g.m.Unlock()

	g.notify(cleared)
}

func (g *Game) notify(cleared int) {
	if cleared > 0 && g.lineClearHandler != nil {
		g.lineClearHandler.OnLinesCleared(cleared)
	}
}
