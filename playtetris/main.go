package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/JoelOtter/termloop"
	"github.com/tetromino/tetris"
)

func main() {
	width := flag.Int("width", 10, "field width")
	height := flag.Int("height", 20, "field height")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the piece sequence")
	logPath := flag.String("log", "", "append the game log to this file")
	flag.Parse()

	if *width < 4 || *height < 4 {
		log.Fatalf("minimal width x height is 4x4, got %dx%d", *width, *height)
	}

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("cannot open log file: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	game := termloop.NewGame()
	level := termloop.NewBaseLevel(termloop.Cell{})
	level.AddEntity(NewBoardPlayer(0, 0, *width, *height, *seed, logger))
	game.Screen().SetLevel(level)
	game.Start()
}

var pieceColors = map[tetris.PieceType]termloop.Attr{
	tetris.PieceI: termloop.ColorCyan,
	tetris.PieceO: termloop.ColorYellow,
	tetris.PieceL: termloop.ColorWhite,
	tetris.PieceJ: termloop.ColorBlue,
	tetris.PieceT: termloop.ColorMagenta,
	tetris.PieceS: termloop.ColorGreen,
	tetris.PieceZ: termloop.ColorRed,
}

var clearMessages = map[int]string{
	1: "Single",
	2: "Double",
	3: "Triple",
	4: "Tetris!",
}

const messageDuration = 2 * time.Second

type boardPlayer struct {
	game                *tetris.Game
	clock               *tetris.ManualClock
	x, y, width, height int

	message    string
	messageAge time.Duration

	levelText, linesText, scoreText, piecesText *termloop.Text
	idText, messageText                         *termloop.Text
}

func NewBoardPlayer(x, y, width, height int, seed int64, logger *log.Logger) *boardPlayer {
	hudX := x + width + 3
	b := &boardPlayer{
		clock:  tetris.NewManualClock(),
		x:      x,
		y:      y,
		width:  width,
		height: height,

		levelText:   termloop.NewText(hudX, y+7, "", termloop.ColorWhite, termloop.ColorDefault),
		linesText:   termloop.NewText(hudX, y+8, "", termloop.ColorWhite, termloop.ColorDefault),
		scoreText:   termloop.NewText(hudX, y+9, "", termloop.ColorWhite, termloop.ColorDefault),
		piecesText:  termloop.NewText(hudX, y+10, "", termloop.ColorWhite, termloop.ColorDefault),
		idText:      termloop.NewText(hudX, y+12, "", termloop.ColorWhite, termloop.ColorDefault),
		messageText: termloop.NewText(hudX, y+14, "", termloop.ColorYellow, termloop.ColorDefault),
	}

	// The clock only moves from Draw, so every game mutation happens on the
	// termloop goroutine.
	b.game = tetris.NewGame(
		tetris.WithSize(width, height),
		tetris.WithClock(b.clock),
		tetris.WithSource(tetris.NewRandomSource(seed)),
		tetris.WithLogger(logger),
		tetris.WithLineClearHandler(tetris.LineClearHandlerFunc(func(rows int) {
			b.message = clearMessages[rows]
			b.messageAge = 0
		})),
	)
	b.game.Start()

	return b
}

func (b *boardPlayer) Tick(ev termloop.Event) {
	if ev.Type != termloop.EventKey {
		return
	}

	switch ev.Key {
	case termloop.KeyArrowLeft:
		b.game.Apply(tetris.ActionMoveLeft)
	case termloop.KeyArrowRight:
		b.game.Apply(tetris.ActionMoveRight)
	case termloop.KeyArrowDown:
		b.game.Apply(tetris.ActionSoftDrop)
	case termloop.KeyArrowUp:
		b.game.Apply(tetris.ActionRotate)
	}

	switch ev.Ch {
	case 'a', 'A':
		b.game.Apply(tetris.ActionMoveLeft)
	case 'd', 'D':
		b.game.Apply(tetris.ActionMoveRight)
	case 's', 'S':
		b.game.Apply(tetris.ActionSoftDrop)
	case 'w', 'W':
		b.game.Apply(tetris.ActionRotate)
	case 'p', 'P':
		if b.game.Running() {
			b.game.Stop()
		} else {
			b.game.Start()
		}
	}
}

func (b *boardPlayer) Draw(s *termloop.Screen) {
	dt := time.Duration(s.TimeDelta() * float64(time.Second))
	b.clock.Advance(dt)
	b.messageAge += dt

	state := b.game.State()

	b.drawBox(s, b.x, b.y, b.width+2, b.height+2)
	b.drawBox(s, b.x+b.width+3, b.y, 6, 6)

	for y, row := range state.Cells {
		for x, cell := range row {
			ch := rune(0)
			fg := termloop.ColorWhite
			if cell != tetris.PieceNone {
				ch = '#'
				fg = pieceColors[cell]
			}
			s.RenderCell(b.x+1+x, b.y+1+y, &termloop.Cell{Fg: fg, Bg: termloop.ColorBlack, Ch: ch})
		}
	}

	if !state.Over {
		for _, c := range state.Current.Cells() {
			s.RenderCell(b.x+1+c.X, b.y+1+c.Y, &termloop.Cell{
				Fg: pieceColors[state.Current.Type],
				Bg: termloop.ColorBlack,
				Ch: '@',
			})
		}
	}

	for _, c := range state.Next.Blocks {
		s.RenderCell(b.x+b.width+4+c.X, b.y+1+c.Y, &termloop.Cell{
			Fg: pieceColors[state.Next.Type],
			Bg: termloop.ColorBlack,
			Ch: '@',
		})
	}

	b.levelText.SetText(fmt.Sprintf("Level: %d", state.Level))
	b.linesText.SetText(fmt.Sprintf("Lines: %d", state.Lines))
	b.scoreText.SetText(fmt.Sprintf("Score: %d", state.Score))
	b.piecesText.SetText(fmt.Sprintf("Tetrominos: %d", state.Pieces))
	b.idText.SetText(fmt.Sprintf("Game: %.8s", state.ID))

	switch {
	case state.Over:
		b.messageText.SetText("Game Over!")
	case !state.Running:
		b.messageText.SetText("Paused")
	case b.messageAge < messageDuration:
		b.messageText.SetText(b.message)
	default:
		b.messageText.SetText("")
	}

	for _, text := range []*termloop.Text{b.levelText, b.linesText, b.scoreText, b.piecesText, b.idText, b.messageText} {
		text.Draw(s)
	}
}

func (b *boardPlayer) drawBox(s *termloop.Screen, x, y, width, height int) {
	border := &termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack, Ch: '+'}
	for i := 0; i < width; i++ {
		s.RenderCell(x+i, y, border)
		s.RenderCell(x+i, y+height-1, border)
	}
	for i := 0; i < height; i++ {
		s.RenderCell(x, y+i, border)
		s.RenderCell(x+width-1, y+i, border)
	}
}
