package ui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/rules"
	"github.com/hailam/chessview/internal/storage"
	"github.com/hailam/chessview/internal/view"
	"go.uber.org/zap"
)

// UI Constants
const (
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	TrayHeight   = 72
	ScreenWidth  = BoardSize
	ScreenHeight = BoardSize + TrayHeight
)

// Options configures a Game.
type Options struct {
	FEN            string // starting position; empty for the standard one
	Theme          *view.Theme
	Prefs          *storage.Preferences
	Store          *storage.Storage // may be nil; preferences are then not saved
	FlatLegalMoves bool
	Logger         *zap.Logger
}

// Game implements ebiten.Game.
type Game struct {
	rules    *rules.Game
	view     *view.BoardView
	sprites  *SpriteManager
	tray     *CapturedTray
	renderer *Renderer
	input    *InputHandler
	toasts   *ToastManager
	audio    *AudioManager

	fen   string
	prefs *storage.Preferences
	store *storage.Storage
	log   *zap.Logger

	selected     board.Coord
	hasSelection bool
	dragging     bool
	gameOver     bool

	// HiDPI scaling
	scale float64
}

// NewGame builds the rules engine, the board view and the drawing components.
func NewGame(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Prefs == nil {
		opts.Prefs = storage.DefaultPreferences()
	}
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	rg, err := rules.NewGame(opts.FEN, opts.Logger.Named("rules"))
	if err != nil {
		return nil, err
	}

	g := &Game{
		rules:    rg,
		sprites:  NewSpriteManager(SquareSize, opts.Logger),
		tray:     NewCapturedTray(),
		renderer: NewRenderer(opts.Theme),
		input:    NewInputHandler(),
		toasts:   NewToastManager(),
		audio:    NewAudioManager(opts.Prefs.Sound),
		fen:      opts.FEN,
		prefs:    opts.Prefs,
		store:    opts.Store,
		log:      opts.Logger,
		scale:    1.0,
	}

	policy := view.PolicyCancel
	if opts.Prefs.QueueMoves {
		policy = view.PolicyQueue
	}
	g.view, err = view.New(view.Config{
		Theme:          opts.Theme,
		Pieces:         g.sprites,
		Moves:          rg,
		Tray:           g.tray,
		WhiteIsBottom:  opts.Prefs.WhiteIsBottom,
		ShowLegalMoves: opts.Prefs.ShowLegalMoves,
		FlatLegalMoves: opts.FlatLegalMoves,
		MoveDuration:   opts.Prefs.AnimationDuration(),
		Policy:         policy,
		Logger:         opts.Logger.Named("view"),
	})
	if err != nil {
		return nil, err
	}
	g.view.SyncAll(rg.Snapshot())
	return g, nil
}

// Update handles one tick of input and animation.
func (g *Game) Update() error {
	g.input.Update()
	dt := time.Second / time.Duration(ebiten.TPS())

	g.handleKeys()
	g.handleBoardInput()

	if g.view.Tick(dt) && g.hasSelection {
		g.selectSquare(g.selected)
	}
	g.toasts.Update(dt)
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyF):
		g.clearSelection()
		g.view.SetPerspective(!g.view.WhiteIsBottom())
		g.prefs.WhiteIsBottom = g.view.WhiteIsBottom()
		g.savePreferences()

	case IsKeyJustPressed(ebiten.KeyL):
		g.view.SetShowLegalMoves(!g.view.ShowLegalMoves())
		g.prefs.ShowLegalMoves = g.view.ShowLegalMoves()
		g.savePreferences()
		if g.hasSelection {
			g.selectSquare(g.selected)
		}
		msg := "Legal moves hidden"
		if g.prefs.ShowLegalMoves {
			msg = "Legal moves shown"
		}
		g.toasts.Show(msg, ToastInfo, 1500*time.Millisecond)

	case IsKeyJustPressed(ebiten.KeyM):
		g.audio.SetEnabled(!g.audio.IsEnabled())
		g.prefs.Sound = g.audio.IsEnabled()
		g.savePreferences()

	case IsKeyJustPressed(ebiten.KeyN):
		g.newGame()
	}
}

// handleBoardInput turns pointer events into selection, dragging and moves.
func (g *Game) handleBoardInput() {
	if g.gameOver {
		return
	}

	mx, my := g.input.MousePosition()
	pointer := g.renderer.Viewport().ToWorld(mx, my)
	c, onBoard := g.view.OnPointerMove(pointer)

	if g.input.IsLeftJustPressed() {
		snap := g.rules.Snapshot()
		if onBoard {
			p := snap.At(c)
			if !p.IsEmpty() && (p.Color() == board.White) == snap.WhiteToMove {
				g.selectSquare(c)
				g.dragging = true
				return
			}
		}
		if g.hasSelection && onBoard {
			g.tryMove(g.selected, c, false)
			return
		}
		g.clearSelection()
		return
	}

	if !g.dragging {
		return
	}
	if g.input.IsLeftPressed() {
		g.view.DragPiece(g.selected, pointer)
		return
	}
	if g.input.IsLeftJustReleased() {
		g.dragging = false
		g.view.ResetPiecePosition(g.selected)
		if onBoard && c != g.selected {
			g.tryMove(g.selected, c, true)
		}
	}
}

func (g *Game) selectSquare(c board.Coord) {
	if g.hasSelection {
		g.view.DeselectSquare(g.selected)
	}
	g.selected, g.hasSelection = c, true
	g.view.SelectSquare(c)
	g.view.HighlightLegalMoves(g.rules.Snapshot(), c)
}

func (g *Game) clearSelection() {
	if g.dragging {
		g.view.ResetPiecePosition(g.selected)
	}
	if g.hasSelection {
		g.view.DeselectSquare(g.selected)
	}
	g.hasSelection, g.dragging = false, false
}

// tryMove plays from-to if legal. A dropped piece is already on its target, so it is
// not animated.
func (g *Game) tryMove(from, to board.Coord, dropped bool) {
	m := board.NewMove(board.IndexFromCoord(from), board.IndexFromCoord(to))
	before := g.rules.Snapshot()
	played, err := g.rules.Apply(m)
	g.clearSelection()
	if err != nil {
		g.log.Debug("move rejected", zap.Stringer("move", m), zap.Error(err))
		if dropped {
			g.toasts.Show("Illegal move", ToastWarning, 1200*time.Millisecond)
			g.audio.Play(SoundIllegal)
		}
		return
	}

	g.view.OnMoveMade(g.rules.Snapshot(), played, g.prefs.Animate && !dropped)
	switch {
	case g.rules.Over():
		g.audio.Play(SoundGameEnd)
		g.finishGame()
	case !before.CapturedBy(played).IsEmpty():
		g.audio.Play(SoundCapture)
	default:
		g.audio.Play(SoundMove)
	}
}

func (g *Game) finishGame() {
	g.gameOver = true
	result := g.rules.Result()
	g.log.Info("game over", zap.String("result", result))
	g.toasts.Show(result+" (N for a new game)", ToastSuccess, 5*time.Second)

	if g.store != nil {
		if err := g.store.RecordResult(g.rules.Outcome()); err != nil {
			g.log.Warn("failed to record result", zap.Error(err))
		}
	}
}

func (g *Game) newGame() {
	rg, err := rules.NewGame(g.fen, g.log.Named("rules"))
	if err != nil {
		g.log.Error("cannot restart", zap.Error(err))
		return
	}
	g.clearSelection()
	g.rules = rg
	g.gameOver = false
	g.tray.Reset()

	g.view.Reset(rg.Snapshot(), rg)
	g.log.Info("new game", zap.String("fen", rg.FEN()))
}

func (g *Game) savePreferences() {
	if g.store == nil {
		return
	}
	if err := g.store.SavePreferences(g.prefs); err != nil {
		g.log.Warn("failed to save preferences", zap.Error(err))
	}
}

// Draw renders the board, the pieces, the tray and any toasts.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)
	screen.Fill(Background)

	g.renderer.DrawBoard(screen, g.view)
	g.renderer.DrawPieces(screen, g.view)

	pad := 6 * g.scale
	g.tray.Draw(screen, pad, BoardSize*g.scale+pad, BoardSize*g.scale-2*pad, TrayHeight*g.scale-2*pad, g.scale)
	g.toasts.Draw(screen, BoardSize*g.scale, g.scale)
}

// Layout returns the screen size in device pixels so drawing stays crisp on HiDPI
// displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}
