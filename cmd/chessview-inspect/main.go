// chessview-inspect renders a board to PNG without opening a window. It is meant for
// checking themes and highlight states.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/hailam/chessview/internal/assets"
	"github.com/hailam/chessview/internal/board"
	"github.com/hailam/chessview/internal/config"
	"github.com/hailam/chessview/internal/logx"
	"github.com/hailam/chessview/internal/rules"
	"github.com/hailam/chessview/internal/view"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func loadTheme(path string) (*view.Theme, error) {
	var (
		cfg *config.ThemeConfig
		err error
	)
	if path == "" {
		cfg, _, err = config.Load()
	} else {
		cfg, err = config.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// buildView plays moves on a game started from fen and selects the given square.
func buildView(c *cli.Command, theme *view.Theme, log *zap.Logger) (*view.BoardView, error) {
	g, err := rules.NewGame(c.String("fen"), log)
	if err != nil {
		return nil, err
	}
	imgs, err := assets.LoadImages(int(c.Int("size")))
	if err != nil {
		return nil, err
	}

	v, err := view.New(view.Config{
		Theme:          theme,
		Pieces:         imgs,
		Moves:          g,
		WhiteIsBottom:  !c.Bool("black"),
		ShowLegalMoves: true,
		FlatLegalMoves: c.Bool("flat"),
		Logger:         log,
	})
	if err != nil {
		return nil, err
	}
	v.SyncAll(g.Snapshot())

	for _, s := range strings.Fields(strings.ReplaceAll(c.String("moves"), ",", " ")) {
		m, err := board.ParseMove(s)
		if err != nil {
			return nil, err
		}
		played, err := g.Apply(m)
		if err != nil {
			return nil, err
		}
		v.OnMoveMade(g.Snapshot(), played, false)
	}

	if s := c.String("select"); s != "" {
		sq, err := board.ParseSquare(s)
		if err != nil {
			return nil, err
		}
		coord := board.CoordFromIndex(sq)
		v.SelectSquare(coord)
		n := v.HighlightLegalMoves(g.Snapshot(), coord)
		log.Info("selected", zap.String("square", s), zap.Int("targets", n))
	}
	return v, nil
}

func run(ctx context.Context, c *cli.Command) error {
	log := logx.New(c.String("level"), false, true, nil)
	defer log.Sync()

	theme, err := loadTheme(c.String("theme"))
	if err != nil {
		return err
	}
	v, err := buildView(c, theme, log)
	if err != nil {
		return err
	}
	img, err := render(v, theme, int(c.Int("size")))
	if err != nil {
		return err
	}

	out := c.String("out")
	if err := gg.SavePNG(out, img); err != nil {
		return err
	}
	log.Info("board written", zap.String("path", out))
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "chessview-inspect",
		Usage: "render a board state to PNG",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "fen", Usage: "start position (full FEN)"},
			&cli.StringFlag{Name: "moves", Usage: "UCI moves to play, comma or space separated"},
			&cli.StringFlag{Name: "select", Usage: "square to select, e.g. e2"},
			&cli.BoolFlag{Name: "black", Usage: "black at the bottom"},
			&cli.BoolFlag{Name: "flat", Usage: "flat legal move colours"},
			&cli.StringFlag{Name: "theme", Usage: "theme file instead of the configured one"},
			&cli.IntFlag{Name: "size", Value: 64, Usage: "square size in pixels"},
			&cli.StringFlag{Name: "out", Value: "board.png", Usage: "output file"},
			&cli.StringFlag{Name: "level", Value: "warn", Usage: "log level"},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chessview-inspect: %v\n", err)
		os.Exit(1)
	}
}
