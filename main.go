// ChessView - an interactive chessboard built with Ebitengine
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessview/internal/config"
	"github.com/hailam/chessview/internal/logx"
	"github.com/hailam/chessview/internal/storage"
	"github.com/hailam/chessview/internal/ui"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const logfile = "chessview/chessview.log"

func newLogger(c *cli.Command) (*zap.Logger, io.Closer, error) {
	if c.Bool("console") {
		return logx.New(c.String("level"), c.Bool("debug"), true, nil), io.NopCloser(nil), nil
	}
	path, err := xdg.StateFile(logfile)
	if err != nil {
		return nil, nil, fmt.Errorf("locate log file: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logx.New(c.String("level"), c.Bool("debug"), false, file), file, nil
}

// applyFlags overrides stored preferences for this run only.
func applyFlags(c *cli.Command, prefs *storage.Preferences) {
	if c.IsSet("black") {
		prefs.WhiteIsBottom = !c.Bool("black")
	}
	if c.Bool("no-legal") {
		prefs.ShowLegalMoves = false
	}
	if c.Bool("no-animate") {
		prefs.Animate = false
	}
	if c.Bool("queue") {
		prefs.QueueMoves = true
	}
	if c.Bool("mute") {
		prefs.Sound = false
	}
	if c.IsSet("duration") {
		prefs.AnimationMillis = int(c.Int("duration"))
	}
}

func runGUI(c *cli.Command) error {
	log, closer, err := newLogger(c)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer log.Sync()

	themeCfg, themePath, err := config.Load()
	if err != nil {
		return err
	}
	theme, err := themeCfg.Build()
	if err != nil {
		return fmt.Errorf("theme %s: %w", themePath, err)
	}
	log.Info("theme loaded", zap.String("name", theme.Name), zap.String("path", themePath))

	store, err := storage.New()
	if err != nil {
		log.Warn("storage unavailable, preferences will not be saved", zap.Error(err))
		store = nil
	} else {
		defer store.Close()
	}

	prefs := storage.DefaultPreferences()
	if store != nil {
		if prefs, err = store.LoadPreferences(); err != nil {
			log.Warn("failed to load preferences", zap.Error(err))
			prefs = storage.DefaultPreferences()
		}
	}
	applyFlags(c, prefs)

	game, err := ui.NewGame(ui.Options{
		FEN:            c.String("fen"),
		Theme:          theme,
		Prefs:          prefs,
		Store:          store,
		FlatLegalMoves: c.Bool("flat"),
		Logger:         log,
	})
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("ChessView")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}

func writeTheme(c *cli.Command) error {
	cfg := config.DefaultThemeConfig()
	path, err := cfg.Save()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func main() {
	logFlags := []cli.Flag{
		&cli.StringFlag{Name: "level", Value: "info", Usage: "log level (debug, info, warn, error)"},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "development log encoding"},
		&cli.BoolFlag{Name: "console", Aliases: []string{"c"}, Usage: "log to stdout instead of the log file"},
	}
	viewFlags := []cli.Flag{
		&cli.StringFlag{Name: "fen", Usage: "start from this FEN instead of the standard position"},
		&cli.BoolFlag{Name: "black", Usage: "show the board from black's side"},
		&cli.BoolFlag{Name: "no-legal", Usage: "do not highlight legal moves"},
		&cli.BoolFlag{Name: "no-animate", Usage: "place moved pieces without animating"},
		&cli.BoolFlag{Name: "queue", Usage: "queue moves behind a running animation instead of cutting it short"},
		&cli.BoolFlag{Name: "flat", Usage: "flat legal move colours instead of the darkened gradient"},
		&cli.IntFlag{Name: "duration", Usage: "animation length in milliseconds"},
		&cli.BoolFlag{Name: "mute", Usage: "no move sounds"},
	}

	cmd := &cli.Command{
		Name:  "chessview",
		Usage: "interactive chessboard",
		Flags: append(viewFlags, logFlags...),
		Commands: []*cli.Command{
			{
				Name:  "theme",
				Usage: "write the default theme to the config directory and print its path",
				Action: func(ctx context.Context, c *cli.Command) error {
					return writeTheme(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runGUI(c)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chessview: %v\n", err)
		os.Exit(1)
	}
}
