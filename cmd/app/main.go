package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/serenity/internal/catalog"
	"github.com/akyairhashvil/serenity/internal/config"
	"github.com/akyairhashvil/serenity/internal/database"
	"github.com/akyairhashvil/serenity/internal/music"
	"github.com/akyairhashvil/serenity/internal/tui"
	"github.com/akyairhashvil/serenity/internal/userdata"
	"github.com/akyairhashvil/serenity/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("serenity needs an interactive terminal")

func main() {
	configPath := flag.String("config", filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName), "path to config.yaml")
	screen := flag.String("screen", "/", "screen to open, e.g. /breathing")
	importPath := flag.String("import", "", "import user data from a JSON export and exit")
	reset := flag.Bool("reset", false, "delete mood history, favorites and goal progress, then exit")
	flag.Parse()

	if err := run(context.Background(), *configPath, *screen, *importPath, *reset); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg     *config.Config
	dataDir string
	db      *database.Database
	svc     *userdata.Service
	catalog *catalog.Catalog
	closers []io.Closer
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			util.LogError("shutdown", err)
		}
	}
}

// setup loads configuration, redirects logging and opens storage.
func setup(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, dataDir: cfg.DataDir}
	if a.dataDir == "" {
		a.dataDir = util.DataDir(config.AppName)
	}
	if err := os.MkdirAll(a.dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	logFile, err := util.RedirectLog(a.dataDir, config.LogFileName)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, logFile)

	a.db, err = database.Open(ctx, filepath.Join(a.dataDir, config.DBFileName))
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, a.db)
	a.svc = userdata.NewService(a.db, nil)

	a.catalog, err = loadCatalog(cfg.CatalogFile)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func loadCatalog(override string) (*catalog.Catalog, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, err
	}
	if override == "" {
		return cat, nil
	}
	return cat.WithOverride(override)
}

func importData(ctx context.Context, svc *userdata.Service, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}
	return svc.Import(ctx, payload)
}

func run(ctx context.Context, configPath, screen, importPath string, reset bool) error {
	a, err := setup(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	if reset {
		if err := a.svc.ClearData(ctx); err != nil {
			return err
		}
		fmt.Println("User data cleared.")
		return nil
	}

	if importPath != "" {
		if err := importData(ctx, a.svc, importPath); err != nil {
			return err
		}
		fmt.Println("Import complete.")
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	if _, err := a.svc.ResetDailyGoalsIfNeeded(ctx); err != nil {
		util.LogError("daily goal reset", err)
	}

	player := music.NewPlayer(music.NewBeepBackend(), music.NewClockBackend(nil))
	model := tui.NewMainModel(ctx, tui.Options{
		Service:    a.svc,
		Settings:   a.db,
		Catalog:    a.catalog,
		Player:     player,
		Config:     a.cfg,
		ReportsDir: util.ReportsDir(config.AppName),
		StartPath:  screen,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
