package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"lak_auction/internal/config"
	"lak_auction/internal/infrastructure/persistence"
	"lak_auction/internal/infrastructure/spreadsheet"
	"lak_auction/pkg/logx"
)

// Replaces the JSON store with the first sheet of a workbook. This is the
// offline catalog-editing path: existing bids do not survive a sync.
func main() {
	xlsxPath := flag.String("file", "catalog.xlsx", "input workbook path")
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(log)

	if err := run(context.Background(), log, *xlsxPath); err != nil {
		log.Error("sync failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, xlsxPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	f, err := os.Open(xlsxPath)
	if err != nil {
		return err
	}
	defer f.Close()

	items, err := spreadsheet.ReadItems(f, time.Now)
	if err != nil {
		return err
	}

	store := persistence.NewFileStore(cfg.Store.Path, nil)

	if err := store.Save(ctx, items); err != nil {
		return err
	}

	log.Info(
		"sync finished",
		"items", len(items),
		logx.FieldStorePath, cfg.Store.Path,
	)

	return nil
}
