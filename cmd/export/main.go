package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"lak_auction/internal/config"
	"lak_auction/internal/infrastructure/persistence"
	"lak_auction/internal/infrastructure/spreadsheet"
	"lak_auction/pkg/logx"
)

// Exports the JSON store into a two-sheet workbook plus a CSV of the bids,
// for offline inspection of the catalog and the bidding history.
func main() {
	xlsxPath := flag.String("xlsx", "auction.xlsx", "output workbook path")
	csvPath := flag.String("csv", "bids.csv", "output bids CSV path")
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(log)

	if err := run(context.Background(), log, *xlsxPath, *csvPath); err != nil {
		log.Error("export failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, xlsxPath, csvPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store := persistence.NewFileStore(cfg.Store.Path, nil)

	items, err := store.Load(ctx)
	if err != nil {
		return err
	}

	workbook, err := spreadsheet.WriteWorkbook(items)
	if err != nil {
		return err
	}

	if err := workbook.SaveAs(xlsxPath); err != nil {
		return err
	}

	csvFile, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer csvFile.Close()

	if err := spreadsheet.WriteBidsCSV(csvFile, items); err != nil {
		return err
	}

	bids := 0
	for _, item := range items {
		bids += len(item.Bids)
	}

	log.Info(
		"export finished",
		"items", len(items),
		"bids", bids,
		"xlsx", xlsxPath,
		"csv", csvPath,
	)

	return nil
}
