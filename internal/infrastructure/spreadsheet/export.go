package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"lak_auction/internal/domain/entity"
)

const (
	sheetItems = "Items"
	sheetBids  = "Bids"

	// #,##0 — thousands separators for LAK amounts.
	numFmtThousands = 3

	minColWidth = 10
	maxColWidth = 60
)

//nolint:gochecknoglobals
var (
	itemHeaders = []string{"id", "name", "description", "images", "originalPrice", "currentPrice", "status", "bids", "lastBidder", "createdAt"}
	bidHeaders  = []string{"itemId", "itemName", "bidderName", "bidderId", "amount", "time"}
)

// WriteWorkbook renders the item set into a two-sheet workbook: one row per
// item plus a flattened sheet of every bid.
func WriteWorkbook(items []entity.Item) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetItems); err != nil {
		return nil, fmt.Errorf("f.SetSheetName: %w", err)
	}

	if _, err := f.NewSheet(sheetBids); err != nil {
		return nil, fmt.Errorf("f.NewSheet: %w", err)
	}

	itemRows := make([][]any, 0, len(items)+1)
	itemRows = append(itemRows, toRow(itemHeaders))

	bidRows := make([][]any, 0, 1)
	bidRows = append(bidRows, toRow(bidHeaders))

	for _, item := range items {
		lastBidder := ""
		if item.LastBidder != nil {
			lastBidder = item.LastBidder.Name
		}

		itemRows = append(itemRows, []any{
			item.ID.String(),
			item.Name,
			item.Description,
			strings.Join(item.Images, ", "),
			item.OriginalPrice,
			item.CurrentPrice,
			item.Status.String(),
			len(item.Bids),
			lastBidder,
			formatTime(item.CreatedAt),
		})

		for _, bid := range item.Bids {
			bidRows = append(bidRows, []any{
				item.ID.String(),
				item.Name,
				bid.Name,
				bid.BidderID,
				bid.Amount,
				formatTime(bid.Time),
			})
		}
	}

	if err := writeSheet(f, sheetItems, itemRows); err != nil {
		return nil, err
	}

	if err := writeSheet(f, sheetBids, bidRows); err != nil {
		return nil, err
	}

	if err := applyPriceFormat(f, sheetItems, []int{5, 6}, len(itemRows)); err != nil {
		return nil, err
	}

	if err := applyPriceFormat(f, sheetBids, []int{5}, len(bidRows)); err != nil {
		return nil, err
	}

	return f, nil
}

// WriteBidsCSV writes the companion CSV mirroring the Bids sheet.
func WriteBidsCSV(w io.Writer, items []entity.Item) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(bidHeaders); err != nil {
		return fmt.Errorf("csv.Write: %w", err)
	}

	for _, item := range items {
		for _, bid := range item.Bids {
			record := []string{
				item.ID.String(),
				item.Name,
				bid.Name,
				bid.BidderID,
				strconv.FormatInt(bid.Amount, 10),
				formatTime(bid.Time),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("csv.Write: %w", err)
			}
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv.Flush: %w", err)
	}

	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	widths := make([]int, 0)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("f.SetSheetRow: %w", err)
		}

		for col, v := range row {
			if col >= len(widths) {
				widths = append(widths, 0)
			}
			if l := len(fmt.Sprint(v)); l > widths[col] {
				widths[col] = l
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("excelize.ColumnNumberToName: %w", err)
		}

		if err := f.SetColWidth(sheet, name, name, clampWidth(width)); err != nil {
			return fmt.Errorf("f.SetColWidth: %w", err)
		}
	}

	return nil
}

func applyPriceFormat(f *excelize.File, sheet string, columns []int, rowCount int) error {
	if rowCount < 2 {
		return nil
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		return fmt.Errorf("f.NewStyle: %w", err)
	}

	for _, col := range columns {
		top, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
		}

		bottom, err := excelize.CoordinatesToCellName(col, rowCount)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
		}

		if err := f.SetCellStyle(sheet, top, bottom, style); err != nil {
			return fmt.Errorf("f.SetCellStyle: %w", err)
		}
	}

	return nil
}

func clampWidth(chars int) float64 {
	width := chars + 2
	if width < minColWidth {
		width = minColWidth
	}
	if width > maxColWidth {
		width = maxColWidth
	}

	return float64(width)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

func toRow(headers []string) []any {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}

	return row
}
