package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"lak_auction/internal/domain/entity"
	"lak_auction/internal/domain/value"
)

var ErrNoHeaderRow = errors.New("first sheet has no header row")

// ReadItems parses the first sheet of a workbook into a fresh item set.
// This is the offline catalog-editing path: the result replaces the store
// wholesale, so bids do not survive a sync.
func ReadItems(r io.Reader, now func() time.Time) ([]entity.Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeaderRow
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("f.GetRows: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrNoHeaderRow
	}

	columns := mapHeaders(rows[0])

	items := make([]entity.Item, 0, len(rows)-1)

	for _, row := range rows[1:] {
		cell := func(field string) string {
			idx, ok := columns[field]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		name := cell(colName)
		if name == "" {
			continue
		}

		id, err := value.ParseItemID(cell(colID))
		if err != nil {
			id = value.NewItemID()
		}

		originalPrice := coercePrice(cell(colOriginalPrice))

		currentPrice := coercePrice(cell(colCurrentPrice))
		if currentPrice < originalPrice {
			currentPrice = originalPrice
		}

		items = append(items, entity.Item{
			ID:            id,
			Name:          name,
			Description:   cell(colDescription),
			Images:        SplitImages(cell(colImages)),
			OriginalPrice: originalPrice,
			CurrentPrice:  currentPrice,
			Status:        value.ParseStatusOrDefault(cell(colStatus)),
			Bids:          []entity.Bid{},
			CreatedAt:     now().UTC(),
		})
	}

	return items, nil
}

// SplitImages turns a comma- or newline-joined cell into a URL list.
func SplitImages(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})

	return lo.FilterMap(parts, func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})
}

// coercePrice accepts "500000", "500,000", "500000 LAK", "₭500000" and
// decimal spreadsheet values like "500000.0". Anything unparsable is zero.
func coercePrice(raw string) int64 {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return -1
		}
	}, raw)

	if cleaned == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || parsed < 0 {
		return 0
	}

	return int64(parsed)
}
