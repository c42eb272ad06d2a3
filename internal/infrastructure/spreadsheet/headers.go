package spreadsheet

import "strings"

// Canonical column names used by both the export and the sync direction.
const (
	colID            = "id"
	colName          = "name"
	colDescription   = "description"
	colImages        = "images"
	colOriginalPrice = "originalPrice"
	colCurrentPrice  = "currentPrice"
	colStatus        = "status"
)

// headerAliases maps each canonical field to the header spellings accepted
// on sync. Lookup is case- and separator-insensitive, so "Original Price",
// "original_price" and "ORIGINALPRICE" all land on originalPrice. The Lao
// spellings come from catalogs edited by the seller directly.
//
//nolint:gochecknoglobals
var headerAliases = map[string][]string{
	colID:            {"id", "item id", "code", "ລະຫັດ"},
	colName:          {"name", "item", "item name", "title", "ຊື່"},
	colDescription:   {"description", "desc", "detail", "details", "ລາຍລະອຽດ"},
	colImages:        {"images", "image", "image urls", "photo", "photos", "ຮູບ"},
	colOriginalPrice: {"original price", "start price", "starting price", "price", "ລາຄາເລີ່ມຕົ້ນ"},
	colCurrentPrice:  {"current price", "latest price", "ລາຄາປັດຈຸບັນ"},
	colStatus:        {"status", "state", "ສະຖານະ"},
}

// mapHeaders resolves a header row into canonical-field -> column-index.
// The first matching column wins; unknown columns are ignored.
func mapHeaders(row []string) map[string]int {
	lookup := make(map[string]string)
	for canonical, aliases := range headerAliases {
		lookup[normalizeHeader(canonical)] = canonical
		for _, alias := range aliases {
			lookup[normalizeHeader(alias)] = canonical
		}
	}

	columns := make(map[string]int)
	for i, header := range row {
		canonical, ok := lookup[normalizeHeader(header)]
		if !ok {
			continue
		}
		if _, taken := columns[canonical]; taken {
			continue
		}
		columns[canonical] = i
	}

	return columns
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "\t", "", "_", "", "-", "").Replace(s)
}
