package value

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusHold      Status = "Hold"
	StatusSoldOut   Status = "Sold out"
)

func (s Status) String() string {
	return string(s)
}

// ParseStatus matches a status loosely: case, surrounding space and
// word separators are ignored.
func ParseStatus(s string) (Status, error) {
	switch normalizeStatus(s) {
	case "available", "open", "active":
		return StatusAvailable, nil
	case "hold", "onhold", "reserved":
		return StatusHold, nil
	case "soldout", "sold", "closed":
		return StatusSoldOut, nil
	}

	return "", fmt.Errorf("unknown status %q", s)
}

// ParseStatusOrDefault falls back to Available for blank or unknown input.
// Spreadsheet rows and legacy store files are full of free-form statuses.
func ParseStatusOrDefault(s string) Status {
	status, err := ParseStatus(s)
	if err != nil {
		return StatusAvailable
	}

	return status
}

func normalizeStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}
