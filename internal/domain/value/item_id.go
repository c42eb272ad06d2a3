package value

import (
	"errors"
	"strings"

	"github.com/rs/xid"
)

type ItemID string

var ErrEmptyItemID = errors.New("item id is empty")

func (id ItemID) String() string {
	return string(id)
}

// NewItemID generates a fresh sortable identifier.
func NewItemID() ItemID {
	return ItemID(xid.New().String())
}

// ParseItemID accepts any non-blank identifier. Items imported from
// spreadsheets may carry ids that are not xids, so no format check here.
func ParseItemID(s string) (ItemID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyItemID
	}

	return ItemID(s), nil
}
