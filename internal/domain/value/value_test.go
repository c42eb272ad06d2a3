package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lak_auction/internal/domain/value"
)

func TestParseStatus(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		want  value.Status
	}{
		{name: "Canonical available", input: "Available", want: value.StatusAvailable},
		{name: "Lowercase", input: "available", want: value.StatusAvailable},
		{name: "Open alias", input: "open", want: value.StatusAvailable},
		{name: "Hold", input: "Hold", want: value.StatusHold},
		{name: "On hold with separator", input: "on_hold", want: value.StatusHold},
		{name: "Reserved alias", input: "Reserved", want: value.StatusHold},
		{name: "Canonical sold out", input: "Sold out", want: value.StatusSoldOut},
		{name: "Squashed sold out", input: "SOLDOUT", want: value.StatusSoldOut},
		{name: "Sold alias", input: "sold", want: value.StatusSoldOut},
		{name: "Padded", input: "  hold  ", want: value.StatusHold},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, err := value.ParseStatus(tc.input)
			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}

func TestParseStatusUnknown(t *testing.T) {
	rq := require.New(t)

	for _, input := range []string{"", "whatever", "availablee"} {
		_, err := value.ParseStatus(input)
		rq.Error(err)
		rq.Equal(value.StatusAvailable, value.ParseStatusOrDefault(input))
	}
}

func TestItemID(t *testing.T) {
	rq := require.New(t)

	id, err := value.ParseItemID("  a1 ")
	rq.NoError(err)
	rq.Equal(value.ItemID("a1"), id)

	_, err = value.ParseItemID("   ")
	rq.ErrorIs(err, value.ErrEmptyItemID)

	// Generated ids are unique and non-blank.
	rq.NotEmpty(value.NewItemID())
	rq.NotEqual(value.NewItemID(), value.NewItemID())
}
