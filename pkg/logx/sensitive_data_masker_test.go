package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lak_auction/pkg/logx"
)

func TestSensitiveDataMasker(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Bidder id in JSON body",
			input:    `{"name":"Sone","bidderId":"u1"}`,
			expected: `{"name":"Sone","bidderId":"[MASKED]"}`,
		},
		{
			name:     "Snake case bidder id",
			input:    `{"bidder_id":"u2"}`,
			expected: `{"bidder_id":"[MASKED]"}`,
		},
		{
			name:     "Authorization header",
			input:    "Authorization: Bearer abc.def.ghi\r\n",
			expected: "Authorization: Bearer [MASKED]\r\n",
		},
		{
			name:     "Nothing sensitive",
			input:    `{"name":"Mali"}`,
			expected: `{"name":"Mali"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq.Equal(tc.expected, string(masker.Mask([]byte(tc.input))))
		})
	}
}

func TestNopSensitiveDataMasker(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewNopSensitiveDataMasker()

	input := `{"bidderId":"u1"}`
	rq.Equal(input, string(masker.Mask([]byte(input))))
}
