package token

import (
	"strings"
	"testing"

	"tokenswap/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "integer", raw: "100", want: "100"},
		{name: "fraction", raw: "1.5", want: "1.5"},
		{name: "max scale", raw: "0." + strings.Repeat("0", 17) + "1", want: "0.000000000000000001"},
		{name: "max integer digits", raw: strings.Repeat("9", 30), want: strings.Repeat("9", 30)},
		{name: "empty", raw: "", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "zero fraction", raw: "0.000", wantErr: true},
		{name: "negative", raw: "-1", wantErr: true},
		{name: "explicit plus", raw: "+1", wantErr: true},
		{name: "exponent", raw: "1e5", wantErr: true},
		{name: "negative exponent", raw: "1E-3", wantErr: true},
		{name: "huge exponent", raw: "1e2000000000", wantErr: true},
		{name: "too many integer digits", raw: strings.Repeat("9", 31), wantErr: true},
		{name: "too many fractional digits", raw: "0." + strings.Repeat("1", 19), wantErr: true},
		{name: "very long input", raw: strings.Repeat("1", 100000), wantErr: true},
		{name: "trailing dot", raw: "1.", wantErr: true},
		{name: "leading dot", raw: ".5", wantErr: true},
		{name: "spaces", raw: " 1", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
				// the echoed input is truncated
				require.Less(t, len(err.Error()), 300)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got.String())
		})
	}
}
