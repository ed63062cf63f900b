package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{name: "integer", input: "1000", want: 1000},
		{name: "fraction", input: "12.5", want: 12.5},
		{name: "surrounding spaces", input: "  42.25\n", want: 42.25},
		{name: "exponent", input: "1e3", want: 1000},
		{name: "empty", input: "", wantErr: ErrInvalidAmount},
		{name: "letters", input: "abc", wantErr: ErrInvalidAmount},
		{name: "trailing garbage", input: "10rub", wantErr: ErrInvalidAmount},
		{name: "comma decimal", input: "10,5", wantErr: ErrInvalidAmount},
		{name: "nan", input: "NaN", wantErr: ErrInvalidAmount},
		{name: "inf", input: "inf", wantErr: ErrInvalidAmount},
		{name: "overflow", input: "1e400", wantErr: ErrInvalidAmount},
		{name: "zero", input: "0", wantErr: ErrNonPositiveAmount},
		{name: "negative zero", input: "-0", wantErr: ErrNonPositiveAmount},
		{name: "negative", input: "-5", wantErr: ErrNonPositiveAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Zero(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
