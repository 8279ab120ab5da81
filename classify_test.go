package yamlite_test

import (
	"testing"

	"github.com/mbrevik/go-yamlite"
	"github.com/stretchr/testify/require"
)

func TestSpecialChars(t *testing.T) {
	tests := []struct {
		name   string
		scalar string
		want   yamlite.Special
	}{
		{
			name:   "plain word",
			scalar: "hello",
			want:   none(),
		},
		{
			name:   "empty scalar",
			scalar: "",
			want:   none(),
		},
		{
			name:   "spaces are not special",
			scalar: "two words",
			want:   none(),
		},
		{
			name:   "already single quoted",
			scalar: "'a,b'",
			want:   none(),
		},
		{
			name:   "already double quoted",
			scalar: `"x y"`,
			want:   none(),
		},
		{
			name:   "bare quote pair is too short to be safe",
			scalar: "''",
			want: yamlite.Special{
				HasSpecial:       true,
				FirstSpecial:     0,
				FirstSingleQuote: 0,
				FirstDoubleQuote: -1,
				Char:             '\'',
			},
		},
		{
			name:   "comma",
			scalar: "a,b",
			want: yamlite.Special{
				HasSpecial:       true,
				FirstSpecial:     1,
				FirstSingleQuote: -1,
				FirstDoubleQuote: -1,
				Char:             ',',
			},
		},
		{
			name:   "leading dash",
			scalar: "-1",
			want: yamlite.Special{
				HasSpecial:       true,
				FirstSpecial:     0,
				FirstSingleQuote: -1,
				FirstDoubleQuote: -1,
				Char:             '-',
			},
		},
		{
			name:   "lowest position wins",
			scalar: "ab,c:d",
			want: yamlite.Special{
				HasSpecial:       true,
				FirstSpecial:     2,
				FirstSingleQuote: -1,
				FirstDoubleQuote: -1,
				Char:             ',',
			},
		},
		{
			name:   "control character",
			scalar: "\x01a",
			want: yamlite.Special{
				HasSpecial:       true,
				FirstSpecial:     0,
				FirstSingleQuote: -1,
				FirstDoubleQuote: -1,
				Char:             0x01,
			},
		},
		{
			name:   "byte above printable bound",
			scalar: "a~b",
			want: yamlite.Special{
				HasSpecial:       true,
				FirstSpecial:     1,
				FirstSingleQuote: -1,
				FirstDoubleQuote: -1,
				Char:             '~',
			},
		},
		{
			name:   "embedded single quote",
			scalar: "it's",
			want: yamlite.Special{
				HasSpecial:       true,
				FirstSpecial:     2,
				FirstSingleQuote: 2,
				FirstDoubleQuote: -1,
				Char:             '\'',
			},
		},
		{
			name:   "embedded double quote",
			scalar: `say "hi"`,
			want: yamlite.Special{
				HasSpecial:       true,
				FirstSpecial:     4,
				FirstSingleQuote: -1,
				FirstDoubleQuote: 4,
				Char:             '"',
			},
		},
		{
			name:   "both quote kinds reported independently",
			scalar: `a'b"c`,
			want: yamlite.Special{
				HasSpecial:       true,
				FirstSpecial:     1,
				FirstSingleQuote: 1,
				FirstDoubleQuote: 3,
				Char:             '\'',
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, yamlite.SpecialChars(tt.scalar))
		})
	}
}

func none() yamlite.Special {
	return yamlite.Special{
		FirstSpecial:     -1,
		FirstSingleQuote: -1,
		FirstDoubleQuote: -1,
	}
}
