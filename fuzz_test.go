//go:build go1.18

package yamlite_test

import (
	"strings"
	"testing"

	"github.com/mbrevik/go-yamlite"
	"github.com/stretchr/testify/require"
)

func FuzzParse(f *testing.F) {
	// Seed the corpus with documents covering every structural form of
	// the subset, to give the fuzzer good starting points.
	seeds := []string{
		"",
		"key: value\n",
		"list:\n  - a\n  - b\n",
		"- a\n- b\n",
		"k1: v1\nk2:\n",
		"{name: Go, age: 15}",
		"[1, 2, [3, 4]]",
		"name: 'hello world'\n",
		"'my key': \"a: b\"\n",
		"# comment\n%directive\n---\nkey: v\n",
		"url: http://example.com:8080/x\n",
		"a:\n  b: 1\nc: 2\n",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		rec := &recorder{}
		err := yamlite.Parse(data, rec)
		if err != nil {
			// Invalid input is expected; the fuzzer's job is to find
			// inputs that panic or break the event contract below.
			return
		}

		// Every successful parse delivers balanced, bracketed events.
		requireBalanced(t, rec.events)
		require.Equal(t, "+doc", rec.events[0])
		require.Equal(t, "-doc", rec.events[len(rec.events)-1])
		require.Zero(t, rec.errs)
	})
}

func FuzzSafeScalar(f *testing.F) {
	seeds := []string{
		"", "plain", "two words", "a,b", "-1", "it's", `say "hi"`,
		"'quoted'", "key: value", "\x01", "~", "日本語",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, scalar string) {
		if strings.ContainsRune(scalar, '\'') && strings.ContainsRune(scalar, '"') {
			// Unrepresentable without escapes unless already wrapped in
			// a matching quote pair; QuoteScalar covers this case.
			return
		}

		got := yamlite.SafeScalar(scalar)

		// The encoded form never needs quoting again.
		require.False(t, yamlite.SpecialChars(got).HasSpecial)

		// Quoting, when applied, round-trips modulo the quote pair.
		if got != scalar {
			require.GreaterOrEqual(t, len(got), 2)
			require.Equal(t, got[0], got[len(got)-1])
			require.Equal(t, scalar, got[1:len(got)-1])
		}
	})
}
