package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTitle(t *testing.T) {
	t.Run("valid titles keep the trimmed value", func(t *testing.T) {
		cases := map[string]string{
			"Buy milk":        "Buy milk",
			"  Buy milk  ":    "Buy milk",
			"ab":              "ab",
			strings.Repeat("x", 255): strings.Repeat("x", 255),
		}
		for in, want := range cases {
			title, err := NewTitle(in)
			require.NoError(t, err)
			require.Equal(t, want, title.String())
		}
	})

	t.Run("invalid titles fail with the typed error", func(t *testing.T) {
		cases := []string{
			"",
			"   ",
			"\t\n",
			"a",
			" a ",
			strings.Repeat("x", 256),
		}
		for _, in := range cases {
			_, err := NewTitle(in)
			require.Error(t, err, "input %q", in)
			require.ErrorIs(t, err, ErrInvalidTitle)

			var de *Error
			require.True(t, errors.As(err, &de))
			require.Equal(t, 400, de.Status)
		}
	})
}
