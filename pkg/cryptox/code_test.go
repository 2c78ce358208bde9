package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	t.Parallel()

	t.Run("groups characters in fours", func(t *testing.T) {
		code, err := GenerateCode(DefaultCodeLength)
		require.NoError(t, err)
		require.Len(t, code, DefaultCodeLength+3) // 3 separators

		for _, group := range strings.Split(code, "-") {
			require.Len(t, group, 4)
		}
	})

	t.Run("uses only the safe alphabet", func(t *testing.T) {
		code, err := GenerateCode(32)
		require.NoError(t, err)

		for _, c := range strings.ReplaceAll(code, "-", "") {
			require.Contains(t, codeAlphabet, string(c))
		}
	})

	t.Run("rejects non-positive lengths", func(t *testing.T) {
		_, err := GenerateCode(0)
		require.Error(t, err)
	})

	t.Run("does not repeat", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			code, err := GenerateCode(DefaultCodeLength)
			require.NoError(t, err)
			_, dup := seen[code]
			require.False(t, dup, "generated duplicate code %s", code)
			seen[code] = struct{}{}
		}
	})
}

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ABCD-1234", NormalizeCode("  abcd-1234 "))
	require.Equal(t, "1100-VVVV", NormalizeCode("Ilo0-uUvV"))
}
