//go:build unit

package cedula_test

import (
	"testing"

	"paseos-api/internal/domain/cedula"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid Pichincha number", input: "1710034065", want: true},
		{name: "valid Guayas number", input: "0926687856", want: true},
		{name: "check digit zero when sum is a multiple of ten", input: "0240000000", want: true},
		{name: "lowest province", input: "0110000007", want: true},
		{name: "wrong check digit", input: "1710034066", want: false},
		{name: "province 00", input: "0010034065", want: false},
		{name: "province 25", input: "2510034065", want: false},
		{name: "province 30", input: "3010034065", want: false},
		{name: "third digit 6", input: "1760034065", want: false},
		{name: "third digit 9", input: "1790034065", want: false},
		{name: "nine digits", input: "171003406", want: false},
		{name: "eleven digits", input: "17100340651", want: false},
		{name: "empty", input: "", want: false},
		{name: "letters", input: "17100340A5", want: false},
		{name: "dashes", input: "171003406-5", want: false},
		{name: "leading space", input: " 710034065", want: false},
		{name: "non-ascii digits", input: "١٧١٠٠٣٤٠٦٥", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cedula.IsValid(tc.input))
		})
	}
}

func TestIsValidNeverPanics(t *testing.T) {
	inputs := []string{"\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00", "\xff\xfe", "0000000000", "9999999999"}
	for _, in := range inputs {
		assert.NotPanics(t, func() { cedula.IsValid(in) })
	}
}

func TestParse(t *testing.T) {
	t.Run("valid number exposes province", func(t *testing.T) {
		n, err := cedula.Parse("0926687856")
		require.NoError(t, err)

		assert.Equal(t, 9, n.Province())
		assert.Equal(t, "0926687856", n.String())
	})

	t.Run("invalid number", func(t *testing.T) {
		_, err := cedula.Parse("1234567890")
		assert.ErrorIs(t, err, cedula.ErrInvalid)
	})

	t.Run("zero value has no province", func(t *testing.T) {
		assert.Equal(t, 0, cedula.Number{}.Province())
	})
}
