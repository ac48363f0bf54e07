package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSet_Valid(t *testing.T) {
	set, err := ParseSet([]string{"2,2,4,4,9,9", "6,8,1,1,8,6", "7,5,3,7,5,3"})
	require.NoError(t, err)
	require.Len(t, set, 3)

	assert.Equal(t, "2,2,4,4,9,9", set[0].String())
	assert.Equal(t, 0, set[0].Label())
	assert.Equal(t, 2, set[2].Label())
	assert.Equal(t, 6, set[1].Size())
	assert.Equal(t, 8, set[1].Face(1))
}

func TestParseSet_ArgumentErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"wrong face count", []string{"1,2,3,4,5"}, ErrFaceCount},
		{"non-integer face", []string{"1,2,3,4,5,x"}, ErrBadFace},
		{"too few dice", []string{"1,2,3,4,5,6", "1,2,3,4,5,6"}, ErrTooFewDice},
		{"no dice", nil, ErrTooFewDice},
		{"seven faces", []string{"1,2,3,4,5,6,7", "1,2,3,4,5,6", "1,2,3,4,5,6"}, ErrFaceCount},
		{"bad die among valid", []string{"1,2,3,4,5,6", "1,2,3,4,5,oops", "1,2,3,4,5,6"}, ErrBadFace},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSet(tc.args)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_TrimsWhitespaceAndAllowsNegatives(t *testing.T) {
	die, err := Parse(0, " 1, -2 ,3,4,5,6")
	require.NoError(t, err)
	assert.Equal(t, -2, die.Face(1))
}

func TestNew_CopiesFaces(t *testing.T) {
	faces := []int{1, 2, 3, 4, 5, 6}
	die, err := New(0, faces)
	require.NoError(t, err)

	faces[0] = 99
	assert.Equal(t, 1, die.Face(0), "die must be immutable after construction")
}
