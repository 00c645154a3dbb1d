package ioformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_WellFormedInput(t *testing.T) {
	input := `10 10
2
0 0 0 2 2
1 8 8 2 2 fixed
1
0 2 0 0 0 1 0 0
`
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 10, p.Grid().Width)
	require.Equal(t, 10, p.Grid().Height)
	require.Len(t, p.Cells(), 2)

	c0 := p.CellByID(0)
	require.False(t, c0.Fixed)
	c1 := p.CellByID(1)
	require.True(t, c1.Fixed)

	require.Len(t, p.Nets(), 1)
	require.Len(t, p.Nets()[0].Pins, 2)
}

func TestParse_FixedTokenVariants(t *testing.T) {
	for _, tok := range []string{"fixed", "1", "true"} {
		input := "5 5\n1\n0 0 0 1 1 " + tok + "\n0\n"
		p, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.True(t, p.CellByID(0).Fixed)
	}
}

func TestParse_UnrecognizedFixedTokenMeansMovable(t *testing.T) {
	input := "5 5\n1\n0 0 0 1 1 maybe\n0\n"
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.False(t, p.CellByID(0).Fixed)
}

func TestParse_SkipsMalformedCellLine(t *testing.T) {
	input := `5 5
2
not a valid cell line
1 0 0 1 1
0
`
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, p.Cells(), 1)
	require.Equal(t, 1, p.Cells()[0].ID)
}

func TestParse_SkipsMalformedNetLine(t *testing.T) {
	input := `5 5
0
2
garbage net line here
1 1 0 0 0
`
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, p.Nets(), 1)
	require.Equal(t, 1, p.Nets()[0].ID)
}

func TestParse_MissingDimensionHeaderErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestParse_MalformedDimensionHeaderErrors(t *testing.T) {
	_, err := Parse(strings.NewReader("not-a-number 10\n"))
	require.Error(t, err)
}

func TestParse_ZeroCellsZeroNets(t *testing.T) {
	p, err := Parse(strings.NewReader("0 0\n0\n0\n"))
	require.NoError(t, err)
	require.Empty(t, p.Cells())
	require.Empty(t, p.Nets())
}
