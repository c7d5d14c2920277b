package instance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidInstance(t *testing.T) {
	input := "2 3\n. 1 .\n2 . 3\n"
	grid, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)

	assert.Nil(t, grid[0][0])
	require.NotNil(t, grid[0][1])
	assert.Equal(t, 1, *grid[0][1])
	assert.Nil(t, grid[0][2])
	require.NotNil(t, grid[1][0])
	assert.Equal(t, 2, *grid[1][0])
	assert.Nil(t, grid[1][1])
	require.NotNil(t, grid[1][2])
	assert.Equal(t, 3, *grid[1][2])
}

func TestParseMissingDimensionsLine(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Line)
}

func TestParseBadDimensionsToken(t *testing.T) {
	_, err := Parse(strings.NewReader("two 3\n"))
	require.Error(t, err)
}

func TestParseWrongTokenCount(t *testing.T) {
	_, err := Parse(strings.NewReader("1 3\n1 2\n"))
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseMissingRow(t *testing.T) {
	_, err := Parse(strings.NewReader("2 1\n.\n"))
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 3, parseErr.Line)
}

func TestParseInvalidToken(t *testing.T) {
	_, err := Parse(strings.NewReader("1 1\n4\n"))
	require.Error(t, err)

	_, err = Parse(strings.NewReader("1 1\nx\n"))
	require.Error(t, err)
}

func TestParseAllDotsGrid(t *testing.T) {
	grid, err := Parse(strings.NewReader("1 1\n.\n"))
	require.NoError(t, err)
	assert.Nil(t, grid[0][0])
}
