package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homkit/format"
)

func TestParsePrecolor_Basic(t *testing.T) {
	m, err := format.ParsePrecolor("0:1, 2:3")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 1, 2: 3}, m)
}

func TestParsePrecolor_Empty(t *testing.T) {
	m, err := format.ParsePrecolor("")
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestParsePrecolor_MissingColon(t *testing.T) {
	_, err := format.ParsePrecolor("0:1, 2-3")
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrMalformedPrecolor)
}

func TestParsePrecolor_NonIntegerField(t *testing.T) {
	_, err := format.ParsePrecolor("a:1")
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrMalformedPrecolor)
}
