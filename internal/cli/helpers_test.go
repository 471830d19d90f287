package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDArg(t *testing.T) {
	id, err := ParseIDArg(" 12 ", "ticket")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, raw := range []string{"", "0", "-4", "abc", "1.5"} {
		_, err := ParseIDArg(raw, "ticket")
		assert.Error(t, err, raw)
	}
}

func TestOptionalID(t *testing.T) {
	assert.Nil(t, OptionalID(0))
	require.NotNil(t, OptionalID(-1))
	assert.Equal(t, -1, *OptionalID(-1))
	require.NotNil(t, OptionalID(3))
	assert.Equal(t, 3, *OptionalID(3))
}

func TestReadDescription(t *testing.T) {
	got, err := ReadDescription("inline", strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, "inline", got)

	got, err = ReadDescription("-", strings.NewReader("# Heading\n\nbody\n"))
	require.NoError(t, err)
	assert.Equal(t, "# Heading\n\nbody", got)
}
