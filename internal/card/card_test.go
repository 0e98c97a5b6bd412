package card

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateChannelAssignment(t *testing.T) {
	require.NoError(t, ValidateChannelAssignment([]uint8{1, 2, 3}))
	require.Error(t, ValidateChannelAssignment([]uint8{1, 1, 3}), "duplicate channel")
	require.Error(t, ValidateChannelAssignment([]uint8{0, 1, 2}), "out of range channel")
	require.Error(t, ValidateChannelAssignment([]uint8{1, 2, 4}), "out of range channel")
}
