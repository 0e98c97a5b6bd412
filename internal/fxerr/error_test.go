package fxerr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccessIsZero(t *testing.T) {
	require.Equal(t, Error(0), Success)
	require.Equal(t, "SUCCESS", Success.String())
	require.True(t, Success.OK())
}

func TestTopLevelPath(t *testing.T) {
	e := CardErr(CardBadChannelAssignments)
	require.Equal(t, "CARD:BAD_CHANNEL_ASSIGNMENTS", e.String())
	require.False(t, e.OK())
}

func TestUnknownLeaf(t *testing.T) {
	e := cardCategory.Encode(0x32)
	require.Equal(t, "CARD:<unknown>", e.String())
}

func TestNestedCategoryPath(t *testing.T) {
	e := ComponentDigitalErr(DigitalDemuxInvalidBitOffset)
	require.Equal(t, "COMPONENT:DIGITAL:DEMUX_INVALID_BIT_OFFSET", e.String())
}

func TestNestedUnknownLeaf(t *testing.T) {
	e := componentDigitalCategory.Encode(0x32)
	require.Equal(t, "COMPONENT:DIGITAL:<unknown>", e.String())
}

func TestWrapRoundTrip(t *testing.T) {
	err := Wrap(PointErr(PointMissingID))
	require.Error(t, err)
	code, ok := CodeOf(err)
	require.True(t, ok)
	require.Equal(t, PointErr(PointMissingID), code)
	require.Equal(t, "POINT:MISSING_ID", err.Error())

	require.NoError(t, Wrap(Success))
}
