package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32Bytes(samples ...float32) []byte {
	buf := make([]byte, 0, len(samples)*4)
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(s))
	}
	return buf
}

func u16Bytes(samples ...uint16) []byte {
	buf := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint16(buf, s)
	}
	return buf
}

func TestAdapterForUnknownFormat(t *testing.T) {
	_, err := adapterFor(formatUnknown)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported sample format")
}

func TestF32AdapterScalesAndClamps(t *testing.T) {
	a, err := adapterFor(formatF32)
	require.NoError(t, err)

	raw := f32Bytes(0, 0.5, 1.0, -1.0, 2.0, -3.0)
	got := a.convert(raw, 1, nil)

	half := float32(0.5)
	want := []int{0, int(int16(half * math.MaxInt16)), math.MaxInt16, -math.MaxInt16, math.MaxInt16, -math.MaxInt16}
	assert.Equal(t, want, got)
}

func TestS16AdapterPassesThrough(t *testing.T) {
	a, err := adapterFor(formatS16)
	require.NoError(t, err)

	raw := u16Bytes(0, 1, 0x8000, 0xFFFF)
	got := a.convert(raw, 1, nil)

	assert.Equal(t, []int{0, 1, math.MinInt16, -1}, got)
}

func TestU16AdapterRecenters(t *testing.T) {
	a, err := adapterFor(formatU16)
	require.NoError(t, err)

	raw := u16Bytes(0, 32767, 65535)
	got := a.convert(raw, 1, nil)

	// 0 maps to the negative extreme, the unsigned midpoint to zero.
	assert.Equal(t, []int{-math.MaxInt16, 0, math.MinInt16}, got)
}

func TestAdaptersTakeFirstChannelOnly(t *testing.T) {
	a, err := adapterFor(formatS16)
	require.NoError(t, err)

	// Two frames of four channels each; only channel 0 survives.
	raw := u16Bytes(
		100, 200, 300, 400,
		500, 600, 700, 800,
	)
	got := a.convert(raw, 4, nil)

	assert.Equal(t, []int{100, 500}, got)
}

func TestConvertIgnoresTrailingPartialFrame(t *testing.T) {
	a, err := adapterFor(formatS16)
	require.NoError(t, err)

	raw := u16Bytes(1, 2, 3) // one full stereo frame plus half a frame
	got := a.convert(raw, 2, nil)

	assert.Equal(t, []int{1}, got)
}

func TestConvertReusesDestination(t *testing.T) {
	a, err := adapterFor(formatS16)
	require.NoError(t, err)

	scratch := make([]int, 0, 8)
	first := a.convert(u16Bytes(1, 2), 1, scratch[:0])
	second := a.convert(u16Bytes(3), 1, first[:0])

	assert.Equal(t, []int{3}, second)
}
