package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

// sampleFormat identifies the native sample encoding an input device
// delivers. The engine adapts each of these to mono signed 16-bit PCM.
type sampleFormat int

const (
	formatUnknown sampleFormat = iota
	formatF32
	formatS16
	formatU16
)

func (f sampleFormat) String() string {
	switch f {
	case formatF32:
		return "f32"
	case formatS16:
		return "s16"
	case formatU16:
		return "u16"
	default:
		return "unknown"
	}
}

// sampleAdapter converts a raw interleaved frame batch to mono signed
// 16-bit samples, taking only the first channel of each frame. One adapter
// is picked when the stream opens; the data callback never branches on
// format again.
type sampleAdapter interface {
	bytesPerSample() int
	convert(raw []byte, channels int, dst []int) []int
}

// adapterFor returns the adapter for a device's native format, or an error
// for formats the engine does not handle.
func adapterFor(format sampleFormat) (sampleAdapter, error) {
	switch format {
	case formatF32:
		return f32Adapter{}, nil
	case formatS16:
		return s16Adapter{}, nil
	case formatU16:
		return u16Adapter{}, nil
	default:
		return nil, fmt.Errorf("unsupported sample format: %s", format)
	}
}

// f32Adapter clamps each float sample to [-1, 1] and scales it to the
// signed 16-bit range.
type f32Adapter struct{}

func (f32Adapter) bytesPerSample() int { return 4 }

func (f32Adapter) convert(raw []byte, channels int, dst []int) []int {
	frameBytes := 4 * channels
	for off := 0; off+frameBytes <= len(raw); off += frameBytes {
		s := math.Float32frombits(binary.LittleEndian.Uint32(raw[off:]))
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		dst = append(dst, int(int16(s*math.MaxInt16)))
	}
	return dst
}

// s16Adapter passes samples through unchanged.
type s16Adapter struct{}

func (s16Adapter) bytesPerSample() int { return 2 }

func (s16Adapter) convert(raw []byte, channels int, dst []int) []int {
	frameBytes := 2 * channels
	for off := 0; off+frameBytes <= len(raw); off += frameBytes {
		dst = append(dst, int(int16(binary.LittleEndian.Uint16(raw[off:]))))
	}
	return dst
}

// u16Adapter recenters unsigned samples by subtracting the signed maximum
// before reinterpreting them as signed.
type u16Adapter struct{}

func (u16Adapter) bytesPerSample() int { return 2 }

func (u16Adapter) convert(raw []byte, channels int, dst []int) []int {
	frameBytes := 2 * channels
	for off := 0; off+frameBytes <= len(raw); off += frameBytes {
		v := int(binary.LittleEndian.Uint16(raw[off:])) - math.MaxInt16
		dst = append(dst, int(int16(v)))
	}
	return dst
}
