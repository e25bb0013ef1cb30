package audio

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gen2brain/malgo"
)

// ErrNoInputDevice is returned when the system has no capture device.
var ErrNoInputDevice = errors.New("no audio input device found")

// streamInfo describes the native configuration of an opened input stream.
type streamInfo struct {
	deviceName string
	format     sampleFormat
	channels   int
	sampleRate int
}

// inputStream is the device-facing side of a capture. The audio subsystem
// owns the callback thread; the stream's contract is that no data callback
// runs after Close returns.
type inputStream interface {
	Info() streamInfo
	// Start begins delivery. data receives raw interleaved sample batches;
	// hardErr is invoked when the device dies mid-stream.
	Start(data func(raw []byte), hardErr func(error)) error
	// Close stops the device and detaches the callbacks.
	Close()
}

// streamOpener opens the system default input device in its native
// configuration. The engine swaps it for a stub in tests.
type streamOpener func() (inputStream, error)

// malgoStream drives a miniaudio capture device.
type malgoStream struct {
	ctx     *malgo.AllocatedContext
	device  *malgo.Device
	info    streamInfo
	closed  atomic.Bool
	data    func(raw []byte)
	hardErr func(error)
}

func openDefaultInputStream() (inputStream, error) {
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing audio context: %w", err)
	}

	devices, err := ctx.Devices(malgo.Capture)
	if err != nil {
		closeContext(ctx)
		return nil, fmt.Errorf("enumerating input devices: %w", err)
	}
	if len(devices) == 0 {
		closeContext(ctx)
		return nil, ErrNoInputDevice
	}

	deviceName := devices[0].Name()
	for _, d := range devices {
		if d.IsDefault != 0 {
			deviceName = d.Name()
			break
		}
	}

	s := &malgoStream{ctx: ctx}

	// Zero format, channels, and rate make miniaudio hand us the device's
	// native configuration instead of converting.
	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatUnknown
	cfg.Capture.Channels = 0
	cfg.SampleRate = 0
	cfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: func(_, input []byte, frameCount uint32) {
			s.onData(input)
		},
		Stop: func() {
			s.onStop()
		},
	}

	device, err := malgo.InitDevice(ctx.Context, cfg, callbacks)
	if err != nil {
		closeContext(ctx)
		return nil, fmt.Errorf("opening default input device: %w", err)
	}

	s.device = device
	s.info = streamInfo{
		deviceName: deviceName,
		format:     fromMalgoFormat(device.CaptureFormat()),
		channels:   int(device.CaptureChannels()),
		sampleRate: int(device.SampleRate()),
	}
	return s, nil
}

func (s *malgoStream) Info() streamInfo { return s.info }

func (s *malgoStream) Start(data func(raw []byte), hardErr func(error)) error {
	s.data = data
	s.hardErr = hardErr
	if err := s.device.Start(); err != nil {
		return fmt.Errorf("starting input device: %w", err)
	}
	return nil
}

func (s *malgoStream) onData(raw []byte) {
	if s.closed.Load() || s.data == nil {
		return
	}
	s.data(raw)
}

// onStop fires whenever the device stops. A stop we did not ask for means
// the device died underneath us.
func (s *malgoStream) onStop() {
	if s.closed.Load() || s.hardErr == nil {
		return
	}
	s.hardErr(errors.New("input device stopped unexpectedly"))
}

func (s *malgoStream) Close() {
	if s.closed.Swap(true) {
		return
	}
	// Uninit blocks until the device's callback thread has drained.
	s.device.Uninit()
	closeContext(s.ctx)
}

func closeContext(ctx *malgo.AllocatedContext) {
	_ = ctx.Uninit()
	ctx.Free()
}

func fromMalgoFormat(f malgo.FormatType) sampleFormat {
	switch f {
	case malgo.FormatF32:
		return formatF32
	case malgo.FormatS16:
		return formatS16
	default:
		return formatUnknown
	}
}
