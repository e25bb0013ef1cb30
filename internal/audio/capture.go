package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"go.uber.org/zap"
)

// DefaultPollInterval bounds how long the capture loop waits between stop
// checks. Shutdown latency is at most roughly this interval plus the time
// to finalize the encoder.
const DefaultPollInterval = 150 * time.Millisecond

// Engine opens the default input device and streams it to disk as mono
// 16-bit PCM. At most one capture per engine is expected to be live; the
// caller's active-recording slot enforces that.
type Engine struct {
	log  *zap.Logger
	poll time.Duration
	open streamOpener
}

func NewEngine(log *zap.Logger, poll time.Duration) *Engine {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &Engine{log: log, poll: poll, open: openDefaultInputStream}
}

// Capture is the handle for one in-flight recording.
type Capture struct {
	log    *zap.Logger
	stream inputStream
	sink   *wavSink
	poll   time.Duration

	stop   chan struct{}
	devErr chan error
	done   chan error

	stopOnce sync.Once
	result   error
}

// Begin opens the device, sets up the encoder at targetPath, starts the
// stream, and spawns the capture loop. Device, format, and stream start
// failures are returned immediately with no goroutine left behind.
func (e *Engine) Begin(targetPath string) (*Capture, error) {
	stream, err := e.open()
	if err != nil {
		return nil, err
	}
	info := stream.Info()
	if info.channels < 1 {
		stream.Close()
		return nil, fmt.Errorf("input device reported %d channels", info.channels)
	}

	adapter, err := adapterFor(info.format)
	if err != nil {
		stream.Close()
		return nil, err
	}

	sink, err := newWavSink(targetPath, info.sampleRate)
	if err != nil {
		stream.Close()
		return nil, err
	}

	c := &Capture{
		log:    e.log,
		stream: stream,
		sink:   sink,
		poll:   e.poll,
		stop:   make(chan struct{}, 1),
		devErr: make(chan error, 1),
		done:   make(chan error, 1),
	}

	// One scratch buffer is enough: the device delivers batches serially
	// on its own callback thread.
	var scratch []int
	data := func(raw []byte) {
		defer func() {
			if r := recover(); r != nil {
				c.reportDeviceError(fmt.Errorf("capture callback panicked: %v", r))
			}
		}()
		scratch = adapter.convert(raw, info.channels, scratch[:0])
		c.sink.append(scratch)
	}

	if err := stream.Start(data, c.reportDeviceError); err != nil {
		stream.Close()
		_ = sink.finalize()
		return nil, err
	}

	e.log.Info("capture started",
		zap.String("path", targetPath),
		zap.String("format", info.format.String()),
		zap.Int("channels", info.channels),
		zap.Int("sampleRate", info.sampleRate))

	go c.run()
	return c, nil
}

// run polls for the stop signal at a bounded interval. A panic anywhere in
// the loop is converted into the capture's outcome instead of crashing the
// process, so the controller can still move the session to its error state.
func (c *Capture) run() {
	defer func() {
		if r := recover(); r != nil {
			c.done <- fmt.Errorf("capture loop panicked: %v", r)
		}
	}()

	for {
		select {
		case <-c.stop:
			c.done <- c.teardown(nil)
			return
		case devErr := <-c.devErr:
			c.log.Warn("capture aborted by device error", zap.Error(devErr))
			c.done <- c.teardown(devErr)
			return
		case <-time.After(c.poll):
		}
	}
}

// teardown stops the device stream first, then finalizes the encoder. No
// data callback may still be running once the encoder is finalized.
func (c *Capture) teardown(cause error) error {
	c.stream.Close()
	if err := c.sink.finalize(); err != nil && cause == nil {
		return err
	}
	return cause
}

// Stop signals the capture loop and waits for the artifact to be
// finalized. It returns the capture's overall outcome and is safe to call
// more than once.
func (c *Capture) Stop() error {
	c.stopOnce.Do(func() {
		select {
		case c.stop <- struct{}{}:
		default:
		}
		c.result = <-c.done
	})
	return c.result
}

func (c *Capture) reportDeviceError(err error) {
	select {
	case c.devErr <- err:
	default:
	}
}

// wavSink owns the file-backed mono 16-bit PCM encoder. The mutex guards
// against a data callback racing the finalize.
type wavSink struct {
	mu     sync.Mutex
	file   *os.File
	enc    *wav.Encoder
	buf    *goaudio.IntBuffer
	closed bool
}

func newWavSink(path string, sampleRate int) (*wavSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating audio file: %w", err)
	}
	return &wavSink{
		file: f,
		enc:  wav.NewEncoder(f, sampleRate, 16, 1, 1),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}, nil
}

// append writes one batch of samples. Write failures are swallowed here so
// the callback never blocks on error handling; a broken encoder surfaces
// when the capture is finalized.
func (s *wavSink) append(samples []int) {
	if len(samples) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.buf.Data = samples
	_ = s.enc.Write(s.buf)
}

// finalize closes the encoder so the file becomes a complete artifact.
// A capture with zero samples still produces a valid, empty WAV.
func (s *wavSink) finalize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	encErr := s.enc.Close()
	closeErr := s.file.Close()
	if encErr != nil {
		return fmt.Errorf("finalizing wav encoder: %w", encErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing audio file: %w", closeErr)
	}
	return nil
}
