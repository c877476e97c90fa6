package sfml

import (
	"fmt"
	"time"

	"github.com/phanxgames/sfml/ffi"
	"go.uber.org/zap"
)

// DefaultSampleRate is the capture rate used when none is configured.
const DefaultSampleRate = 44100

// SoundRecorder receives captured audio. OnProcessSamples is called on the
// capture thread with interleaved 16-bit samples; the slice is only valid for
// the duration of the call. Returning false stops the capture.
type SoundRecorder interface {
	OnProcessSamples(samples []int16) bool
}

// SoundRecorderStarter is implemented by recorders that want a hook before
// capture begins. Returning false aborts the start.
type SoundRecorderStarter interface {
	OnStart() bool
}

// SoundRecorderStopper is implemented by recorders that want a hook after
// capture ends.
type SoundRecorderStopper interface {
	OnStop()
}

var customSoundRecorderClass = &Class[ffi.CustomSoundRecorder]{
	Name:    "CustomSoundRecorder",
	Destroy: func(r *ffi.CustomSoundRecorder) { lib().CustomSoundRecorderDelete(r) },
}

// SoundRecorderDriver runs a foreign capture device and feeds a
// SoundRecorder.
type SoundRecorderDriver struct {
	box      *FBox[ffi.CustomSoundRecorder]
	ud       ffi.UserData
	recorder SoundRecorder
}

// NewSoundRecorderDriver creates a driver for r.
func NewSoundRecorderDriver(r SoundRecorder) (*SoundRecorderDriver, error) {
	ud := ffi.Bind(r)
	box, err := Acquire(customSoundRecorderClass, lib().CustomSoundRecorderNew(ud))
	if err != nil {
		ffi.Release(ud)
		return nil, err
	}
	return &SoundRecorderDriver{box: box, ud: ud, recorder: r}, nil
}

func (d *SoundRecorderDriver) raw() *ffi.CustomSoundRecorder { return d.box.Raw() }

// Recorder returns the value receiving samples.
func (d *SoundRecorderDriver) Recorder() SoundRecorder { return d.recorder }

// Start begins capturing at sampleRate samples per second.
func (d *SoundRecorderDriver) Start(sampleRate uint32) error {
	if !lib().CustomSoundRecorderStart(d.raw(), sampleRate) {
		Logger().Warn("sound recorder failed to start", zap.Uint32("sample_rate", sampleRate))
		return fmt.Errorf("%w at %d Hz", ErrRecorderStart, sampleRate)
	}
	return nil
}

// Stop ends the capture and waits for the capture thread. It is a no-op if
// not capturing.
func (d *SoundRecorderDriver) Stop() { lib().CustomSoundRecorderStop(d.raw()) }

// SampleRate returns the rate of the current or last capture.
func (d *SoundRecorderDriver) SampleRate() uint32 {
	return lib().CustomSoundRecorderSampleRate(d.raw())
}

// SetProcessingInterval sets how often captured samples are delivered. The
// foreign side has microsecond resolution.
func (d *SoundRecorderDriver) SetProcessingInterval(interval time.Duration) {
	lib().CustomSoundRecorderSetProcessingInterval(d.raw(), interval.Microseconds())
}

// SetDevice selects the capture device by name.
func (d *SoundRecorderDriver) SetDevice(name string) error {
	if !lib().CustomSoundRecorderSetDevice(d.raw(), ffi.CString(name)) {
		return fmt.Errorf("%w: %q", ErrRecorderDevice, name)
	}
	return nil
}

// Device returns the name of the selected capture device.
func (d *SoundRecorderDriver) Device() string {
	return stdString(lib().CustomSoundRecorderDevice(d.raw()))
}

// SetChannelCount selects mono (1) or stereo (2) capture. Other values are
// ignored by the foreign side.
func (d *SoundRecorderDriver) SetChannelCount(n uint32) {
	lib().CustomSoundRecorderSetChannelCount(d.raw(), n)
}

// ChannelCount returns the number of captured channels.
func (d *SoundRecorderDriver) ChannelCount() uint32 {
	return lib().CustomSoundRecorderChannelCount(d.raw())
}

// Apply configures the driver from cfg. An empty device name keeps the
// current device.
func (d *SoundRecorderDriver) Apply(cfg RecorderConfig) error {
	if cfg.Device != "" {
		if err := d.SetDevice(cfg.Device); err != nil {
			return err
		}
	}
	if cfg.ChannelCount != 0 {
		d.SetChannelCount(cfg.ChannelCount)
	}
	if cfg.ProcessingInterval > 0 {
		d.SetProcessingInterval(cfg.ProcessingInterval)
	}
	return nil
}

// Dispose stops any capture, destroys the foreign recorder, then releases
// the SoundRecorder registration. Subsequent calls are no-ops.
func (d *SoundRecorderDriver) Dispose() {
	if d.box.Disposed() {
		return
	}
	d.Stop()
	d.box.Dispose()
	ffi.Release(d.ud)
}

// IsSoundRecorderAvailable reports whether the system can capture audio.
func IsSoundRecorderAvailable() bool {
	return lib().SoundRecorderIsAvailable()
}

// DefaultSoundRecorderDevice returns the name of the default capture device,
// or "" if the foreign side returned none.
func DefaultSoundRecorderDevice() string {
	s, err := newCppString(lib().SoundRecorderDefaultDevice())
	if err != nil {
		return ""
	}
	defer s.Dispose()
	return s.String()
}

// SoundRecorderDevices returns the names of all capture devices.
func SoundRecorderDevices() []string {
	v, err := newCppStringVector(lib().SoundRecorderAvailableDevices())
	if err != nil {
		return nil
	}
	defer v.Dispose()
	return v.Strings()
}
