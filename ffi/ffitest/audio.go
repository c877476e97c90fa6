package ffitest

import (
	"runtime"
	"slices"
	"sync"

	"github.com/phanxgames/sfml/ffi"
)

type fakeRecorder struct {
	ud       ffi.UserData
	rate     uint32
	channels uint32
	interval int64
	device   *ffi.StdString // owned by the recorder
	running  bool
}

// SetRecorderAvailable controls what the capture availability query reports.
// Starting a recorder fails while unavailable.
func (l *Library) SetRecorderAvailable(ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recorderAvailable = ok
}

// SetDevices replaces the capture device list and the default device.
func (l *Library) SetDevices(defaultDevice string, devices []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.defaultDevice = defaultDevice
	l.devices = append([]string(nil), devices...)
}

// Recording reports whether rec is capturing.
func (l *Library) Recording(rec *ffi.CustomSoundRecorder) bool {
	return get[fakeRecorder](l, ClassCustomSoundRecorder, rec).running
}

// ProcessingInterval returns the interval last set on rec, in microseconds.
func (l *Library) ProcessingInterval(rec *ffi.CustomSoundRecorder) int64 {
	return get[fakeRecorder](l, ClassCustomSoundRecorder, rec).interval
}

// DeliverSamples plays the capture thread: each chunk is handed to rec's
// process callback from a separate OS thread, in order, until the callback
// asks to stop. It returns how many chunks were delivered. Nothing is
// delivered unless rec is recording.
func (l *Library) DeliverSamples(rec *ffi.CustomSoundRecorder, chunks ...[]int16) int {
	fr := get[fakeRecorder](l, ClassCustomSoundRecorder, rec)
	delivered := 0
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		for _, chunk := range chunks {
			if !fr.running {
				return
			}
			var p *int16
			if len(chunk) > 0 {
				p = &chunk[0]
			}
			delivered++
			if !ffi.RecorderProcessTrampoline(p, uintptr(len(chunk)), fr.ud) {
				fr.running = false
				return
			}
		}
	}()
	wg.Wait()
	return delivered
}

func (l *Library) wireAudio() {
	recorder := func(r *ffi.CustomSoundRecorder) *fakeRecorder {
		return get[fakeRecorder](l, ClassCustomSoundRecorder, r)
	}

	l.SoundRecorderIsAvailable = func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.recorderAvailable
	}
	l.SoundRecorderDefaultDevice = func() *ffi.StdString {
		l.mu.Lock()
		name := l.defaultDevice
		l.mu.Unlock()
		return l.NewStdString(name)
	}
	l.SoundRecorderAvailableDevices = func() *ffi.StdStringVector {
		l.mu.Lock()
		devices := slices.Clone(l.devices)
		l.mu.Unlock()
		return l.NewStdStringVector(devices)
	}

	l.CustomSoundRecorderNew = func(ud ffi.UserData) *ffi.CustomSoundRecorder {
		l.mu.Lock()
		name := l.defaultDevice
		l.mu.Unlock()
		fr := &fakeRecorder{ud: ud, channels: 1, interval: 100_000}
		rec := alloc[ffi.CustomSoundRecorder](l, ClassCustomSoundRecorder, fr)
		if rec != nil {
			fr.device = borrow[ffi.StdString](l, ClassStdString, newFakeStdString(name))
		}
		return rec
	}
	l.CustomSoundRecorderDelete = func(r *ffi.CustomSoundRecorder) {
		if r == nil {
			return
		}
		fr := recorder(r)
		if fr.running {
			fr.running = false
			ffi.RecorderStopTrampoline(fr.ud)
		}
		drop(l, fr.device)
		free(l, ClassCustomSoundRecorder, r)
	}
	l.CustomSoundRecorderStart = func(r *ffi.CustomSoundRecorder, rate uint32) bool {
		fr := recorder(r)
		if !l.SoundRecorderIsAvailable() || fr.running || rate == 0 {
			return false
		}
		if !ffi.RecorderStartTrampoline(fr.ud) {
			return false
		}
		fr.rate, fr.running = rate, true
		return true
	}
	l.CustomSoundRecorderStop = func(r *ffi.CustomSoundRecorder) {
		fr := recorder(r)
		if !fr.running {
			return
		}
		fr.running = false
		ffi.RecorderStopTrampoline(fr.ud)
	}
	l.CustomSoundRecorderSampleRate = func(r *ffi.CustomSoundRecorder) uint32 { return recorder(r).rate }
	l.CustomSoundRecorderSetProcessingInterval = func(r *ffi.CustomSoundRecorder, us int64) {
		recorder(r).interval = us
	}
	l.CustomSoundRecorderSetDevice = func(r *ffi.CustomSoundRecorder, name *byte) bool {
		n := readCString(name)
		l.mu.Lock()
		known := slices.Contains(l.devices, n)
		l.mu.Unlock()
		if !known {
			return false
		}
		fr := recorder(r)
		drop(l, fr.device)
		fr.device = borrow[ffi.StdString](l, ClassStdString, newFakeStdString(n))
		return true
	}
	l.CustomSoundRecorderDevice = func(r *ffi.CustomSoundRecorder) *ffi.StdString { return recorder(r).device }
	l.CustomSoundRecorderSetChannelCount = func(r *ffi.CustomSoundRecorder, n uint32) {
		if n == 1 || n == 2 {
			recorder(r).channels = n
		}
	}
	l.CustomSoundRecorderChannelCount = func(r *ffi.CustomSoundRecorder) uint32 { return recorder(r).channels }
}
