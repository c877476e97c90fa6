package ffi

import (
	"sync"
	"testing"
	"time"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []Event
}

func (o *recordingObserver) OnUserDataEvent(e Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func TestBindLookupRelease(t *testing.T) {
	before := Bound()
	ud := Bind("payload")
	if ud == 0 {
		t.Fatal("Bind returned zero user data")
	}
	v, ok := Lookup(ud)
	if !ok || v != "payload" {
		t.Fatalf("Lookup = (%v, %v), want (payload, true)", v, ok)
	}
	if Bound() != before+1 {
		t.Errorf("Bound = %d, want %d", Bound(), before+1)
	}
	Release(ud)
	if _, ok := Lookup(ud); ok {
		t.Error("Lookup after Release still finds the capability")
	}
	if Bound() != before {
		t.Errorf("Bound after Release = %d, want %d", Bound(), before)
	}
}

func TestBindIDsAreUnique(t *testing.T) {
	a := Bind(1)
	b := Bind(2)
	defer Release(a)
	defer Release(b)
	if a == b {
		t.Fatalf("two binds returned the same id %d", a)
	}
}

func TestReleaseUnknownIsIgnored(t *testing.T) {
	before := Bound()
	Release(UserData(1 << 40))
	if Bound() != before {
		t.Errorf("Bound changed after releasing unknown id")
	}
}

func TestObserverSeesBindAndReleaseOnce(t *testing.T) {
	obs := &recordingObserver{}
	Subscribe(obs)
	defer Unsubscribe(obs)

	ud := Bind("x")
	Release(ud)
	Release(ud)

	if len(obs.events) != 2 {
		t.Fatalf("got %d events, want 2", len(obs.events))
	}
	if obs.events[0].Type != EventBound || obs.events[1].Type != EventReleased {
		t.Errorf("events = %+v, want bound then released", obs.events)
	}
	for _, e := range obs.events {
		if e.UserData != ud {
			t.Errorf("event user data = %d, want %d", e.UserData, ud)
		}
	}
}

func TestRegistryConcurrentUse(t *testing.T) {
	before := Bound()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ud := Bind(i)
			if v, ok := Lookup(ud); !ok || v != i {
				t.Errorf("Lookup(%d) = (%v, %v)", ud, v, ok)
			}
			Release(ud)
		}(i)
	}
	wg.Wait()
	if Bound() != before {
		t.Errorf("Bound = %d, want %d", Bound(), before)
	}
}

// selfRemovingObserver unsubscribes itself when it sees a release.
type selfRemovingObserver struct {
	released int
}

func (o *selfRemovingObserver) OnUserDataEvent(e Event) {
	if e.Type == EventReleased {
		o.released++
		Unsubscribe(o)
	}
}

func TestObserverUnsubscribesDuringRelease(t *testing.T) {
	obs := &selfRemovingObserver{}
	Subscribe(obs)

	done := make(chan struct{})
	go func() {
		defer close(done)
		Release(Bind(1))
		Release(Bind(2))
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Release blocked while an observer unsubscribed itself")
	}
	if obs.released != 1 {
		t.Errorf("observer saw %d releases, want 1", obs.released)
	}

	other := &recordingObserver{}
	Subscribe(other)
	Unsubscribe(other)
}

// sliceObserver has a non-comparable dynamic type.
type sliceObserver struct{ seen []Event }

func (sliceObserver) OnUserDataEvent(Event) {}

func TestUnsubscribeNonComparableObserver(t *testing.T) {
	Unsubscribe(sliceObserver{})
	Unsubscribe(nil)

	obs := &recordingObserver{}
	Subscribe(obs)
	Unsubscribe(obs)
	Release(Bind("after"))
	if len(obs.events) != 0 {
		t.Errorf("unsubscribed observer got %d events", len(obs.events))
	}
}
