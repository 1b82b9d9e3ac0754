package gesture

import (
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

func TestMicroMovementDoesNotActivate(t *testing.T) {
	r := New(2)
	r.Press(40, at(0))
	if ev := r.Move(41, at(10)); ev != nil {
		t.Fatalf("expected no events below activation offset, got %v", ev)
	}
	if ev := r.Release(41, at(20)); ev != nil {
		t.Fatalf("expected no end for an inactive press, got %v", ev)
	}
	if r.Active() {
		t.Fatalf("expected inactive recognizer")
	}
}

func TestDragLifecycle(t *testing.T) {
	r := New(2)
	r.Press(40, at(0))

	ev := r.Move(37, at(100))
	if len(ev) != 2 || ev[0].Kind != Begin || ev[1].Kind != Update {
		t.Fatalf("expected begin+update on activation, got %v", ev)
	}
	if ev[1].Translation != -3 || ev[1].Velocity != -30 {
		t.Fatalf("unexpected update %+v", ev[1])
	}

	ev = r.Move(27, at(150))
	if len(ev) != 1 || ev[0].Translation != -13 || ev[0].Velocity != -200 {
		t.Fatalf("unexpected update %+v", ev)
	}

	ev = r.Release(27, at(160))
	if len(ev) != 1 || ev[0].Kind != End {
		t.Fatalf("expected end, got %v", ev)
	}
	if ev[0].Translation != -13 || ev[0].Velocity != -200 {
		t.Fatalf("a quick release must keep the flick velocity, got %+v", ev[0])
	}
	if r.Active() {
		t.Fatalf("expected recognizer to reset after release")
	}
}

func TestReleaseAfterPauseHasNoVelocity(t *testing.T) {
	r := New(1)
	r.Press(10, at(0))
	r.Move(30, at(50))
	ev := r.Release(30, at(600))
	if len(ev) != 1 || ev[0].Velocity != 0 || ev[0].Translation != 20 {
		t.Fatalf("expected a still release, got %+v", ev)
	}
}

func TestReleaseAtNewPositionUpdatesVelocity(t *testing.T) {
	r := New(1)
	r.Press(10, at(0))
	r.Move(12, at(100))
	ev := r.Release(22, at(150))
	if ev[0].Translation != 12 || ev[0].Velocity != 200 {
		t.Fatalf("unexpected end %+v", ev[0])
	}
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	r := New(0)
	if ev := r.Move(50, at(0)); ev != nil {
		t.Fatalf("expected nothing, got %v", ev)
	}
	if ev := r.Release(50, at(0)); ev != nil {
		t.Fatalf("expected nothing, got %v", ev)
	}
}

func TestCancelEndsActivePan(t *testing.T) {
	r := New(1)
	r.Press(10, at(0))
	r.Move(5, at(50))
	ev := r.Cancel()
	if len(ev) != 1 || ev[0].Kind != End || ev[0].Translation != -5 {
		t.Fatalf("expected end on cancel, got %v", ev)
	}
	if ev := r.Cancel(); ev != nil {
		t.Fatalf("second cancel must be silent, got %v", ev)
	}
}

func TestKindString(t *testing.T) {
	if Begin.String() != "begin" || End.String() != "end" || Kind(9).String() != "unknown" {
		t.Fatalf("unexpected kind strings")
	}
}
