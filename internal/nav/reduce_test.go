package nav

import "testing"

const width = 100.0

func params() Params { return DefaultParams(width) }

// swipe runs begin/update/end through the reducer and, when the end starts
// an animation, settles it immediately.
func swipe(s State, translation, velocity float64) (State, Effect) {
	p := params()
	s, _ = Reduce(s, GestureBegin{}, p)
	s, _ = Reduce(s, GestureUpdate{Translation: translation, Velocity: velocity}, p)
	s, eff := Reduce(s, GestureEnd{Translation: translation, Velocity: velocity}, p)
	if eff.Kind == EffectAnimate {
		s, _ = Reduce(s, AnimationFrame{Value: eff.Target}, p)
		s, _ = Reduce(s, AnimationSettled{}, p)
	}
	return s, eff
}

func TestForwardCommitsCycleAndWrap(t *testing.T) {
	for n := 1; n <= 12; n++ {
		s := State{Count: n}
		for i := 0; i < 3*n; i++ {
			want := (i + 1) % n
			s, _ = swipe(s, -30, 0)
			if s.Index != want {
				t.Fatalf("N=%d after %d forward commits: index %d, want %d", n, i+1, s.Index, want)
			}
			if s.Offset != 0 || s.Phase != PhaseIdle {
				t.Fatalf("expected rest after commit, got %+v", s)
			}
		}
	}
}

func TestBackwardAtFirstCardNeverCommits(t *testing.T) {
	for _, tc := range []struct{ translation, velocity float64 }{
		{5, 0},
		{99, 0},
		{400, 5000},
		{0, 5000},
	} {
		s := State{Count: 10}
		p := params()
		s, _ = Reduce(s, GestureBegin{}, p)
		s, _ = Reduce(s, GestureUpdate{Translation: tc.translation}, p)
		s, eff := Reduce(s, GestureEnd{Translation: tc.translation, Velocity: tc.velocity}, p)
		if s.Phase != PhaseReturning {
			t.Fatalf("%+v: expected returning, got %v", tc, s.Phase)
		}
		if eff.Kind != EffectAnimate || eff.Target != 0 || eff.Velocity != tc.velocity {
			t.Fatalf("%+v: expected spring back to 0 seeded with velocity, got %+v", tc, eff)
		}
		if eff.Spring != p.Return {
			t.Fatalf("%+v: expected return spring", tc)
		}
		s, _ = Reduce(s, AnimationSettled{}, p)
		if s.Index != 0 || s.Offset != 0 || s.Phase != PhaseIdle {
			t.Fatalf("%+v: expected untouched index at rest, got %+v", tc, s)
		}
	}
}

func TestScenarioFirstForwardSwipe(t *testing.T) {
	s := State{Count: 10}
	p := params()
	s, _ = Reduce(s, GestureBegin{}, p)
	s, _ = Reduce(s, GestureUpdate{Translation: -20}, p)
	if s.Offset != -20 || s.Phase != PhaseDragging {
		t.Fatalf("expected 1:1 follow, got %+v", s)
	}
	s, eff := Reduce(s, GestureEnd{Translation: -20, Velocity: -50}, p)
	if s.Phase != PhaseCommitting || s.Pending != Next {
		t.Fatalf("expected forward commit, got %+v", s)
	}
	if eff.Kind != EffectAnimate || eff.Target != -width || eff.Velocity != -50 || eff.Spring != p.Commit {
		t.Fatalf("unexpected fly-off effect %+v", eff)
	}
	if s.Index != 0 {
		t.Fatalf("index must not change before the fly-off settles")
	}
	s, _ = Reduce(s, AnimationFrame{Value: -70}, p)
	if s.Offset != -70 {
		t.Fatalf("expected animated offset, got %v", s.Offset)
	}
	s, _ = Reduce(s, AnimationSettled{}, p)
	if s.Index != 1 || s.PreviewIndex() != 2 || s.Offset != 0 {
		t.Fatalf("expected index 1 / preview 2 at rest, got %+v", s)
	}
}

func TestScenarioLastCardWraps(t *testing.T) {
	s, _ := swipe(State{Index: 9, Count: 10}, -60, 0)
	if s.Index != 0 || s.PreviewIndex() != 1 {
		t.Fatalf("expected wrap to 0 / preview 1, got %+v", s)
	}
}

func TestScenarioShortBackwardSwipeReturns(t *testing.T) {
	s, eff := swipe(State{Index: 3, Count: 10}, 10, 40)
	if eff.Target != 0 || eff.Spring != params().Return {
		t.Fatalf("expected return-to-rest effect, got %+v", eff)
	}
	if s.Index != 3 || s.Offset != 0 {
		t.Fatalf("expected index 3 at rest, got %+v", s)
	}
}

func TestBackwardSwipeCommits(t *testing.T) {
	s, eff := swipe(State{Index: 3, Count: 10}, 16, 0)
	if eff.Target != width {
		t.Fatalf("expected fly-off to +width, got %+v", eff)
	}
	if s.Index != 2 || s.PreviewIndex() != 3 {
		t.Fatalf("expected index 2, got %+v", s)
	}
}

func TestThresholds(t *testing.T) {
	cases := []struct {
		name        string
		translation float64
		velocity    float64
		commit      bool
	}{
		{"exactly distance threshold", -15, 0, false},
		{"just past distance threshold", -15.5, 0, true},
		{"exactly velocity threshold", -1, -120, false},
		{"fast flick", -1, -121, true},
		{"fast flick opposite to drag", -1, 500, true},
		{"flick from rest decides direction", 0, -300, true},
		{"no movement", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := swipe(State{Index: 4, Count: 10}, tc.translation, tc.velocity)
			if got := s.Index != 4; got != tc.commit {
				t.Fatalf("commit = %v, want %v (index %d)", got, tc.commit, s.Index)
			}
		})
	}
}

func TestFlickFromRestUsesVelocitySign(t *testing.T) {
	s, eff := swipe(State{Index: 4, Count: 10}, 0, 300)
	if s.Index != 3 || eff.Target != width {
		t.Fatalf("expected previous commit, got index %d effect %+v", s.Index, eff)
	}
}

func TestBeginDuringCommitLandsPendingSwipe(t *testing.T) {
	p := params()
	s := State{Index: 2, Count: 10}
	s, _ = Reduce(s, GestureBegin{}, p)
	s, _ = Reduce(s, GestureEnd{Translation: -50}, p)
	s, _ = Reduce(s, AnimationFrame{Value: -70}, p)

	s, eff := Reduce(s, GestureBegin{}, p)
	if eff.Kind != EffectCancel {
		t.Fatalf("expected cancel effect, got %+v", eff)
	}
	if s.Phase != PhaseDragging || s.Index != 3 || s.Offset != 0 {
		t.Fatalf("expected committed swipe to land on index 3 while dragging, got %+v", s)
	}
	// A stale settle from the cancelled spring must not advance again.
	s, _ = Reduce(s, AnimationSettled{}, p)
	if s.Index != 3 || s.Phase != PhaseDragging {
		t.Fatalf("stale settle leaked: %+v", s)
	}
}

func TestBeginDuringBackwardCommitAndWrap(t *testing.T) {
	p := params()
	s := State{Index: 9, Count: 10}
	s, _ = Reduce(s, GestureBegin{}, p)
	s, _ = Reduce(s, GestureEnd{Translation: -50}, p)
	s, _ = Reduce(s, GestureBegin{}, p)
	if s.Index != 0 {
		t.Fatalf("expected wrap to 0, got %d", s.Index)
	}

	s = State{Index: 4, Count: 10}
	s, _ = Reduce(s, GestureBegin{}, p)
	s, _ = Reduce(s, GestureEnd{Translation: 50}, p)
	s, _ = Reduce(s, GestureBegin{}, p)
	if s.Index != 3 {
		t.Fatalf("expected previous to land on 3, got %d", s.Index)
	}
}

func TestBeginDuringReturnCancelsOnly(t *testing.T) {
	p := params()
	s := State{Index: 2, Count: 10}
	s, _ = Reduce(s, GestureBegin{}, p)
	s, _ = Reduce(s, GestureEnd{Translation: -3}, p)
	s, _ = Reduce(s, AnimationFrame{Value: -2}, p)

	s, eff := Reduce(s, GestureBegin{}, p)
	if eff.Kind != EffectCancel || s.Index != 2 || s.Phase != PhaseDragging {
		t.Fatalf("unexpected state %+v effect %+v", s, eff)
	}

	if _, eff := Reduce(State{Count: 10}, GestureBegin{}, p); eff.Kind != EffectNone {
		t.Fatalf("begin at rest needs no cancel, got %+v", eff)
	}
}

func TestEventsOutOfPhaseAreIgnored(t *testing.T) {
	p := params()
	idle := State{Index: 5, Count: 10}
	for _, ev := range []Event{
		GestureUpdate{Translation: 30},
		GestureEnd{Translation: -90, Velocity: -900},
		AnimationFrame{Value: 12},
		AnimationSettled{},
	} {
		s, eff := Reduce(idle, ev, p)
		if s != idle || eff.Kind != EffectNone {
			t.Fatalf("%T changed idle state: %+v %+v", ev, s, eff)
		}
	}

	dragging := State{Index: 5, Count: 10, Phase: PhaseDragging, Offset: 4}
	if s, _ := Reduce(dragging, AnimationFrame{Value: 99}, p); s.Offset != 4 {
		t.Fatalf("animation frame must not move a dragged card")
	}
}

func TestPreviewAlwaysForward(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for i := 0; i < n; i++ {
			for _, off := range []float64{-50, 0, 50} {
				s := State{Index: i, Count: n, Offset: off, Phase: PhaseDragging}
				if got, want := s.PreviewIndex(), (i+1)%n; got != want {
					t.Fatalf("N=%d index=%d offset=%v: preview %d, want %d", n, i, off, got, want)
				}
			}
		}
	}
}

func TestPhaseAndDirectionStrings(t *testing.T) {
	if PhaseCommitting.String() != "committing" || Phase(42).String() != "Phase(42)" {
		t.Fatalf("unexpected phase strings")
	}
	if Next.String() != "next" || Previous.String() != "previous" {
		t.Fatalf("unexpected direction strings")
	}
}
