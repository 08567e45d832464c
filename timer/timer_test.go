package timer

import "testing"

func TestOnceFiresExactlyOnce(t *testing.T) {
	tm := New(0.5, Once)

	steps := []struct {
		dt           float64
		justFinished bool
		finished     bool
	}{
		{0.25, false, false},
		{0.125, false, false},
		{0.125, true, true}, // reaches 0.5 exactly
		{0.25, false, true},
		{0.25, false, true},
	}

	for i, s := range steps {
		tm.Tick(s.dt)
		if tm.JustFinished() != s.justFinished {
			t.Fatalf("step %d: JustFinished = %v, want %v", i, tm.JustFinished(), s.justFinished)
		}
		if tm.Finished() != s.finished {
			t.Fatalf("step %d: Finished = %v, want %v", i, tm.Finished(), s.finished)
		}
	}
}

func TestOnceLargeStepOvershoots(t *testing.T) {
	tm := New(0.5, Once)
	tm.Tick(3)
	if !tm.JustFinished() {
		t.Fatal("expected edge on overshooting tick")
	}
	if tm.Remaining() != 0 {
		t.Errorf("Remaining = %v, want 0", tm.Remaining())
	}
	tm.Tick(3)
	if tm.JustFinished() {
		t.Error("once timer re-triggered")
	}
}

func TestRepeatingResetsToZero(t *testing.T) {
	tm := New(1, Repeating)

	var edges []int
	for i := 0; i < 10; i++ {
		tm.Tick(0.375)
		if tm.JustFinished() {
			edges = append(edges, i)
		}
	}

	// 0.375, 0.75, 1.125 (fire, reset), 0.375, 0.75, 1.125 (fire), ...
	want := []int{2, 5, 8}
	if len(edges) != len(want) {
		t.Fatalf("edges = %v, want %v", edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Fatalf("edges = %v, want %v", edges, want)
		}
	}
}

func TestRepeatingOneEdgePerTick(t *testing.T) {
	tm := New(0.25, Repeating)
	tm.Tick(10)
	if !tm.JustFinished() {
		t.Fatal("expected edge")
	}
	if tm.Elapsed() != 0 {
		t.Errorf("Elapsed = %v, want 0 after repeat", tm.Elapsed())
	}
	tm.Tick(0.125)
	if tm.JustFinished() {
		t.Error("unexpected second edge")
	}
	if tm.Finished() {
		t.Error("repeating timer should clear Finished between edges")
	}
}

func TestZeroDuration(t *testing.T) {
	once := New(0, Once)
	once.Tick(0)
	if !once.JustFinished() {
		t.Error("zero-duration once timer should finish on first tick")
	}
	once.Tick(0)
	if once.JustFinished() {
		t.Error("zero-duration once timer fired twice")
	}

	rep := New(0, Repeating)
	for i := 0; i < 3; i++ {
		rep.Tick(0.1)
		if !rep.JustFinished() {
			t.Fatalf("tick %d: zero-duration repeating timer should fire every tick", i)
		}
	}
}

func TestRemainingAndFraction(t *testing.T) {
	tm := New(2, Once)
	tm.Tick(0.5)
	if got := tm.Remaining(); got != 1.5 {
		t.Errorf("Remaining = %v, want 1.5", got)
	}
	if got := tm.Fraction(); got != 0.25 {
		t.Errorf("Fraction = %v, want 0.25", got)
	}
	tm.Reset()
	if tm.Elapsed() != 0 || tm.Finished() || tm.JustFinished() {
		t.Error("Reset did not clear state")
	}
}

func TestFractionalStepsReachThreshold(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		mode     Mode
		dt       float64
		edge     int // 1-based tick on which the edge must occur
	}{
		{"tenths into one second", 1.0, Repeating, 0.1, 10},
		{"sixtieths into two seconds", 2.0, Once, 1.0 / 60, 120},
		{"sixtieths into one second", 1.0, Repeating, 1.0 / 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New(tt.duration, tt.mode)
			for tick := 1; tick <= tt.edge; tick++ {
				tm.Tick(tt.dt)
				if got, want := tm.JustFinished(), tick == tt.edge; got != want {
					t.Fatalf("tick %d: JustFinished = %v, want %v (elapsed %v)", tick, got, want, tm.Elapsed())
				}
			}
		})
	}
}

func TestRepeatingFractionalStepsStayOnSchedule(t *testing.T) {
	tm := New(1.0, Repeating)

	var edges []int
	for tick := 1; tick <= 30; tick++ {
		tm.Tick(0.1)
		if tm.JustFinished() {
			edges = append(edges, tick)
		}
	}

	want := []int{10, 20, 30}
	if len(edges) != len(want) {
		t.Fatalf("edges = %v, want %v", edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Fatalf("edges = %v, want %v", edges, want)
		}
	}
}
