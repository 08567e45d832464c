package components

import (
	"testing"

	cfg "github.com/automoto/bastion/config"
)

func TestActionEdges(t *testing.T) {
	var in InputData

	frames := []struct {
		pressed bool
		want    ActionState
	}{
		{true, ActionState{Pressed: true, JustPressed: true}},
		{true, ActionState{Pressed: true}},
		{false, ActionState{JustReleased: true}},
		{false, ActionState{}},
	}

	for i, f := range frames {
		in.Previous = in.Current
		in.Current = [cfg.ActionCount]bool{}
		in.Current[cfg.ActionPause] = f.pressed

		if got := in.Action(cfg.ActionPause); got != f.want {
			t.Errorf("frame %d: %+v, want %+v", i, got, f.want)
		}
	}
}
