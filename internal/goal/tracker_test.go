package goal

import (
	"errors"
	"testing"
)

func TestNewTrackerValidation(t *testing.T) {
	if NewTracker(0).Config().IsSet() {
		t.Fatalf("expected zero to be unset")
	}
	if NewTracker(1441).Config().IsSet() {
		t.Fatalf("expected out-of-range goal to be unset")
	}
	if got := NewTracker(90).Config().DailyGoalMinutes; got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
}

func TestSetDailyGoalRejectsInvalidInput(t *testing.T) {
	tr := NewTracker(60)
	for _, input := range []string{"", "abc", "0", "-5", "1441", "12.5"} {
		if _, err := tr.SetDailyGoal(input); !errors.Is(err, ErrInvalidGoal) {
			t.Fatalf("input %q: expected ErrInvalidGoal, got %v", input, err)
		}
		if got := tr.Config().DailyGoalMinutes; got != 60 {
			t.Fatalf("input %q: goal changed to %d", input, got)
		}
	}
}

func TestSetDailyGoalAcceptsBounds(t *testing.T) {
	tr := NewTracker(0)
	for _, input := range []string{"1", " 1440 ", "50"} {
		if _, err := tr.SetDailyGoal(input); err != nil {
			t.Fatalf("input %q: unexpected error %v", input, err)
		}
	}
	if got := tr.Config().DailyGoalMinutes; got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestProgress(t *testing.T) {
	tr := NewTracker(50)
	if p, ok := tr.Progress(25); !ok || p != 50 {
		t.Fatalf("expected 50%%, got %d ok=%v", p, ok)
	}
	if p, _ := tr.Progress(60); p != 100 {
		t.Fatalf("expected clamp to 100, got %d", p)
	}
	if _, ok := NewTracker(0).Progress(10); ok {
		t.Fatalf("expected unset goal to report !ok")
	}
}

func TestPercentRounding(t *testing.T) {
	cases := []struct{ total, goal, want int }{
		{1, 3, 33},
		{2, 3, 67},
		{199, 200, 99},
		{200, 200, 100},
		{0, 60, 0},
		{30, 0, 0},
	}
	for _, c := range cases {
		if got := Percent(c.total, c.goal); got != c.want {
			t.Fatalf("Percent(%d,%d) = %d, want %d", c.total, c.goal, got, c.want)
		}
	}
}

func TestEvaluateFiresOncePerCrossing(t *testing.T) {
	tr := NewTracker(50)
	if tr.Evaluate(25) {
		t.Fatalf("fired below goal")
	}
	if !tr.Evaluate(50) {
		t.Fatalf("expected to fire at goal")
	}
	if tr.Evaluate(75) {
		t.Fatalf("fired twice")
	}
	// New day.
	if tr.Evaluate(0) {
		t.Fatalf("fired at zero")
	}
	if !tr.Evaluate(60) {
		t.Fatalf("expected re-armed after dropping below goal")
	}
}

func TestSetGoalRearms(t *testing.T) {
	tr := NewTracker(30)
	tr.Evaluate(40)
	if err := tr.SetDailyGoalMinutes(35); err != nil {
		t.Fatalf("SetDailyGoalMinutes failed: %v", err)
	}
	if !tr.Evaluate(40) {
		t.Fatalf("expected new goal already met to fire")
	}
}

func TestPrimeSuppressesRestartFiring(t *testing.T) {
	tr := NewTracker(30)
	tr.Prime(45)
	if tr.Evaluate(45) {
		t.Fatalf("expected primed tracker not to fire")
	}
	tr.Clear()
	if tr.Evaluate(45) || tr.Config().IsSet() {
		t.Fatalf("expected cleared tracker to be inert")
	}
}
