package util

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ v, min, max, want int }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.min, c.max); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", c.v, c.min, c.max, got, c.want)
		}
	}
}

func TestRoundPercent(t *testing.T) {
	cases := []struct{ part, whole, want int }{
		{25, 50, 50},
		{60, 50, 120},
		{1, 3, 33},
		{2, 3, 67},
		{1, 200, 1},     // 0.5 rounds up
		{199, 200, 100}, // 99.5 rounds up
		{0, 30, 0},
		{10, 0, 0},
	}
	for _, c := range cases {
		if got := RoundPercent(c.part, c.whole); got != c.want {
			t.Fatalf("RoundPercent(%d,%d) = %d, want %d", c.part, c.whole, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00:00",
		59:   "00:00:59",
		1500: "00:25:00",
		3725: "01:02:05",
		-4:   "00:00:00",
	}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}
