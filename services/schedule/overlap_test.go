package schedule

import "testing"

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd int
		want                           bool
	}{
		{"identical intervals conflict", 600, 640, 600, 640, true},
		{"back-to-back after is legal", 600, 640, 640, 660, false},
		{"back-to-back before is legal", 640, 660, 600, 640, false},
		{"partial overlap at tail", 600, 640, 620, 660, true},
		{"partial overlap at head", 620, 660, 600, 640, true},
		{"containment", 600, 660, 620, 640, true},
		{"disjoint", 600, 620, 700, 720, false},
		{"one minute overlap", 600, 621, 620, 640, true},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: Overlaps(%d,%d,%d,%d) = %v, want %v",
				tc.name, tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}

func TestOverlapsSelfConflict(t *testing.T) {
	for _, d := range []int{1, 20, 40} {
		s := 630
		if !Overlaps(s, s+d, s, s+d) {
			t.Errorf("a slot must conflict with itself (duration %d)", d)
		}
		if Overlaps(s, s+d, s+d, s+2*d) {
			t.Errorf("back-to-back must not conflict (duration %d)", d)
		}
	}
}
