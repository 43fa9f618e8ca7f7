package classify

import "testing"

func TestStackBucketBoundaries(t *testing.T) {
	cases := []struct {
		bb   float64
		want string
	}{
		{0, BucketUnder10},
		{9.99, BucketUnder10},
		{10, Bucket10to20},
		{15.5, Bucket10to20},
		{19.99, Bucket10to20},
		{20, Bucket20to40},
		{39.5, Bucket20to40},
		{40, Bucket40Plus},
		{250, Bucket40Plus},
	}
	for _, c := range cases {
		if got := StackBucket(c.bb); got != c.want {
			t.Errorf("StackBucket(%v) = %q, want %q", c.bb, got, c.want)
		}
	}
}

func TestFacingSituation(t *testing.T) {
	cases := []struct {
		opener string
		want   string
	}{
		{"", Unopened},
		{"   ", Unopened},
		{"folded to you", Unopened},
		{"HJ opens 2.2bb", VsOpen},
		{"UTG raises to 3bb", VsOpen},
		{"CO Opens", VsOpen},
		{"BB checks", Unopened}, // coarse: anything not an open/raise
		{"limped around", Unopened},
	}
	for _, c := range cases {
		if got := FacingSituation(c.opener); got != c.want {
			t.Errorf("FacingSituation(%q) = %q, want %q", c.opener, got, c.want)
		}
	}
}

func TestHandClass(t *testing.T) {
	cases := []struct {
		hand string
		want string
	}{
		{"AA", Premium},
		{"QQ", Premium},
		{"AKs", Premium},
		{"AQo", Premium},
		{"JJ", StrongPair},
		{"77", StrongPair},
		{"66", SmallPair},
		{"22", SmallPair},
		{"KQo", StrongBroadway},
		{"KJs", StrongBroadway},
		{"98s", SuitedConnector},
		{"54s", SuitedConnector},
		{"72o", WeakOffsuit},
		{"T2s", WeakOffsuit},
		{"", WeakOffsuit},
		{"??", WeakOffsuit},
	}
	for _, c := range cases {
		if got := HandClass(c.hand); got != c.want {
			t.Errorf("HandClass(%q) = %q, want %q", c.hand, got, c.want)
		}
	}
}

func TestHandClassSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"KQo", "QKo"},
		{"AKs", "KAs"},
		{"98s", "89s"},
		{"JTo", "TJo"},
		{"T2s", "2Ts"},
	}
	for _, p := range pairs {
		a, b := HandClass(p[0]), HandClass(p[1])
		if a != b {
			t.Errorf("HandClass(%q)=%q != HandClass(%q)=%q", p[0], a, p[1], b)
		}
	}
}

func TestPositionGroup(t *testing.T) {
	cases := []struct {
		pos  string
		want string
	}{
		{"UTG", GroupEarly},
		{"hj", GroupEarly},
		{"CO", GroupLate},
		{"BTN", GroupLate},
		{"SB", GroupBlinds},
		{"BB", GroupBlinds},
		{"MP2", GroupMiddle},
		{"", GroupMiddle},
	}
	for _, c := range cases {
		if got := PositionGroup(c.pos); got != c.want {
			t.Errorf("PositionGroup(%q) = %q, want %q", c.pos, got, c.want)
		}
	}
}
