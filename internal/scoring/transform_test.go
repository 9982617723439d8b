package scoring

import "testing"

func TestTransformReverseRoundTrip(t *testing.T) {
	for raw := 0; raw <= 4; raw++ {
		stored := Transform(raw, true)
		if got := Unreverse(stored); got != raw {
			t.Errorf("Unreverse(Transform(%d)) = %d, want %d", raw, got, raw)
		}
	}
}

func TestTransformValues(t *testing.T) {
	tests := []struct {
		name    string
		raw     int
		reverse bool
		want    int
	}{
		{"plain passthrough", 3, false, 3},
		{"plain zero", 0, false, 0},
		{"reverse zero", 0, true, 4},
		{"reverse four", 4, true, 0},
		{"reverse midpoint", 2, true, 2},
		{"skip plain", SkipValue, false, SkipValue},
		{"skip reverse", SkipValue, true, SkipValue},
		{"out of range high", 7, true, 7},
		{"out of range low", -3, true, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transform(tt.raw, tt.reverse); got != tt.want {
				t.Errorf("Transform(%d, %v) = %d, want %d", tt.raw, tt.reverse, got, tt.want)
			}
		})
	}
}

func TestUnreverseSelfInverse(t *testing.T) {
	for v := 0; v <= 4; v++ {
		if got := Unreverse(Unreverse(v)); got != v {
			t.Errorf("Unreverse(Unreverse(%d)) = %d, want %d", v, got, v)
		}
	}
	if got := Unreverse(SkipValue); got != SkipValue {
		t.Errorf("Unreverse(skip) = %d, want %d", got, SkipValue)
	}
}

func TestDisplay(t *testing.T) {
	// A reverse-scored answer redisplays as what the subject picked.
	stored := Transform(1, true) // stored as 3
	if got := Display(stored, true); got != 1 {
		t.Errorf("Display(%d, reverse) = %d, want 1", stored, got)
	}
	if got := Display(2, false); got != 2 {
		t.Errorf("Display(2, plain) = %d, want 2", got)
	}
	if got := Display(SkipValue, true); got != SkipValue {
		t.Errorf("Display(skip) = %d, want skip", got)
	}
}
