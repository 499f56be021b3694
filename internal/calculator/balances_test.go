package calculator

import (
	"math"
	"testing"
)

func TestBalanceAfterAdvance(t *testing.T) {
	tests := []struct {
		name    string
		total   float64
		advance float64
		want    float64
	}{
		{"twenty percent advance", 1000, 200, 800},
		{"no advance", 499.99, 0, 499.99},
		{"full advance", 250.5, 250.5, 0},
		{"advance above total floors at zero", 100, 150, 0},
		{"zero total", 0, 0, 0},
		{"NaN advance", 100, math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BalanceAfterAdvance(tt.total, tt.advance); cents(got) != cents(tt.want) {
				t.Errorf("BalanceAfterAdvance(%v, %v) = %v, want %v", tt.total, tt.advance, got, tt.want)
			}
		})
	}
}

func TestSchedule(t *testing.T) {
	t.Run("advance then remainder", func(t *testing.T) {
		stages := Schedule(Split(1000, 18, 20))
		if len(stages) != 2 {
			t.Fatalf("expected 2 stages, got %d", len(stages))
		}
		if cents(stages[0].Paid) != 20000 || cents(stages[0].Outstanding) != 80000 {
			t.Errorf("first stage = %+v, want paid 200 outstanding 800", stages[0])
		}
		if cents(stages[1].Paid) != 80000 || stages[1].Outstanding != 0 {
			t.Errorf("second stage = %+v, want paid 800 outstanding 0", stages[1])
		}
	})

	t.Run("no advance collects everything at once", func(t *testing.T) {
		stages := Schedule(Split(640, 28, 0))
		if len(stages) != 1 {
			t.Fatalf("expected 1 stage, got %d", len(stages))
		}
		if cents(stages[0].Paid) != 64000 {
			t.Errorf("Paid = %v, want 640", stages[0].Paid)
		}
	})

	t.Run("full advance", func(t *testing.T) {
		stages := Schedule(Split(75.25, 5, 100))
		if len(stages) != 1 {
			t.Fatalf("expected 1 stage, got %d", len(stages))
		}
		if cents(stages[0].Paid) != 7525 || stages[0].Outstanding != 0 {
			t.Errorf("stage = %+v, want paid 75.25 outstanding 0", stages[0])
		}
	})

	t.Run("stages always add up to the total", func(t *testing.T) {
		split := Split(1234.56, 12, 33)
		var paid int64
		for _, s := range Schedule(split) {
			paid += cents(s.Paid)
		}
		if paid != cents(split.Total) {
			t.Errorf("stages collect %d cents, want %d", paid, cents(split.Total))
		}
	})

	t.Run("empty split has no stages", func(t *testing.T) {
		if stages := Schedule(SplitResult{}); stages != nil {
			t.Errorf("expected nil, got %+v", stages)
		}
	})
}
