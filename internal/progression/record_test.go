package progression

import "testing"

func TestRecordAttempt_CorrectExtendsStreak(t *testing.T) {
	rec := PerformanceRecord{}
	for i := 1; i <= 4; i++ {
		rec = RecordAttempt(rec, true)
		if rec.ConsecutiveCorrect != i {
			t.Errorf("after %d correct: ConsecutiveCorrect = %d, want %d", i, rec.ConsecutiveCorrect, i)
		}
	}
	if rec.TotalAttempts != 4 || rec.CorrectAttempts != 4 {
		t.Errorf("counters = %d/%d, want 4/4", rec.CorrectAttempts, rec.TotalAttempts)
	}
}

func TestRecordAttempt_WrongResetsStreak(t *testing.T) {
	rec := PerformanceRecord{}
	rec = RecordAttempt(rec, true)
	rec = RecordAttempt(rec, true)
	rec = RecordAttempt(rec, false)
	if rec.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d, want 0 after a miss", rec.ConsecutiveCorrect)
	}
	if rec.CorrectAttempts != 2 || rec.TotalAttempts != 3 {
		t.Errorf("counters = %d/%d, want 2/3", rec.CorrectAttempts, rec.TotalAttempts)
	}
}

func TestRecordAttempt_TwoTrailingMissesForceReset(t *testing.T) {
	// A stale streak must not survive two consecutive misses, no matter
	// what ConsecutiveCorrect claimed before the call.
	rec := PerformanceRecord{
		ConsecutiveCorrect: 99,
		TotalAttempts:      99,
		CorrectAttempts:    99,
		RecentOutcomes:     []bool{true, true, true, true, false},
	}
	rec = RecordAttempt(rec, false)
	if rec.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d, want 0 on two trailing misses", rec.ConsecutiveCorrect)
	}
	if !rec.Struggling() {
		t.Error("Struggling() = false, want true")
	}
}

func TestRecordAttempt_CorrectBetweenMissesDoesNotMaskStruggle(t *testing.T) {
	rec := PerformanceRecord{}
	rec = RecordAttempt(rec, false)
	rec = RecordAttempt(rec, true)
	rec = RecordAttempt(rec, false)
	if rec.Struggling() {
		t.Error("Struggling() = true after wrong-right-wrong, want false")
	}
	rec = RecordAttempt(rec, false)
	if !rec.Struggling() {
		t.Error("Struggling() = false after two trailing misses, want true")
	}
	if rec.ConsecutiveCorrect != 0 {
		t.Errorf("ConsecutiveCorrect = %d, want 0", rec.ConsecutiveCorrect)
	}
}

func TestRecordAttempt_WindowTruncatesToFive(t *testing.T) {
	rec := PerformanceRecord{}
	for i := 0; i < 9; i++ {
		rec = RecordAttempt(rec, i%2 == 0)
	}
	if len(rec.RecentOutcomes) != RecentWindow {
		t.Errorf("len(RecentOutcomes) = %d, want %d", len(rec.RecentOutcomes), RecentWindow)
	}
}

func TestRecordAttempt_DoesNotMutateInput(t *testing.T) {
	orig := PerformanceRecord{RecentOutcomes: []bool{true, true}}
	_ = RecordAttempt(orig, false)
	if len(orig.RecentOutcomes) != 2 || orig.TotalAttempts != 0 {
		t.Error("RecordAttempt mutated its input record")
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"zero attempts", 0, 0, 0},
		{"all correct", 5, 5, 100},
		{"three of four", 3, 4, 75},
		{"two of three rounds up", 2, 3, 67},
		{"one of three rounds down", 1, 3, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := PerformanceRecord{CorrectAttempts: tt.correct, TotalAttempts: tt.total}
			if got := rec.Accuracy(); got != tt.want {
				t.Errorf("Accuracy() = %d, want %d", got, tt.want)
			}
		})
	}
}
