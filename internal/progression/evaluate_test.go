package progression

import "testing"

func TestCheckMastery_StreakPath(t *testing.T) {
	spec := ThresholdFor(TierEasy)
	rec := PerformanceRecord{
		ConsecutiveCorrect: spec.RequiredStreak,
		TotalAttempts:      spec.RequiredStreak,
		CorrectAttempts:    spec.RequiredStreak,
	}
	d := CheckMastery(TierEasy, rec)
	if !d.CanAdvance {
		t.Fatal("CanAdvance = false, want true")
	}
	if d.PathUsed != PathStreak {
		t.Errorf("PathUsed = %s, want streak", d.PathUsed)
	}
	if d.ProgressFraction != 1.0 {
		t.Errorf("ProgressFraction = %f, want 1.0", d.ProgressFraction)
	}
}

func TestCheckMastery_AccuracyPathNeedsFloor(t *testing.T) {
	// 100% accuracy on 2 attempts must not advance: the floor is not met.
	rec := PerformanceRecord{TotalAttempts: 2, CorrectAttempts: 2}
	d := CheckMastery(TierMedium, rec)
	if d.CanAdvance {
		t.Error("CanAdvance = true on 2 attempts, want false (attempt floor)")
	}

	spec := ThresholdFor(TierMedium)
	rec = PerformanceRecord{TotalAttempts: spec.MinAttempts, CorrectAttempts: spec.MinAttempts}
	d = CheckMastery(TierMedium, rec)
	if !d.CanAdvance || d.PathUsed != PathAccuracy {
		t.Errorf("decision = %+v, want accuracy-path advance at the floor", d)
	}
}

func TestCheckMastery_StreakPreferredWhenBothHold(t *testing.T) {
	spec := ThresholdFor(TierEasy)
	rec := PerformanceRecord{
		ConsecutiveCorrect: spec.RequiredStreak,
		TotalAttempts:      spec.MinAttempts,
		CorrectAttempts:    spec.MinAttempts,
	}
	d := CheckMastery(TierEasy, rec)
	if d.PathUsed != PathStreak {
		t.Errorf("PathUsed = %s, want streak when both paths hold", d.PathUsed)
	}
}

func TestCheckMastery_NoAdvanceMeansPathNone(t *testing.T) {
	d := CheckMastery(TierEasy, PerformanceRecord{})
	if d.CanAdvance {
		t.Fatal("CanAdvance = true on empty record")
	}
	if d.PathUsed != PathNone {
		t.Errorf("PathUsed = %s, want none", d.PathUsed)
	}
	if d.ProgressFraction != 0 {
		t.Errorf("ProgressFraction = %f, want 0", d.ProgressFraction)
	}
}

func TestCheckMastery_Borderline(t *testing.T) {
	spec := ThresholdFor(TierMedium) // streak 3, accuracy 70, floor 5

	tests := []struct {
		name string
		rec  PerformanceRecord
		want bool
	}{
		{
			// 2/3 = 67%, within 5 of 70, but only 3 attempts: floor unmet.
			name: "floor not met",
			rec:  PerformanceRecord{TotalAttempts: 3, CorrectAttempts: 2},
			want: false,
		},
		{
			// 13/20 = 65%, floor met, within the 5-point margin.
			name: "within margin at floor",
			rec:  PerformanceRecord{TotalAttempts: 20, CorrectAttempts: 13},
			want: true,
		},
		{
			// 12/20 = 60%, floor met but outside the margin.
			name: "outside margin",
			rec:  PerformanceRecord{TotalAttempts: 20, CorrectAttempts: 12},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CheckMastery(TierMedium, tt.rec)
			if d.CanAdvance {
				t.Fatal("CanAdvance = true, want false for borderline cases")
			}
			if d.IsBorderline != tt.want {
				t.Errorf("IsBorderline = %v, want %v", d.IsBorderline, tt.want)
			}
		})
	}

	// An advancing record is never borderline.
	rec := PerformanceRecord{
		ConsecutiveCorrect: spec.RequiredStreak,
		TotalAttempts:      spec.MinAttempts,
		CorrectAttempts:    spec.MinAttempts,
	}
	if d := CheckMastery(TierMedium, rec); d.IsBorderline {
		t.Error("IsBorderline = true on an advancing record")
	}
}

func TestCheckMastery_NearMissScenario(t *testing.T) {
	// Streak 2 of 3, 3/4 correct (75%) but only 4 of 5 attempts: no advance,
	// and not borderline because the floor is unmet.
	rec := PerformanceRecord{
		ConsecutiveCorrect: 2,
		TotalAttempts:      4,
		CorrectAttempts:    3,
	}
	d := CheckMastery(TierMedium, rec)
	if d.CanAdvance {
		t.Error("CanAdvance = true, want false")
	}
	if d.IsBorderline {
		t.Error("IsBorderline = true, want false (floor not met)")
	}
}

func TestCheckMastery_Idempotent(t *testing.T) {
	rec := PerformanceRecord{
		ConsecutiveCorrect: 2,
		TotalAttempts:      7,
		CorrectAttempts:    5,
		RecentOutcomes:     []bool{true, false, true, true, false},
	}
	first := CheckMastery(TierHard, rec)
	second := CheckMastery(TierHard, rec)
	if first != second {
		t.Errorf("decisions differ: %+v vs %+v", first, second)
	}
}

func TestCheckMastery_ProgressFractionTracksNearerBar(t *testing.T) {
	spec := ThresholdFor(TierEasy)
	// Streak 2 of 3 but weak accuracy: streak progress should dominate.
	rec := PerformanceRecord{
		ConsecutiveCorrect: spec.RequiredStreak - 1,
		TotalAttempts:      10,
		CorrectAttempts:    2,
	}
	d := CheckMastery(TierEasy, rec)
	want := float64(spec.RequiredStreak-1) / float64(spec.RequiredStreak)
	if d.ProgressFraction != want {
		t.Errorf("ProgressFraction = %f, want %f", d.ProgressFraction, want)
	}
}

func TestCheckMastery_TerminalTierNeverAdvances(t *testing.T) {
	records := []PerformanceRecord{
		{},
		{ConsecutiveCorrect: 10, TotalAttempts: 20, CorrectAttempts: 20},
		{TotalAttempts: 5, CorrectAttempts: 0, RecentOutcomes: []bool{false, false, false, false, false}},
	}
	for _, rec := range records {
		d := CheckMastery(TierExam, rec)
		if d.CanAdvance {
			t.Errorf("CheckMastery(exam, %+v): CanAdvance = true, want false", rec)
		}
		if d.PathUsed != PathNone {
			t.Errorf("CheckMastery(exam, %+v): PathUsed = %s, want none", rec, d.PathUsed)
		}
		if d.ProgressFraction != 0 {
			t.Errorf("CheckMastery(exam, %+v): ProgressFraction = %f, want 0", rec, d.ProgressFraction)
		}
	}
}
