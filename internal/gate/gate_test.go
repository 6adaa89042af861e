package gate

import (
	"context"
	"errors"
	"testing"
)

// mockSource implements PrereqSource with canned results.
type mockSource struct {
	prereqs []Prerequisite
	err     error
	calls   int
}

func (m *mockSource) FetchPrerequisites(_ context.Context, _ string) ([]Prerequisite, error) {
	m.calls++
	return m.prereqs, m.err
}

// mockGenerator implements DiagnosticGenerator with canned questions.
type mockGenerator struct {
	questions []Question
	err       error
	calls     int
}

func (m *mockGenerator) GenerateDiagnostic(_ context.Context, _ []Prerequisite, _ string) ([]Question, error) {
	m.calls++
	return m.questions, m.err
}

// mockGrader returns canned verdicts in FIFO order.
type mockGrader struct {
	verdicts []Verdict
	errs     []error
	calls    int
}

func (m *mockGrader) GradeAnswer(_ context.Context, _ Question, _ string) (Verdict, error) {
	i := m.calls
	m.calls++
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	var v Verdict
	if i < len(m.verdicts) {
		v = m.verdicts[i]
	}
	return v, err
}

func weakPrereq(id string, mastery int) Prerequisite {
	return Prerequisite{ID: id, Name: id, MasteryPercentage: mastery}
}

func nQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{PrerequisiteID: "p", Text: "q", CorrectAnswer: "a"}
	}
	return qs
}

func highVerdicts(correct ...bool) []Verdict {
	vs := make([]Verdict, len(correct))
	for i, c := range correct {
		vs[i] = Verdict{IsCorrect: c, Confidence: ConfidenceHigh}
	}
	return vs
}

func TestGate_NoPrerequisitesPasses(t *testing.T) {
	gen := &mockGenerator{}
	g := New(&mockSource{}, gen, &mockGrader{}, "derivatives", "Derivatives")

	if got := g.Check(context.Background()); got != StatePassed {
		t.Fatalf("state = %s, want passed", got)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times, want 0 (no diagnostic for zero prereqs)", gen.calls)
	}
}

func TestGate_AllStrongPrerequisitesPass(t *testing.T) {
	src := &mockSource{prereqs: []Prerequisite{weakPrereq("a", 85), weakPrereq("b", 60)}}
	g := New(src, &mockGenerator{}, &mockGrader{}, "t", "T")

	if got := g.Check(context.Background()); got != StatePassed {
		t.Fatalf("state = %s, want passed (60 is not weak)", got)
	}
}

func TestGate_WeakPrerequisiteReadiesQuiz(t *testing.T) {
	src := &mockSource{prereqs: []Prerequisite{weakPrereq("a", 85), weakPrereq("b", 59)}}
	gen := &mockGenerator{questions: nQuestions(3)}
	g := New(src, gen, &mockGrader{}, "t", "T")

	if got := g.Check(context.Background()); got != StateReady {
		t.Fatalf("state = %s, want ready", got)
	}
	if len(g.WeakPrerequisites()) != 1 || g.WeakPrerequisites()[0].ID != "b" {
		t.Errorf("weak = %v, want [b]", g.WeakPrerequisites())
	}
	if g.QuestionCount() != 3 {
		t.Errorf("QuestionCount = %d, want 3", g.QuestionCount())
	}
}

func TestGate_LookupFailureIsError(t *testing.T) {
	src := &mockSource{err: errors.New("backend down")}
	g := New(src, &mockGenerator{}, &mockGrader{}, "t", "T")

	if got := g.Check(context.Background()); got != StateError {
		t.Fatalf("state = %s, want error", got)
	}
	if g.ErrorMessage() == "" {
		t.Error("ErrorMessage is empty")
	}
}

func TestGate_GenerationFailureIsError(t *testing.T) {
	src := &mockSource{prereqs: []Prerequisite{weakPrereq("a", 10)}}

	t.Run("error", func(t *testing.T) {
		gen := &mockGenerator{err: errors.New("timeout")}
		g := New(src, gen, &mockGrader{}, "t", "T")
		if got := g.Check(context.Background()); got != StateError {
			t.Errorf("state = %s, want error", got)
		}
	})

	t.Run("zero questions", func(t *testing.T) {
		gen := &mockGenerator{questions: nil}
		g := New(src, gen, &mockGrader{}, "t", "T")
		if got := g.Check(context.Background()); got != StateError {
			t.Errorf("state = %s, want error on empty question list", got)
		}
	})
}

func TestGate_QuizNeverStartsAutomatically(t *testing.T) {
	src := &mockSource{prereqs: []Prerequisite{weakPrereq("a", 10)}}
	g := New(src, &mockGenerator{questions: nQuestions(2)}, &mockGrader{}, "t", "T")
	g.Check(context.Background())

	if g.State() != StateReady {
		t.Fatalf("state = %s, want ready", g.State())
	}
	if err := g.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if g.State() != StateQuiz {
		t.Errorf("state = %s, want quiz", g.State())
	}

	// Start is invalid anywhere else.
	if err := g.Start(); err == nil {
		t.Error("Start() from quiz = nil error, want error")
	}
}

func TestGate_HighConfidenceAnswersAdvance(t *testing.T) {
	src := &mockSource{prereqs: []Prerequisite{weakPrereq("a", 10)}}
	grader := &mockGrader{verdicts: highVerdicts(true, false, true)}
	g := New(src, &mockGenerator{questions: nQuestions(3)}, grader, "t", "T")
	g.Check(context.Background())
	g.Start()

	ctx := context.Background()
	if got := g.SubmitAnswer(ctx, "x"); got != StateQuiz {
		t.Fatalf("state = %s, want quiz after question 1", got)
	}
	if g.QuestionIndex() != 1 {
		t.Errorf("QuestionIndex = %d, want 1", g.QuestionIndex())
	}
	g.SubmitAnswer(ctx, "x")
	final := g.SubmitAnswer(ctx, "x")
	// 2 of 3 is below the 70% bar.
	if final != StateFailed {
		t.Errorf("state = %s, want failed at 2/3", final)
	}
}

func TestGate_UncertainVerdictIsHardStop(t *testing.T) {
	src := &mockSource{prereqs: []Prerequisite{weakPrereq("a", 10)}}
	grader := &mockGrader{verdicts: []Verdict{{IsCorrect: true, Confidence: ConfidenceUncertain}}}
	g := New(src, &mockGenerator{questions: nQuestions(2)}, grader, "t", "T")
	g.Check(context.Background())
	g.Start()

	got := g.SubmitAnswer(context.Background(), "x")
	if got != StateError {
		t.Fatalf("state = %s, want error on uncertain verdict", got)
	}
	if g.QuestionIndex() != 0 {
		t.Errorf("QuestionIndex = %d, want 0 (no advance)", g.QuestionIndex())
	}
	if correct, _ := g.Score(); correct != 0 {
		t.Errorf("recorded %d correct answers, want 0 (no recording)", correct)
	}
}

func TestGate_MissingConfidenceTreatedAsUncertain(t *testing.T) {
	src := &mockSource{prereqs: []Prerequisite{weakPrereq("a", 10)}}
	grader := &mockGrader{verdicts: []Verdict{{IsCorrect: true}}} // zero-value confidence
	g := New(src, &mockGenerator{questions: nQuestions(1)}, grader, "t", "T")
	g.Check(context.Background())
	g.Start()

	if got := g.SubmitAnswer(context.Background(), "x"); got != StateError {
		t.Errorf("state = %s, want error on absent confidence", got)
	}
}

func TestGate_GradingFailureNeverPasses(t *testing.T) {
	src := &mockSource{prereqs: []Prerequisite{weakPrereq("a", 10)}}
	grader := &mockGrader{errs: []error{errors.New("network timeout")}}
	g := New(src, &mockGenerator{questions: nQuestions(1)}, grader, "t", "T")
	g.Check(context.Background())
	g.Start()

	if got := g.SubmitAnswer(context.Background(), "x"); got != StateError {
		t.Errorf("state = %s, want error (never passed) on grading failure", got)
	}
}

func TestGate_PassBoundary(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    State
	}{
		{"7 of 10 passes", 7, 10, StatePassed},
		{"6 of 10 fails", 6, 10, StateFailed},
		{"exactly 70 percent passes", 7, 10, StatePassed},
		{"all correct passes", 3, 3, StatePassed},
		{"all wrong fails", 0, 3, StateFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcomes := make([]bool, tt.total)
			for i := 0; i < tt.correct; i++ {
				outcomes[i] = true
			}
			src := &mockSource{prereqs: []Prerequisite{weakPrereq("a", 10)}}
			grader := &mockGrader{verdicts: highVerdicts(outcomes...)}
			g := New(src, &mockGenerator{questions: nQuestions(tt.total)}, grader, "t", "T")
			g.Check(context.Background())
			g.Start()

			var final State
			for i := 0; i < tt.total; i++ {
				final = g.SubmitAnswer(context.Background(), "x")
			}
			if final != tt.want {
				t.Errorf("final state = %s, want %s", final, tt.want)
			}
		})
	}
}

func TestGate_RetryRefetchesAndRegenerates(t *testing.T) {
	src := &mockSource{err: errors.New("down")}
	gen := &mockGenerator{questions: nQuestions(1)}
	g := New(src, gen, &mockGrader{verdicts: highVerdicts(true)}, "t", "T")

	if got := g.Check(context.Background()); got != StateError {
		t.Fatalf("state = %s, want error", got)
	}

	// Backend recovers; retry must refetch.
	src.err = nil
	src.prereqs = []Prerequisite{weakPrereq("a", 10)}
	if got := g.Retry(context.Background()); got != StateReady {
		t.Fatalf("state after retry = %s, want ready", got)
	}
	if src.calls != 2 {
		t.Errorf("source called %d times, want 2", src.calls)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestGate_RetryInvalidFromTerminalSuccess(t *testing.T) {
	g := New(&mockSource{}, &mockGenerator{}, &mockGrader{}, "t", "T")
	g.Check(context.Background()) // no prereqs → passed

	if got := g.Retry(context.Background()); got != StatePassed {
		t.Errorf("Retry from passed moved to %s, want passed (no-op)", got)
	}
}

func TestGate_WeakestPrerequisite(t *testing.T) {
	src := &mockSource{prereqs: []Prerequisite{
		weakPrereq("a", 45),
		weakPrereq("b", 20),
		weakPrereq("c", 80),
	}}
	gen := &mockGenerator{questions: nQuestions(1)}
	grader := &mockGrader{verdicts: highVerdicts(false)}
	g := New(src, gen, grader, "t", "T")
	g.Check(context.Background())
	g.Start()
	if got := g.SubmitAnswer(context.Background(), "x"); got != StateFailed {
		t.Fatalf("state = %s, want failed", got)
	}

	weakest := g.WeakestPrerequisite()
	if weakest == nil || weakest.ID != "b" {
		t.Errorf("WeakestPrerequisite = %v, want b (lowest mastery)", weakest)
	}
}
