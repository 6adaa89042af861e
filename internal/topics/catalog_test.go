package topics

import "testing"

func TestSeedCatalog_Valid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestGet(t *testing.T) {
	topic, err := Get("linear-equations")
	if err != nil {
		t.Fatalf("Get(linear-equations) error: %v", err)
	}
	if topic.Name != "Linear Equations" {
		t.Errorf("Name = %q, want Linear Equations", topic.Name)
	}

	if _, err := Get("no-such-topic"); err == nil {
		t.Error("Get(no-such-topic) = nil error, want error")
	}
}

func TestPrerequisites(t *testing.T) {
	prereqs := Prerequisites("quadratic-functions")
	if len(prereqs) != 2 {
		t.Fatalf("len(Prerequisites) = %d, want 2", len(prereqs))
	}
	ids := map[string]bool{}
	for _, p := range prereqs {
		ids[p.ID] = true
	}
	if !ids["linear-functions"] || !ids["quadratic-equations"] {
		t.Errorf("Prerequisites = %v, want linear-functions and quadratic-equations", ids)
	}
}

func TestTopologicalOrder_PrereqsComeFirst(t *testing.T) {
	order := TopologicalOrder()
	if len(order) != len(All()) {
		t.Fatalf("topo order covers %d topics, catalog has %d", len(order), len(All()))
	}
	pos := make(map[string]int, len(order))
	for i, topic := range order {
		pos[topic.ID] = i
	}
	for _, topic := range All() {
		for _, prereqID := range topic.Prerequisites {
			if pos[prereqID] >= pos[topic.ID] {
				t.Errorf("prerequisite %q ordered after %q", prereqID, topic.ID)
			}
		}
	}
}

func TestDependents(t *testing.T) {
	deps := Dependents("linear-equations")
	if len(deps) == 0 {
		t.Fatal("Dependents(linear-equations) is empty")
	}
	found := false
	for _, d := range deps {
		if d.ID == "systems-of-equations" {
			found = true
		}
	}
	if !found {
		t.Error("systems-of-equations missing from dependents of linear-equations")
	}
}

func TestValidateTopics_CatchesProblems(t *testing.T) {
	tests := []struct {
		name   string
		topics []Topic
	}{
		{
			name: "duplicate id",
			topics: []Topic{
				{ID: "a", Name: "A", Strand: StrandAlgebra, Level: 1},
				{ID: "a", Name: "A2", Strand: StrandAlgebra, Level: 1},
			},
		},
		{
			name: "dangling prerequisite",
			topics: []Topic{
				{ID: "a", Name: "A", Strand: StrandAlgebra, Level: 1, Prerequisites: []string{"ghost"}},
			},
		},
		{
			name: "cycle",
			topics: []Topic{
				{ID: "a", Name: "A", Strand: StrandAlgebra, Level: 1, Prerequisites: []string{"b"}},
				{ID: "b", Name: "B", Strand: StrandAlgebra, Level: 1, Prerequisites: []string{"a"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateTopics(tt.topics); err == nil {
				t.Error("validateTopics() = nil, want error")
			}
		})
	}
}
