package topics

import (
	"fmt"
	"slices"
	"sort"
)

// catalog holds the topic DAG with precomputed indices.
type catalog struct {
	topics     []Topic
	byID       map[string]*Topic
	byStrand   map[Strand][]Topic
	dependents map[string][]string
	topoOrder  []Topic
	topoIndex  map[string]int
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog from a slice of topics, building the
// ID index, reverse edges, and a deterministic topological order.
func buildCatalog(topics []Topic) *catalog {
	ct := &catalog{
		topics:     topics,
		byID:       make(map[string]*Topic, len(topics)),
		byStrand:   make(map[Strand][]Topic),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(topics)),
	}

	for i := range ct.topics {
		ct.byID[ct.topics[i].ID] = &ct.topics[i]
	}

	for i := range ct.topics {
		for _, prereqID := range ct.topics[i].Prerequisites {
			ct.dependents[prereqID] = append(ct.dependents[prereqID], ct.topics[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm), queue sorted for determinism.
	inDegree := make(map[string]int, len(topics))
	for i := range topics {
		inDegree[topics[i].ID] = len(topics[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	var topoOrder []Topic
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		topoOrder = append(topoOrder, *ct.byID[id])

		deps := slices.Clone(ct.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	ct.topoOrder = topoOrder
	for i, t := range ct.topoOrder {
		ct.topoIndex[t.ID] = i
	}

	// Group by strand, sorted by level then topological position.
	for i := range ct.topics {
		t := ct.topics[i]
		ct.byStrand[t.Strand] = append(ct.byStrand[t.Strand], t)
	}
	for strand, ts := range ct.byStrand {
		sorted := slices.Clone(ts)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Level != sorted[j].Level {
				return sorted[i].Level < sorted[j].Level
			}
			return ct.topoIndex[sorted[i].ID] < ct.topoIndex[sorted[j].ID]
		})
		ct.byStrand[strand] = sorted
	}

	return ct
}

// Get returns a topic by ID, or an error if not found.
func Get(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("topic not found: %q", id)
	}
	return *t, nil
}

// All returns all topics in the catalog.
func All() []Topic {
	return slices.Clone(c.topics)
}

// ByStrand returns all topics in a strand, ordered by level then position.
func ByStrand(strand Strand) []Topic {
	return slices.Clone(c.byStrand[strand])
}

// Prerequisites returns the direct prerequisite topics for a topic ID.
func Prerequisites(id string) []Topic {
	t, ok := c.byID[id]
	if !ok {
		return nil
	}
	result := make([]Topic, 0, len(t.Prerequisites))
	for _, prereqID := range t.Prerequisites {
		if p, ok := c.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns topics that directly depend on the given topic ID.
func Dependents(id string) []Topic {
	depIDs := c.dependents[id]
	result := make([]Topic, 0, len(depIDs))
	for _, depID := range depIDs {
		if t, ok := c.byID[depID]; ok {
			result = append(result, *t)
		}
	}
	return result
}

// TopologicalOrder returns all topics in a valid topological order.
func TopologicalOrder() []Topic {
	return slices.Clone(c.topoOrder)
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateTopics(c.topics)
}
