package topics

// Strand represents a math content strand.
type Strand string

const (
	StrandArithmetic Strand = "arithmetic"
	StrandAlgebra    Strand = "algebra"
	StrandGeometry   Strand = "geometry"
	StrandFunctions  Strand = "functions"
	StrandCalculus   Strand = "calculus"
)

// AllStrands returns all strands in display order.
func AllStrands() []Strand {
	return []Strand{
		StrandArithmetic,
		StrandAlgebra,
		StrandGeometry,
		StrandFunctions,
		StrandCalculus,
	}
}

// StrandDisplayName returns a human-readable name for a strand.
func StrandDisplayName(s Strand) string {
	switch s {
	case StrandArithmetic:
		return "Arithmetic"
	case StrandAlgebra:
		return "Algebra"
	case StrandGeometry:
		return "Geometry"
	case StrandFunctions:
		return "Functions & Graphs"
	case StrandCalculus:
		return "Calculus"
	default:
		return string(s)
	}
}

// Topic represents a single teachable unit in the curriculum.
type Topic struct {
	ID            string
	Name          string
	Description   string
	Strand        Strand
	Level         int // curriculum level, ascending
	Keywords      []string
	Prerequisites []string // topic IDs that should be strong before this one
}

// WeakMasteryCutoff is the mastery percentage below which a prerequisite
// counts as weak for skip-ahead gating.
const WeakMasteryCutoff = 60
