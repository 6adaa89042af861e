package topics

func init() {
	c = buildCatalog(seedTopics())
	if err := validateTopics(c.topics); err != nil {
		panic(err)
	}
}

// seedTopics returns the built-in curriculum. IDs are stable and referenced
// from persisted events, so renaming an ID is a breaking change.
func seedTopics() []Topic {
	return []Topic{
		// Arithmetic
		{
			ID:          "integer-operations",
			Name:        "Integer Operations",
			Description: "Add, subtract, multiply, and divide positive and negative integers.",
			Strand:      StrandArithmetic,
			Level:       1,
			Keywords:    []string{"integers", "negative numbers", "order of operations"},
		},
		{
			ID:            "fractions-decimals",
			Name:          "Fractions & Decimals",
			Description:   "Convert between fractions and decimals and compute with both.",
			Strand:        StrandArithmetic,
			Level:         1,
			Keywords:      []string{"fractions", "decimals", "equivalence"},
			Prerequisites: []string{"integer-operations"},
		},
		{
			ID:            "ratios-percentages",
			Name:          "Ratios & Percentages",
			Description:   "Work with ratios, rates, and percentage change.",
			Strand:        StrandArithmetic,
			Level:         2,
			Keywords:      []string{"ratio", "percent", "proportion"},
			Prerequisites: []string{"fractions-decimals"},
		},

		// Algebra
		{
			ID:            "linear-equations",
			Name:          "Linear Equations",
			Description:   "Solve one-variable linear equations and inequalities.",
			Strand:        StrandAlgebra,
			Level:         2,
			Keywords:      []string{"solve for x", "inequalities", "balancing"},
			Prerequisites: []string{"integer-operations"},
		},
		{
			ID:            "systems-of-equations",
			Name:          "Systems of Equations",
			Description:   "Solve pairs of linear equations by substitution and elimination.",
			Strand:        StrandAlgebra,
			Level:         3,
			Keywords:      []string{"substitution", "elimination", "intersection"},
			Prerequisites: []string{"linear-equations"},
		},
		{
			ID:            "polynomials-factoring",
			Name:          "Polynomials & Factoring",
			Description:   "Expand, simplify, and factor polynomial expressions.",
			Strand:        StrandAlgebra,
			Level:         3,
			Keywords:      []string{"factoring", "expansion", "distributive"},
			Prerequisites: []string{"linear-equations"},
		},
		{
			ID:            "quadratic-equations",
			Name:          "Quadratic Equations",
			Description:   "Solve quadratics by factoring, completing the square, and the formula.",
			Strand:        StrandAlgebra,
			Level:         4,
			Keywords:      []string{"quadratic formula", "roots", "discriminant"},
			Prerequisites: []string{"polynomials-factoring"},
		},

		// Geometry
		{
			ID:          "angles-triangles",
			Name:        "Angles & Triangles",
			Description: "Angle relationships, triangle congruence, and the angle sum.",
			Strand:      StrandGeometry,
			Level:       2,
			Keywords:    []string{"angles", "congruence", "triangle sum"},
		},
		{
			ID:            "pythagorean-theorem",
			Name:          "Pythagorean Theorem",
			Description:   "Side lengths in right triangles and distance in the plane.",
			Strand:        StrandGeometry,
			Level:         3,
			Keywords:      []string{"right triangle", "hypotenuse", "distance"},
			Prerequisites: []string{"angles-triangles"},
		},
		{
			ID:            "trigonometric-ratios",
			Name:          "Trigonometric Ratios",
			Description:   "Sine, cosine, and tangent in right triangles.",
			Strand:        StrandGeometry,
			Level:         4,
			Keywords:      []string{"sine", "cosine", "tangent", "SOH-CAH-TOA"},
			Prerequisites: []string{"pythagorean-theorem"},
		},

		// Functions & Graphs
		{
			ID:            "linear-functions",
			Name:          "Linear Functions",
			Description:   "Slope, intercepts, and graphing lines.",
			Strand:        StrandFunctions,
			Level:         3,
			Keywords:      []string{"slope", "intercept", "graphing"},
			Prerequisites: []string{"linear-equations"},
		},
		{
			ID:            "quadratic-functions",
			Name:          "Quadratic Functions",
			Description:   "Parabolas, vertex form, and transformations.",
			Strand:        StrandFunctions,
			Level:         4,
			Keywords:      []string{"parabola", "vertex", "transformations"},
			Prerequisites: []string{"linear-functions", "quadratic-equations"},
		},
		{
			ID:            "exponential-functions",
			Name:          "Exponential Functions",
			Description:   "Growth, decay, and the laws of exponents.",
			Strand:        StrandFunctions,
			Level:         5,
			Keywords:      []string{"growth", "decay", "exponents"},
			Prerequisites: []string{"linear-functions"},
		},

		// Calculus
		{
			ID:            "limits",
			Name:          "Limits",
			Description:   "Limit notation, one-sided limits, and continuity.",
			Strand:        StrandCalculus,
			Level:         6,
			Keywords:      []string{"limit", "continuity", "asymptote"},
			Prerequisites: []string{"quadratic-functions", "exponential-functions"},
		},
		{
			ID:            "derivatives",
			Name:          "Derivatives",
			Description:   "Rates of change, the power rule, and tangent lines.",
			Strand:        StrandCalculus,
			Level:         7,
			Keywords:      []string{"derivative", "tangent", "rate of change"},
			Prerequisites: []string{"limits"},
		},
	}
}
