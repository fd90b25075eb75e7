package model

// ComplexityLevel is a 1-5 ordinal estimate of how advanced a piece of
// learning content is.
type ComplexityLevel int

const (
	ComplexityBeginner     ComplexityLevel = 1
	ComplexityElementary   ComplexityLevel = 2
	ComplexityIntermediate ComplexityLevel = 3
	ComplexityAdvanced     ComplexityLevel = 4
	ComplexityExpert       ComplexityLevel = 5
)

func (c ComplexityLevel) IsValid() bool {
	return c >= ComplexityBeginner && c <= ComplexityExpert
}

func (c ComplexityLevel) String() string {
	switch c {
	case ComplexityBeginner:
		return "beginner"
	case ComplexityElementary:
		return "elementary"
	case ComplexityIntermediate:
		return "intermediate"
	case ComplexityAdvanced:
		return "advanced"
	case ComplexityExpert:
		return "expert"
	default:
		return "unknown"
	}
}

// ComplexityLevelForScore maps a 0-100 competence score to a target content
// complexity. Lower competence routes to simpler material.
func ComplexityLevelForScore(score float64) ComplexityLevel {
	switch {
	case score < 20:
		return ComplexityBeginner
	case score < 40:
		return ComplexityElementary
	case score < 60:
		return ComplexityIntermediate
	case score < 80:
		return ComplexityAdvanced
	default:
		return ComplexityExpert
	}
}
