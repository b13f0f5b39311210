package models

import "strings"

// Persona is the narrative lens of a professional brief.
type Persona int

const (
	// PersonaGeneralist is the fallback for unrecognized persona tokens.
	PersonaGeneralist Persona = iota
	PersonaStrategist
	PersonaDesigner
	PersonaInvestor
)

// DefaultPersona is used when no persona token is supplied at all.
const DefaultPersona = PersonaStrategist

// ParsePersona maps a persona token to a Persona. An empty token yields
// DefaultPersona; any unknown token yields PersonaGeneralist.
func ParsePersona(token string) Persona {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "":
		return DefaultPersona
	case "strategist":
		return PersonaStrategist
	case "designer":
		return PersonaDesigner
	case "investor":
		return PersonaInvestor
	default:
		return PersonaGeneralist
	}
}

func (p Persona) String() string {
	switch p {
	case PersonaStrategist:
		return "strategist"
	case PersonaDesigner:
		return "designer"
	case PersonaInvestor:
		return "investor"
	default:
		return "generalist"
	}
}
