package services

import "bubble/internal/models"

// personaVibe leads the visual mood.
func personaVibe(p models.Persona) string {
	switch p {
	case models.PersonaStrategist:
		return "Translate systemic shifts into a confident visual roadmap"
	case models.PersonaDesigner:
		return "Capture tactile emotion and the human response to the story"
	case models.PersonaInvestor:
		return "Express momentum, risk, and reward through bold contrasts"
	default:
		return "Make the narrative feel actionable for curious professionals"
	}
}

// personaAngle leads the creative hook.
func personaAngle(p models.Persona) string {
	switch p {
	case models.PersonaStrategist:
		return "Highlight strategic leverage and risk mitigation"
	case models.PersonaDesigner:
		return "Frame sensory cues, experience arcs, and emotional payoff"
	case models.PersonaInvestor:
		return "Emphasize market traction, defensibility, and upside"
	default:
		return "Surface actionable insights and partnerships"
	}
}
