package services

import (
	"context"
	"fmt"
	"strings"

	"bubble/internal/keywords"
	"bubble/internal/models"
	"bubble/internal/taxonomy"
	"bubble/pkg/augmenter"
)

// BriefRequest is the input of BriefComposer.Compose.
type BriefRequest struct {
	Topic       string
	Category    string
	ArticleText string
	Persona     string
	Mode        string
}

// BriefComposer builds professional briefs: talking points, a pitch outline
// and visual direction tuned to a persona.
type BriefComposer struct {
	deps composerDeps
}

func NewBriefComposer(tax *taxonomy.Taxonomy, kw keywords.Source, aug augmenter.Augmenter) *BriefComposer {
	return &BriefComposer{deps: newComposerDeps(tax, kw, aug)}
}

var pitchOutline = []string{
	"Audience insight: who needs this update and what question keeps them up at night?",
	"Solution arc: how does the development shift their options?",
	"Follow-up: what artifact (deck, mural, prototype) will you produce to make it tangible?",
}

// Compose never fails; without a usable model reply it falls back to the
// persona templates.
func (c *BriefComposer) Compose(ctx context.Context, req BriefRequest) models.ProfessionalBrief {
	r := c.deps.resolve(req.Topic, req.Category, req.ArticleText, req.Mode)
	persona := models.ParsePersona(req.Persona)

	anchor := r.topic
	if len(r.keywords) > 0 {
		anchor = strings.TrimSpace(r.keywords[0])
	}
	spotlight := r.label + spotlightSep + anchor
	palette := Palette(r.keywords)

	if s, ok := c.deps.tryAugment(ctx, r, req.ArticleText); ok {
		effective := orString(s.SpotlightSubject, spotlight)
		return models.ProfessionalBrief{
			Topic:        r.topic,
			Category:     r.label,
			KeyPoints:    orList(s.Questions, func() []string { return keyPoints(r) }),
			CreativeHook: orString(s.PresentationPrompt, creativeHook(r, persona)),
			PitchOutline: orList(s.ImpactHints, outline),
			VisualMood:   visualMood(effective, persona, palette),
			PaletteIdeas: palette,
			CanvasPrompt: orString(s.PresentationQuestion, canvasPrompt(effective, persona, r.keywords)),
			Method:       models.MethodModel,
		}
	}

	return models.ProfessionalBrief{
		Topic:        r.topic,
		Category:     r.label,
		KeyPoints:    keyPoints(r),
		CreativeHook: creativeHook(r, persona),
		PitchOutline: outline(),
		VisualMood:   visualMood(spotlight, persona, palette),
		PaletteIdeas: palette,
		CanvasPrompt: canvasPrompt(spotlight, persona, r.keywords),
		Method:       models.MethodHeuristic + "-" + persona.String(),
	}
}

func keyPoints(r resolved) []string {
	return []string{
		fmt.Sprintf("Explain why this story matters for %s practitioners right now.", r.label),
		fmt.Sprintf("Identify two data points or quotes that anchor the narrative around %s.", r.topic),
		"Outline a partner or collaborator who could amplify the impact.",
	}
}

func creativeHook(r resolved, p models.Persona) string {
	return fmt.Sprintf("%s. Shape a headline or opening visual that ties the piece to %s.", personaAngle(p), r.topic)
}

func outline() []string {
	out := make([]string, len(pitchOutline))
	copy(out, pitchOutline)
	return out
}

func visualMood(spotlight string, p models.Persona, palette []string) string {
	lead := "textured neutrals"
	if len(palette) > 0 {
		lead = palette[0]
	}
	return fmt.Sprintf("%s. Let %s glow against %s so the scene feels ready to paint.", personaVibe(p), spotlight, lead)
}

func canvasPrompt(spotlight string, p models.Persona, kws []string) string {
	supporting := spotlight
	switch {
	case len(kws) > 1:
		supporting = kws[1]
	case len(kws) == 1:
		supporting = kws[0]
	}
	return fmt.Sprintf("Design a large-format piece where %s interacts with %s. "+
		"Layer typography, gesture, or collage that someone working as a %s could present to clients.", spotlight, supporting, p)
}
