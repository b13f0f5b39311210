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

// StudyRequest is the input of StudyComposer.Compose.
type StudyRequest struct {
	Topic       string
	Category    string
	ArticleText string
	Mode        string
}

// StudyComposer builds study suggestions: questions, a presentation prompt
// and question, and impact hints.
type StudyComposer struct {
	deps composerDeps
}

func NewStudyComposer(tax *taxonomy.Taxonomy, kw keywords.Source, aug augmenter.Augmenter) *StudyComposer {
	return &StudyComposer{deps: newComposerDeps(tax, kw, aug)}
}

// Compose never fails; without a usable model reply it falls back to the
// keyword rules.
func (c *StudyComposer) Compose(ctx context.Context, req StudyRequest) models.StudySuggestion {
	r := c.deps.resolve(req.Topic, req.Category, req.ArticleText, req.Mode)
	spotlight := c.spotlight(r)

	if s, ok := c.deps.tryAugment(ctx, r, req.ArticleText); ok {
		effective := orString(s.SpotlightSubject, spotlight)
		return models.StudySuggestion{
			Topic:                r.topic,
			Category:             r.label,
			SpotlightSubject:     effective,
			Questions:            orList(s.Questions, func() []string { return studyQuestions(r) }),
			PresentationPrompt:   orString(s.PresentationPrompt, presentationPrompt(r)),
			PresentationQuestion: orString(s.PresentationQuestion, presentationQuestion(r, effective)),
			ImpactHints:          orList(s.ImpactHints, func() []string { return impactHints(r) }),
			Method:               models.MethodModel,
		}
	}

	method := models.MethodHeuristic
	if r.mode.Thinking {
		method = models.MethodHeuristicThinking
	}
	return models.StudySuggestion{
		Topic:                r.topic,
		Category:             r.label,
		SpotlightSubject:     spotlight,
		Questions:            studyQuestions(r),
		PresentationPrompt:   presentationPrompt(r),
		PresentationQuestion: presentationQuestion(r, spotlight),
		ImpactHints:          impactHints(r),
		Method:               method,
	}
}

func (c *StudyComposer) spotlight(r resolved) string {
	if len(r.keywords) > 0 {
		base := r.topic
		if r.known {
			base = r.category.Label
		}
		return base + spotlightSep + strings.TrimSpace(r.keywords[0])
	}
	if !r.known {
		return r.topic
	}
	for _, slug := range r.category.Parents {
		if parent, ok := c.deps.taxonomy.Get(slug); ok {
			return parent.Label + spotlightSep + r.category.Label
		}
	}
	return r.category.Label
}

func studyQuestions(r resolved) []string {
	kws := r.keywords
	if len(kws) == 0 {
		return []string{fmt.Sprintf("How does the latest development reshape the conversation around %s?", r.topic)}
	}
	questions := []string{
		fmt.Sprintf("What evidence supports the claims around %s and how reliable are the cited sources?", kws[0]),
	}
	if len(kws) > 1 {
		questions = append(questions, fmt.Sprintf("In what ways does %s intersect with %s, and who stands to benefit or lose?", kws[1], r.topic))
	}
	if len(kws) > 2 {
		questions = append(questions, fmt.Sprintf("Which stakeholders are positioned to respond to %s, and what would success look like?", kws[2]))
	}
	if r.mode.Thinking {
		questions = append(questions, "Trace the chain of causes and effects described in the coverage. Where are the gaps you would investigate next?")
	}
	return questions
}

func presentationPrompt(r resolved) string {
	angle := r.topic
	if len(r.keywords) > 0 {
		angle = r.keywords[0]
	}
	return fmt.Sprintf("Build a short presentation that frames '%s' within the broader arc of %s. "+
		"Open with a stakeholder story, follow with two data points, and close on an open question.", angle, r.label)
}

func presentationQuestion(r resolved, spotlight string) string {
	var q string
	if len(r.keywords) > 0 {
		contrast := r.keywords[0]
		if len(r.keywords) > 1 {
			contrast = r.keywords[1]
		}
		q = fmt.Sprintf("How would you build a presentation around %s that helps peers studying %s understand the role of %s?", spotlight, r.topic, contrast)
	} else {
		q = fmt.Sprintf("Which recent story would you spotlight to anchor a presentation on %s, and why does it matter now?", r.topic)
	}
	if r.mode.Thinking {
		q += " Outline the reasoning steps and evidence you would surface."
	}
	return q
}

func impactHints(r resolved) []string {
	var hints []string
	for i, kw := range r.keywords {
		if i == 4 {
			break
		}
		emphasis := "immediate"
		if i > 1 {
			emphasis = "long-tail"
		}
		hints = append(hints, fmt.Sprintf("Assess the %s implications if %s accelerates or stalls over the next quarter.", emphasis, kw))
	}
	if r.mode.Thinking {
		hints = append(hints, "Map counterfactual scenarios and identify signals that would confirm or disprove them.")
	}
	if len(hints) == 0 {
		return []string{"Document two key signals and outline how you would validate them in primary sources."}
	}
	return hints
}
