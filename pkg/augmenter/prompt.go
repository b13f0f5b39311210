package augmenter

import "strings"

// maxPromptKeywords caps how many keywords reach the model.
const maxPromptKeywords = 6

// DefaultPromptTemplate is used when no template file is configured.
const DefaultPromptTemplate = "You are an analyst coach helping people study relevant news. " +
	"Model variant: {{MODE}}. {{REASONING}}\n" +
	"Topic: {{TOPIC}}\n" +
	"Keywords: {{KEYWORDS}}\n" +
	"Article:\n{{ARTICLE}}\n" +
	"Return JSON with keys questions (list), presentation_prompt, presentation_question, impact_hints (list)," +
	" and spotlight_subject (string)."

const (
	reasoningThinking = "Provide numbered reasoning steps before the answer."
	reasoningConcise  = "Respond succinctly."
)

// BuildPrompt fills the template placeholders. Substitution is a single pass,
// so placeholder text inside the article is left alone.
func BuildPrompt(template string, req Request) string {
	reasoning := reasoningConcise
	if req.Mode.Thinking {
		reasoning = reasoningThinking
	}
	kws := req.Keywords
	if len(kws) > maxPromptKeywords {
		kws = kws[:maxPromptKeywords]
	}
	r := strings.NewReplacer(
		"{{MODE}}", req.Mode.Baseline,
		"{{REASONING}}", reasoning,
		"{{TOPIC}}", req.Topic,
		"{{KEYWORDS}}", strings.Join(kws, ", "),
		"{{ARTICLE}}", req.ArticleText,
	)
	return r.Replace(template)
}
