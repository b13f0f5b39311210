package services

import (
	"context"
	"strings"

	"bubble/internal/keywords"
	"bubble/internal/models"
	"bubble/internal/taxonomy"
	"bubble/pkg/augmenter"

	log "github.com/sirupsen/logrus"
)

// spotlightSep joins the two halves of a spotlight subject.
const spotlightSep = " · "

// composerDeps are the collaborators shared by both composers.
type composerDeps struct {
	taxonomy  *taxonomy.Taxonomy
	keywords  keywords.Source
	augmenter augmenter.Augmenter
}

func newComposerDeps(tax *taxonomy.Taxonomy, kw keywords.Source, aug augmenter.Augmenter) composerDeps {
	if tax == nil {
		tax = taxonomy.New(nil)
	}
	if kw == nil {
		kw = keywords.Static(nil)
	}
	if aug == nil {
		aug = augmenter.Noop{}
	}
	return composerDeps{taxonomy: tax, keywords: kw, augmenter: aug}
}

// resolved is the per-request state every composition starts from.
type resolved struct {
	topic    string
	mode     models.Mode
	keywords []string
	category models.Category
	known    bool
	label    string
}

func (d composerDeps) resolve(topic, category, articleText, mode string) resolved {
	if strings.TrimSpace(mode) == "" {
		mode = models.DefaultMode
	}
	r := resolved{
		topic:    topic,
		mode:     models.ParseMode(mode),
		keywords: d.keywords.Extract(articleText),
		label:    category,
	}
	if cat, ok := d.taxonomy.Get(category); ok {
		r.category, r.known, r.label = cat, true, cat.Label
	}
	return r
}

// tryAugment asks the augmenter for a suggestion when it is available for
// the request's mode. A false result means the caller composes
// deterministically.
func (d composerDeps) tryAugment(ctx context.Context, r resolved, articleText string) (*augmenter.Suggestion, bool) {
	if !d.augmenter.Available(r.mode) {
		log.Debugf("Augmenter unavailable for mode %q; composing heuristically", r.mode)
		return nil, false
	}
	s, ok := d.augmenter.Generate(ctx, augmenter.Request{
		Topic:       r.topic,
		Keywords:    r.keywords,
		ArticleText: articleText,
		Mode:        r.mode,
	})
	if !ok || s == nil {
		log.Debugf("Augmenter produced no usable result for mode %q; falling back", r.mode)
		return nil, false
	}
	return s, true
}

func orString(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func orList(v []string, fallback func() []string) []string {
	if len(v) == 0 {
		return fallback()
	}
	return v
}
