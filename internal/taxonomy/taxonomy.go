// Package taxonomy holds the subject category graph shared by every request.
package taxonomy

import (
	"slices"
	"sort"

	"bubble/internal/models"

	log "github.com/sirupsen/logrus"
)

// DefaultGroup is assigned to records that do not name a group.
const DefaultGroup = "general"

// Record is the raw form of a category as read from a taxonomy file.
type Record struct {
	Slug         string   `json:"slug" yaml:"slug"`
	Label        string   `json:"label" yaml:"label"`
	Group        string   `json:"group,omitempty" yaml:"group,omitempty"`
	Parents      []string `json:"parents,omitempty" yaml:"parents,omitempty"`
	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Professional bool     `json:"professional,omitempty" yaml:"professional,omitempty"`
}

// Taxonomy indexes categories by slug and by group. It is read-only after
// New returns and safe for concurrent use.
type Taxonomy struct {
	order   []string
	bySlug  map[string]models.Category
	byGroup map[string][]models.Category
}

// New builds a Taxonomy from raw records. When two records share a slug the
// later one wins and the earlier one is dropped from its group bucket.
func New(records []Record) *Taxonomy {
	t := &Taxonomy{
		bySlug:  make(map[string]models.Category, len(records)),
		byGroup: make(map[string][]models.Category),
	}
	for _, r := range records {
		if r.Slug == "" {
			log.Warnf("Skipping taxonomy record without slug (label %q)", r.Label)
			continue
		}
		cat := newCategory(r)
		if prev, ok := t.bySlug[cat.Slug]; ok {
			log.Debugf("Taxonomy slug %q defined more than once; last definition wins", cat.Slug)
			t.removeFromGroup(prev)
		} else {
			t.order = append(t.order, cat.Slug)
		}
		t.bySlug[cat.Slug] = cat
		t.byGroup[cat.Group] = append(t.byGroup[cat.Group], cat)
	}
	return t
}

func newCategory(r Record) models.Category {
	group := r.Group
	if group == "" {
		group = DefaultGroup
	}
	parents := []string{}
	if len(r.Parents) > 0 {
		parents = slices.Clone(r.Parents)
	}
	return models.Category{
		Slug:         r.Slug,
		Label:        r.Label,
		Group:        group,
		Parents:      parents,
		Tags:         normalizeTags(r.Tags),
		Professional: r.Professional,
	}
}

// clone copies the slices of a stored category so callers cannot write
// through to the index.
func clone(c models.Category) models.Category {
	c.Parents = slices.Clone(c.Parents)
	c.Tags = slices.Clone(c.Tags)
	return c
}

// normalizeTags deduplicates and sorts tags.
func normalizeTags(tags []string) []string {
	out := slices.Clone(tags)
	if out == nil {
		return []string{}
	}
	sort.Strings(out)
	return slices.Compact(out)
}

func (t *Taxonomy) removeFromGroup(cat models.Category) {
	bucket := slices.DeleteFunc(t.byGroup[cat.Group], func(c models.Category) bool {
		return c.Slug == cat.Slug
	})
	if len(bucket) == 0 {
		delete(t.byGroup, cat.Group)
		return
	}
	t.byGroup[cat.Group] = bucket
}

// All returns every category in first-definition order.
func (t *Taxonomy) All() []models.Category {
	out := make([]models.Category, 0, len(t.order))
	for _, slug := range t.order {
		out = append(out, clone(t.bySlug[slug]))
	}
	return out
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int { return len(t.order) }

// Groups returns the distinct group names, sorted.
func (t *Taxonomy) Groups() []string {
	groups := make([]string, 0, len(t.byGroup))
	for g := range t.byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// ByGroup returns the categories of a group in insertion order. A nil
// professional means no filter; otherwise the flag must match exactly.
// Unknown groups yield an empty slice.
func (t *Taxonomy) ByGroup(group string, professional *bool) []models.Category {
	out := []models.Category{}
	for _, c := range t.byGroup[group] {
		if professional == nil || c.Professional == *professional {
			out = append(out, clone(c))
		}
	}
	return out
}

// Select returns the categories of group, or every category when group is
// empty, filtered by professional as in ByGroup.
func (t *Taxonomy) Select(group string, professional *bool) []models.Category {
	if group != "" {
		return t.ByGroup(group, professional)
	}
	out := []models.Category{}
	for _, slug := range t.order {
		c := t.bySlug[slug]
		if professional == nil || c.Professional == *professional {
			out = append(out, clone(c))
		}
	}
	return out
}

// Get looks up a category by slug.
func (t *Taxonomy) Get(slug string) (models.Category, bool) {
	c, ok := t.bySlug[slug]
	if !ok {
		return models.Category{}, false
	}
	return clone(c), true
}

// Label resolves a slug to its display label, or returns the slug itself
// when the category is unknown.
func (t *Taxonomy) Label(slug string) string {
	if c, ok := t.bySlug[slug]; ok {
		return c.Label
	}
	return slug
}

// TagsFor returns a copy of the category's tags, or an empty slice.
func (t *Taxonomy) TagsFor(slug string) []string {
	c, ok := t.bySlug[slug]
	if !ok {
		return []string{}
	}
	return slices.Clone(c.Tags)
}

// ProfessionalCategories returns every category flagged professional.
func (t *Taxonomy) ProfessionalCategories() []models.Category {
	out := []models.Category{}
	for _, slug := range t.order {
		if c := t.bySlug[slug]; c.Professional {
			out = append(out, clone(c))
		}
	}
	return out
}

// Lineage returns the labels of the category's parents that resolve in the
// taxonomy, in declared order.
func (t *Taxonomy) Lineage(cat models.Category) []string {
	path := []string{}
	for _, p := range cat.Parents {
		if parent, ok := t.bySlug[p]; ok {
			path = append(path, parent.Label)
		}
	}
	return path
}
