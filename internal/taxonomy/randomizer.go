package taxonomy

import (
	"errors"
	"math/rand/v2"
)

// ErrNoCategories is returned when no category matches the requested filters.
var ErrNoCategories = errors.New("no categories available for the selected filters")

// Subject is a randomly picked category together with its resolved lineage.
type Subject struct {
	Slug         string   `json:"slug"`
	Label        string   `json:"label"`
	Group        string   `json:"group"`
	Tags         []string `json:"tags"`
	Professional bool     `json:"professional"`
	Parents      []string `json:"parents"`
	Path         []string `json:"path"`
}

// Randomizer picks subjects from a taxonomy.
type Randomizer struct {
	tax  *Taxonomy
	intn func(n int) int
}

// NewRandomizer returns a Randomizer backed by the global random source.
func NewRandomizer(tax *Taxonomy) *Randomizer {
	return &Randomizer{tax: tax, intn: rand.IntN}
}

// NewSeededRandomizer returns a Randomizer with a deterministic source. It is
// not safe for concurrent use.
func NewSeededRandomizer(tax *Taxonomy, seed uint64) *Randomizer {
	r := rand.New(rand.NewPCG(seed, seed))
	return &Randomizer{tax: tax, intn: r.IntN}
}

// PickSubject chooses uniformly among the categories of group, or among all
// categories when group is empty. A non-nil professional restricts the pool
// to categories whose flag matches.
func (r *Randomizer) PickSubject(group string, professional *bool) (Subject, error) {
	pool := r.tax.Select(group, professional)
	if len(pool) == 0 {
		return Subject{}, ErrNoCategories
	}

	choice := pool[r.intn(len(pool))]
	return Subject{
		Slug:         choice.Slug,
		Label:        choice.Label,
		Group:        choice.Group,
		Tags:         choice.Tags,
		Professional: choice.Professional,
		Parents:      choice.Parents,
		Path:         r.tax.Lineage(choice),
	}, nil
}
