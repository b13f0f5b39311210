package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickSubject_Lineage(t *testing.T) {
	tax := New(sampleRecords())
	r := NewSeededRandomizer(tax, 7)

	subject, err := r.PickSubject("science", boolPtr(true))
	require.NoError(t, err)
	assert.Equal(t, "climate", subject.Slug)
	assert.Equal(t, []string{"science", "missing"}, subject.Parents)
	assert.Equal(t, []string{"Science"}, subject.Path)
	assert.True(t, subject.Professional)
}

func TestPickSubject_FiltersWithoutGroup(t *testing.T) {
	tax := New(sampleRecords())
	r := NewSeededRandomizer(tax, 1)

	for i := 0; i < 20; i++ {
		subject, err := r.PickSubject("", boolPtr(true))
		require.NoError(t, err)
		assert.True(t, subject.Professional)
		assert.Contains(t, []string{"climate", "finance"}, subject.Slug)
	}
}

func TestPickSubject_DeterministicWithSeed(t *testing.T) {
	tax := New(sampleRecords())
	a := NewSeededRandomizer(tax, 42)
	b := NewSeededRandomizer(tax, 42)
	for i := 0; i < 10; i++ {
		sa, err := a.PickSubject("", nil)
		require.NoError(t, err)
		sb, err := b.PickSubject("", nil)
		require.NoError(t, err)
		assert.Equal(t, sa, sb)
	}
}

func TestPickSubject_EmptyPool(t *testing.T) {
	tax := New(sampleRecords())
	r := NewRandomizer(tax)

	_, err := r.PickSubject("business", boolPtr(false))
	assert.ErrorIs(t, err, ErrNoCategories)

	_, err = r.PickSubject("nowhere", nil)
	assert.ErrorIs(t, err, ErrNoCategories)

	_, err = NewRandomizer(New(nil)).PickSubject("", nil)
	assert.ErrorIs(t, err, ErrNoCategories)
}

func TestPickSubject_DoesNotShareTaxonomySlices(t *testing.T) {
	tax := New(sampleRecords())
	r := NewSeededRandomizer(tax, 7)

	subject, err := r.PickSubject("science", boolPtr(true))
	require.NoError(t, err)
	subject.Tags[0] = "changed"
	subject.Parents[0] = "changed"

	assert.Equal(t, []string{"climate", "energy"}, tax.TagsFor("climate"))
	again, err := r.PickSubject("science", boolPtr(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"science", "missing"}, again.Parents)
}
