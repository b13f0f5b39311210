package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"bubble/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func sampleRecords() []Record {
	return []Record{
		{Slug: "science", Label: "Science", Group: "science"},
		{Slug: "climate", Label: "Climate", Group: "science", Parents: []string{"science", "missing"}, Tags: []string{"energy", "climate", "energy"}, Professional: true},
		{Slug: "finance", Label: "Finance", Group: "business", Tags: []string{"market", "bank"}, Professional: true},
		{Slug: "misc", Label: "Misc"},
	}
}

func TestNew_Defaults(t *testing.T) {
	tax := New(sampleRecords())

	misc, ok := tax.Get("misc")
	require.True(t, ok)
	assert.Equal(t, DefaultGroup, misc.Group)
	assert.Empty(t, misc.Parents)
	assert.NotNil(t, misc.Parents)
	assert.Empty(t, misc.Tags)
	assert.NotNil(t, misc.Tags)
	assert.False(t, misc.Professional)
}

func TestNew_TagsDedupedAndSorted(t *testing.T) {
	tax := New(sampleRecords())
	assert.Equal(t, []string{"climate", "energy"}, tax.TagsFor("climate"))
	assert.Equal(t, []string{"bank", "market"}, tax.TagsFor("finance"))
	assert.Equal(t, []string{}, tax.TagsFor("nope"))
}

func TestGet_RoundTrip(t *testing.T) {
	tax := New(sampleRecords())
	for _, c := range tax.All() {
		got, ok := tax.Get(c.Slug)
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := tax.Get("unknown")
	assert.False(t, ok)
}

func TestAll_PreservesFirstAppearanceOrder(t *testing.T) {
	tax := New(sampleRecords())
	var slugs []string
	for _, c := range tax.All() {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{"science", "climate", "finance", "misc"}, slugs)
	assert.Equal(t, 4, tax.Len())
}

func TestGroups_Sorted(t *testing.T) {
	tax := New(sampleRecords())
	assert.Equal(t, []string{"business", "general", "science"}, tax.Groups())
}

func TestByGroup(t *testing.T) {
	tax := New(sampleRecords())

	all := tax.ByGroup("science", nil)
	require.Len(t, all, 2)
	assert.Equal(t, "science", all[0].Slug)
	assert.Equal(t, "climate", all[1].Slug)

	pro := tax.ByGroup("science", boolPtr(true))
	require.Len(t, pro, 1)
	assert.Equal(t, "climate", pro[0].Slug)

	nonPro := tax.ByGroup("science", boolPtr(false))
	require.Len(t, nonPro, 1)
	assert.Equal(t, "science", nonPro[0].Slug)

	assert.Equal(t, []models.Category{}, tax.ByGroup("", nil))
	assert.Equal(t, []models.Category{}, tax.ByGroup("does-not-exist", nil))
}

func TestSelect(t *testing.T) {
	tax := New(sampleRecords())

	assert.Len(t, tax.Select("", nil), tax.Len())
	assert.Equal(t, tax.ByGroup("science", nil), tax.Select("science", nil))
	for _, c := range tax.Select("", boolPtr(true)) {
		assert.True(t, c.Professional)
	}
	assert.Equal(t, []models.Category{}, tax.Select("does-not-exist", nil))
}

func TestNew_DuplicateSlugLastWins(t *testing.T) {
	tax := New([]Record{
		{Slug: "a", Label: "First", Group: "one"},
		{Slug: "b", Label: "B", Group: "one"},
		{Slug: "a", Label: "Second", Group: "two"},
	})

	got, ok := tax.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Second", got.Label)
	assert.Equal(t, 2, tax.Len())

	one := tax.ByGroup("one", nil)
	require.Len(t, one, 1)
	assert.Equal(t, "b", one[0].Slug)

	two := tax.ByGroup("two", nil)
	require.Len(t, two, 1)
	assert.Equal(t, "Second", two[0].Label)
}

func TestNew_DuplicateSlugEmptiesGroup(t *testing.T) {
	tax := New([]Record{
		{Slug: "a", Label: "First", Group: "old"},
		{Slug: "a", Label: "Second", Group: "new"},
	})
	assert.Equal(t, []string{"new"}, tax.Groups())
}

func TestProfessionalCategories(t *testing.T) {
	tax := New(sampleRecords())
	pro := tax.ProfessionalCategories()
	require.Len(t, pro, 2)
	assert.Equal(t, "climate", pro[0].Slug)
	assert.Equal(t, "finance", pro[1].Slug)
}

func TestLabelAndLineage(t *testing.T) {
	tax := New(sampleRecords())
	assert.Equal(t, "Climate", tax.Label("climate"))
	assert.Equal(t, "unknown-slug", tax.Label("unknown-slug"))

	climate, _ := tax.Get("climate")
	assert.Equal(t, []string{"Science"}, tax.Lineage(climate))
}

func TestEmptyTaxonomy(t *testing.T) {
	tax := New(nil)
	assert.Empty(t, tax.All())
	assert.Empty(t, tax.Groups())
	assert.Empty(t, tax.ProfessionalCategories())
	_, ok := tax.Get("x")
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)
	assert.NotZero(t, tax.Len())
	assert.NotEmpty(t, tax.ProfessionalCategories())
	for _, c := range tax.All() {
		assert.NotEmpty(t, c.Label, c.Slug)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "cats.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"slug":"x","label":"X","tags":["b","a"],"professional":true}]`), 0o644))
	tax, err := LoadFile(jsonPath)
	require.NoError(t, err)
	x, ok := tax.Get("x")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, x.Tags)
	assert.True(t, x.Professional)

	yamlPath := filepath.Join(dir, "cats.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- slug: y\n  label: Y\n  group: g\n"), 0o644))
	tax, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"g"}, tax.Groups())

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("- slug: z\n"), 0o644))
	_, err = LoadFile(badPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	tax, err = LoadFile("")
	require.NoError(t, err)
	assert.NotZero(t, tax.Len())
}

func TestAccessorsReturnCopies(t *testing.T) {
	tax := New(sampleRecords())

	got, ok := tax.Get("climate")
	require.True(t, ok)
	got.Tags[0] = "changed"
	got.Parents[0] = "changed"

	all := tax.All()
	all[1].Tags[1] = "changed"

	tax.ByGroup("science", nil)[1].Tags[0] = "changed"
	tax.Select("", nil)[1].Parents[1] = "changed"
	tax.ProfessionalCategories()[0].Tags[0] = "changed"

	again, ok := tax.Get("climate")
	require.True(t, ok)
	assert.Equal(t, []string{"climate", "energy"}, again.Tags)
	assert.Equal(t, []string{"science", "missing"}, again.Parents)
	assert.Equal(t, []string{"climate", "energy"}, tax.TagsFor("climate"))
	assert.Equal(t, []string{"Science"}, tax.Lineage(again))
}
