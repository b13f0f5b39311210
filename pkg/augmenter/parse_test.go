package augmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Aliases(t *testing.T) {
	s, ok := Parse(`{"presentationQuestion":"camel","spotlightSubject":"spot"}`)
	require.True(t, ok)
	assert.Equal(t, "camel", s.PresentationQuestion)
	assert.Equal(t, "spot", s.SpotlightSubject)
	assert.Empty(t, s.Questions)
	assert.Empty(t, s.ImpactHints)
}

func TestParse_EmptyCanonicalFallsBackToAlias(t *testing.T) {
	s, ok := Parse(`{"presentation_question":"","presentationQuestion":"alias wins"}`)
	require.True(t, ok)
	assert.Equal(t, "alias wins", s.PresentationQuestion)
}

func TestParse_NullFieldsIgnored(t *testing.T) {
	s, ok := Parse(`{"questions":null,"spotlight_subject":"S"}`)
	require.True(t, ok)
	assert.Equal(t, "S", s.SpotlightSubject)
	assert.Empty(t, s.Questions)
}

func TestParse_Fenced(t *testing.T) {
	s, ok := Parse("```json\n{\"questions\":[\"Q\"]}\n```")
	require.True(t, ok)
	assert.Equal(t, []string{"Q"}, s.Questions)
}

func TestParse_EmbeddedAfterReasoning(t *testing.T) {
	text := "1. The article is about bonds.\n2. So I ask about them.\n{\"questions\":[\"Why bonds?\"],\"impact_hints\":[\"Watch yields\"]}\nDone."
	s, ok := Parse(text)
	require.True(t, ok)
	assert.Equal(t, []string{"Why bonds?"}, s.Questions)
	assert.Equal(t, []string{"Watch yields"}, s.ImpactHints)
}

func TestParse_BlankListItemsDropped(t *testing.T) {
	s, ok := Parse(`{"questions":["  ","Q"," "]}`)
	require.True(t, ok)
	assert.Equal(t, []string{"Q"}, s.Questions)
}

func TestParse_Rejects(t *testing.T) {
	for _, text := range []string{
		"",
		"plain text",
		"[1,2,3]",
		`[{"questions":["q"]}]`,
		"```json\n[{\"questions\":[\"q\"]}]\n```",
		`"string"`,
		"{}",
		`{"other":1}`,
		`{"questions":"not a list"}`,
		`{"questions":[1,2]}`,
		`{"presentation_prompt":42}`,
		"{ broken json",
	} {
		s, ok := Parse(text)
		assert.False(t, ok, text)
		assert.Nil(t, s, text)
	}
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, "no fence", stripFence("no fence"))
}
