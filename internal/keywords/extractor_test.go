package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArticle = "Green bonds fund forest restoration. Green bonds attract climate finance."

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewExtractor(0, 0)
	require.NoError(t, err)
	return e
}

func TestExtractor_Defaults(t *testing.T) {
	e := newTestExtractor(t)
	assert.Equal(t, DefaultMaxKeywords, e.MaxKeywords())
	assert.Equal(t, DefaultMaxNgram, e.maxNgram)
}

func TestExtractor_RanksRepeatedPhraseFirst(t *testing.T) {
	e := newTestExtractor(t)
	got := e.Extract(sampleArticle)
	require.NotEmpty(t, got)
	assert.Equal(t, "Green bonds", got[0])
	assert.LessOrEqual(t, len(got), DefaultMaxKeywords)
}

func TestExtractor_Deterministic(t *testing.T) {
	e := newTestExtractor(t)
	first := e.Extract(sampleArticle)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.Extract(sampleArticle))
	}
}

func TestExtractor_NoStopwordEdgesOrDuplicates(t *testing.T) {
	e := newTestExtractor(t)
	text := "The city of Lagos is expanding the network of bus lanes. Riders in the city say the lanes are faster than the old routes."
	got := e.Extract(text)
	require.NotEmpty(t, got)

	seen := map[string]bool{}
	for _, kw := range got {
		words := strings.Fields(strings.ToLower(kw))
		require.NotEmpty(t, words)
		assert.False(t, isStopword(words[0]), kw)
		assert.False(t, isStopword(words[len(words)-1]), kw)
		assert.LessOrEqual(t, len(words), DefaultMaxNgram)
		assert.False(t, seen[strings.ToLower(kw)], "duplicate %q", kw)
		seen[strings.ToLower(kw)] = true
	}
}

func TestExtractor_SkipsNumbers(t *testing.T) {
	e := newTestExtractor(t)
	got := e.Extract("In 2024 revenue grew 15% while 2025 forecasts remain cautious.")
	for _, kw := range got {
		assert.NotContains(t, kw, "2024")
		assert.NotContains(t, kw, "2025")
		assert.NotContains(t, kw, "15")
	}
	assert.NotEmpty(t, got)
}

func TestExtractor_Limit(t *testing.T) {
	e, err := NewExtractor(2, 2)
	require.NoError(t, err)
	got := e.Extract("Solar panels, wind turbines, battery storage and grid upgrades dominate the energy transition debate.")
	assert.Len(t, got, 2)

	assert.Empty(t, e.ExtractN("anything at all", 0))
}

func TestExtractor_EmptyText(t *testing.T) {
	e := newTestExtractor(t)
	assert.Equal(t, []string{}, e.Extract(""))
	assert.Equal(t, []string{}, e.Extract("   \n\t "))
	assert.Equal(t, []string{}, e.Extract("the and of"))
}

func TestTokenize_TrimsEdgePunctuation(t *testing.T) {
	toks := tokenize(`"Hello," she said (quietly) -- state-of-the-art teachers' work`)
	var keys []string
	for _, tok := range toks {
		keys = append(keys, tok.key)
	}
	assert.Equal(t, []string{"hello", "she", "said", "quietly", "state-of-the-art", "teachers", "work"}, keys)

	assert.True(t, toks[1].breakBefore, "comma after hello separates it from she")
	assert.False(t, toks[2].breakBefore)
	assert.True(t, toks[3].breakBefore, "opening parenthesis")
	assert.True(t, toks[4].breakBefore, "closing parenthesis and dash")
}

func TestStatic(t *testing.T) {
	s := Static{"a", "b"}
	got := s.Extract("ignored")
	assert.Equal(t, []string{"a", "b"}, got)
	got[0] = "changed"
	assert.Equal(t, "a", s[0])

	assert.Equal(t, []string{}, Static(nil).Extract("x"))
}
