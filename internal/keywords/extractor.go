package keywords

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

const (
	DefaultMaxKeywords = 12
	DefaultMaxNgram    = 3
)

// Extractor ranks 1..MaxNgram word phrases by frequency, phrase length and
// how early they first appear. Output is deterministic for a given input.
type Extractor struct {
	tokenizer   *sentences.DefaultSentenceTokenizer
	maxKeywords int
	maxNgram    int
}

// NewExtractor builds an Extractor backed by the English sentence model.
// Non-positive limits fall back to the defaults.
func NewExtractor(maxKeywords, maxNgram int) (*Extractor, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	if maxNgram <= 0 {
		maxNgram = DefaultMaxNgram
	}
	return &Extractor{tokenizer: tokenizer, maxKeywords: maxKeywords, maxNgram: maxNgram}, nil
}

// MaxKeywords reports the configured result size.
func (e *Extractor) MaxKeywords() int { return e.maxKeywords }

type token struct {
	surface string
	key     string
	// breakBefore marks punctuation that separates this token from the previous one.
	breakBefore bool
}

type candidate struct {
	surface  string
	key      string
	words    int
	count    int
	first    int
	sentence int
}

func (c *candidate) score() float64 {
	lengthWeight := 1 + 0.25*float64(c.words-1)
	positionBoost := 1 + 1/float64(1+c.sentence)
	return float64(c.count) * lengthWeight * positionBoost
}

// Extract implements Source.
func (e *Extractor) Extract(text string) []string {
	return e.ExtractN(text, e.maxKeywords)
}

// ExtractN is Extract with an explicit result size.
func (e *Extractor) ExtractN(text string, limit int) []string {
	if strings.TrimSpace(text) == "" || limit <= 0 {
		return []string{}
	}

	byKey := make(map[string]*candidate)
	var ordered []*candidate
	offset := 0
	for si, sent := range e.tokenizer.Tokenize(text) {
		toks := tokenize(sent.Text)
		for i := range toks {
			for n := 1; n <= e.maxNgram && i+n <= len(toks); n++ {
				if n > 1 && toks[i+n-1].breakBefore {
					break
				}
				window := toks[i : i+n]
				if !acceptable(window) {
					continue
				}
				key, surface := join(window)
				c, ok := byKey[key]
				if !ok {
					c = &candidate{surface: surface, key: key, words: n, first: offset + i, sentence: si}
					byKey[key] = c
					ordered = append(ordered, c)
				}
				c.count++
			}
		}
		offset += len(toks)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := ordered[i].score(), ordered[j].score()
		if si != sj {
			return si > sj
		}
		if ordered[i].first != ordered[j].first {
			return ordered[i].first < ordered[j].first
		}
		return ordered[i].key < ordered[j].key
	})

	out := []string{}
	var picked []string
	for _, c := range ordered {
		if len(out) == limit {
			break
		}
		if overlaps(c.key, picked) {
			continue
		}
		picked = append(picked, c.key)
		out = append(out, c.surface)
	}
	return out
}

// tokenize splits a sentence into words, trimming edge punctuation. Hyphens
// and apostrophes inside a word are kept.
func tokenize(sentence string) []token {
	var toks []token
	pendingBreak := false
	for _, field := range strings.Fields(sentence) {
		start := strings.IndexFunc(field, isWordRune)
		if start < 0 {
			pendingBreak = true
			continue
		}
		end := strings.LastIndexFunc(field, isWordRune)
		_, size := utf8.DecodeRuneInString(field[end:])
		word := field[start : end+size]
		toks = append(toks, token{
			surface:     word,
			key:         strings.ToLower(word),
			breakBefore: pendingBreak || start > 0,
		})
		pendingBreak = end+size < len(field)
	}
	return toks
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func acceptable(window []token) bool {
	first, last := window[0].key, window[len(window)-1].key
	if isStopword(first) || isStopword(last) {
		return false
	}
	if len(window) == 1 && len([]rune(first)) < 2 {
		return false
	}
	for _, t := range window {
		if isNumeric(t.key) {
			return false
		}
	}
	return true
}

func isNumeric(w string) bool {
	for _, r := range w {
		if !unicode.IsDigit(r) && r != '.' && r != ',' && r != '-' && r != '%' {
			return false
		}
	}
	return true
}

func join(window []token) (key, surface string) {
	keys := make([]string, len(window))
	surfaces := make([]string, len(window))
	for i, t := range window {
		keys[i] = t.key
		surfaces[i] = t.surface
	}
	return strings.Join(keys, " "), strings.Join(surfaces, " ")
}

// overlaps reports whether key is a whole-word run inside one of the picked
// phrases or contains one of them.
func overlaps(key string, picked []string) bool {
	k := " " + key + " "
	for _, p := range picked {
		pp := " " + p + " "
		if strings.Contains(pp, k) || strings.Contains(k, pp) {
			return true
		}
	}
	return false
}
