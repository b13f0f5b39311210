package augmenter

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Reply keys and the alternative spellings models are known to use. The
// first alias with a non-empty value wins.
const (
	keyQuestions            = "questions"
	keyPresentationPrompt   = "presentation_prompt"
	keyPresentationQuestion = "presentation_question"
	keyImpactHints          = "impact_hints"
	keySpotlightSubject     = "spotlight_subject"
)

var fieldAliases = map[string][]string{
	keyQuestions:            {"questions"},
	keyPresentationPrompt:   {"presentation_prompt", "presentationPrompt"},
	keyPresentationQuestion: {"presentation_question", "presentationQuestion"},
	keyImpactHints:          {"impact_hints", "impactHints"},
	keySpotlightSubject:     {"spotlight_subject", "spotlightSubject"},
}

// Parse extracts a Suggestion from a model reply. It accepts the bare JSON
// object, the object wrapped in a Markdown code fence, or the object embedded
// in surrounding prose.
func Parse(text string) (*Suggestion, bool) {
	for _, candidate := range candidates(text) {
		obj, ok := decodeObject(candidate)
		if !ok {
			continue
		}
		return fromObject(obj)
	}
	return nil, false
}

func candidates(text string) []string {
	trimmed := strings.TrimSpace(text)
	out := []string{trimmed}
	unfenced := stripFence(trimmed)
	if unfenced != trimmed {
		out = append(out, unfenced)
	}
	// A reply that is already complete JSON is taken as is; only prose gets
	// searched for an embedded object.
	if json.Valid([]byte(unfenced)) {
		return out
	}
	start, end := strings.Index(trimmed, "{"), strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		out = append(out, trimmed[start:end+1])
	}
	return out
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	body := strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	// Drop an info string such as "json" on the opening fence line.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	}
	return strings.TrimSpace(body)
}

func decodeObject(s string) (map[string]json.RawMessage, bool) {
	if s == "" || s[0] != '{' {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// fromObject maps a decoded object onto a Suggestion. A field of the wrong
// type rejects the whole reply, as does an object with none of the keys.
func fromObject(obj map[string]json.RawMessage) (*Suggestion, bool) {
	var s Suggestion
	found := false

	for _, f := range []struct {
		key string
		dst *string
	}{
		{keyPresentationPrompt, &s.PresentationPrompt},
		{keyPresentationQuestion, &s.PresentationQuestion},
		{keySpotlightSubject, &s.SpotlightSubject},
	} {
		present, ok := lookupString(obj, f.key, f.dst)
		if !ok {
			return nil, false
		}
		found = found || present
	}

	for _, f := range []struct {
		key string
		dst *[]string
	}{
		{keyQuestions, &s.Questions},
		{keyImpactHints, &s.ImpactHints},
	} {
		present, ok := lookupList(obj, f.key, f.dst)
		if !ok {
			return nil, false
		}
		found = found || present
	}

	if !found {
		return nil, false
	}
	return &s, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func lookupString(obj map[string]json.RawMessage, key string, dst *string) (present, ok bool) {
	for _, alias := range fieldAliases[key] {
		raw, exists := obj[alias]
		if !exists {
			continue
		}
		present = true
		if isNull(raw) {
			continue
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return present, false
		}
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
			return true, true
		}
	}
	return present, true
}

func lookupList(obj map[string]json.RawMessage, key string, dst *[]string) (present, ok bool) {
	for _, alias := range fieldAliases[key] {
		raw, exists := obj[alias]
		if !exists {
			continue
		}
		present = true
		if isNull(raw) {
			continue
		}
		var items []string
		if err := json.Unmarshal(raw, &items); err != nil {
			return present, false
		}
		cleaned := make([]string, 0, len(items))
		for _, it := range items {
			if it = strings.TrimSpace(it); it != "" {
				cleaned = append(cleaned, it)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
			return true, true
		}
	}
	return present, true
}
