package models

import "strings"

// DefaultMode is used when a caller does not name a mode.
const DefaultMode = "quen-3.4b"

const thinkingSuffix = "-thinking"

// Mode is a parsed mode token: "<baseline>" or "<baseline>-thinking",
// optionally followed by ":<tag>" (e.g. "quen-2.5-thinking:q4").
type Mode struct {
	Raw      string
	Baseline string
	Thinking bool
}

// ParseMode splits a mode token into its baseline and thinking flag.
// The ":<tag>" part is ignored for both.
func ParseMode(token string) Mode {
	raw := strings.TrimSpace(token)
	head, _, _ := strings.Cut(raw, ":")
	m := Mode{Raw: raw, Baseline: head}
	if strings.HasSuffix(head, thinkingSuffix) {
		m.Thinking = true
		m.Baseline = strings.TrimSuffix(head, thinkingSuffix)
	}
	return m
}

func (m Mode) String() string { return m.Raw }
