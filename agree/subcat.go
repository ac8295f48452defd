package agree

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/mbreuer/gramcheck"
	"github.com/pkg/errors"
)

// --- Verb subcategorization frames -------------------------------------------

// Frame describes the argument structure of a verb lemma.
type Frame struct {
	// AllowsNP permits a direct NP object ("read a book").
	AllowsNP bool `json:"allows_np"`
	// RequiresNP demands a direct object: a strictly transitive verb used
	// bare ("she devoured") is a violation.
	RequiresNP bool `json:"requires_np"`
	// RequiresPP demands a prepositional complement when the verb takes an
	// argument ("went the school" vs. "went to the school").
	RequiresPP bool `json:"requires_pp"`
}

// FrameTable maps verb lemmas to their subcategorization frames. A lemma
// missing from the table is never checked.
type FrameTable struct {
	frames map[string]Frame
}

// NewFrameTable creates an empty frame table.
func NewFrameTable() *FrameTable {
	return &FrameTable{frames: make(map[string]Frame)}
}

// Lookup returns the frame for a lemma, and whether the table knows it.
func (t *FrameTable) Lookup(lemma string) (Frame, bool) {
	f, ok := t.frames[strings.ToLower(lemma)]
	return f, ok
}

// Set registers or replaces the frame for a lemma.
func (t *FrameTable) Set(lemma string, f Frame) {
	t.frames[strings.ToLower(lemma)] = f
}

// Len returns the number of known lemmas.
func (t *FrameTable) Len() int {
	return len(t.frames)
}

// LoadFrames reads a frame table from JSON of the form
//
//	{"verbs": {"go": {"allows_np": false, "requires_pp": true}, …}}
//
// which is the format subcategorization extractions are distributed in.
// Top-level keys other than "verbs" are ignored.
func LoadFrames(r io.Reader) (*FrameTable, error) {
	var doc struct {
		Verbs map[string]Frame `json:"verbs"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrapf(gramcheck.ErrInput, "reading frame table: %v", err)
	}
	if len(doc.Verbs) == 0 {
		return nil, errors.Wrap(gramcheck.ErrInput, "frame table contains no verbs")
	}
	t := NewFrameTable()
	for lemma, f := range doc.Verbs {
		t.Set(lemma, f)
	}
	tracer().Infof("loaded %d subcategorization frames", t.Len())
	return t, nil
}

// DefaultFrames returns the built-in frame table: a curated set covering
// common motion verbs (prepositional complement, no direct object), strictly
// transitive verbs, and verbs flexible about their objects.
func DefaultFrames() *FrameTable {
	t := NewFrameTable()
	// Motion and perception verbs take a directional or oblique PP and
	// reject bare NP objects ("went the school"). After Levin (1993).
	for _, lemma := range []string{
		"go", "come", "travel", "arrive", "depart", "return",
		"proceed", "advance", "retreat", "enter", "exit",
		"listen", "smile", "laugh", "look", "stare", "glance",
	} {
		t.Set(lemma, Frame{RequiresPP: true})
	}
	// Strictly transitive verbs demand a direct object.
	for _, lemma := range []string{
		"devour", "enjoy", "need", "use", "carry", "bring", "fix",
	} {
		t.Set(lemma, Frame{AllowsNP: true, RequiresNP: true})
	}
	// Optionally transitive verbs.
	for _, lemma := range []string{
		"buy", "read", "see", "eat", "write", "want", "like", "love",
		"give", "send", "take", "make", "find", "know", "say", "watch",
		"attend", "pick", "sing", "drink", "run", "walk", "sleep", "jog",
	} {
		t.Set(lemma, Frame{AllowsNP: true})
	}
	// put takes both an object and a locative PP.
	t.Set("put", Frame{AllowsNP: true, RequiresNP: true, RequiresPP: true})
	return t
}
