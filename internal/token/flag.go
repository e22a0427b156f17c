package token

// FlagShape describes how many argument words a recognized flag consumes.
type FlagShape int

const (
	// FlagNone: the flag takes no value (e.g. -split).
	FlagNone FlagShape = iota
	// FlagSingle: exactly one following word, quoting permitted.
	FlagSingle
	// FlagOptionalSingle: zero or one following word.
	FlagOptionalSingle
	// FlagMulti: a run of words up to a per-flag maximum, terminated by
	// another recognized -flag or end of line.
	FlagMulti
)

// FlagSpec is one entry in a macro's closed flag vocabulary.
type FlagSpec struct {
	Name     string
	Shape    FlagShape
	MaxWords int // only meaningful when Shape == FlagMulti; 0 means unbounded
}

// FlagVocabulary maps recognized flag names (without the leading '-') to
// their shape, scoped to a single macro.
type FlagVocabulary map[string]FlagSpec

// ParsedFlag is one recognized -flag plus the values it consumed.
type ParsedFlag struct {
	Name   string
	Pos    int
	Values []string
}

// ParseFlags consumes a leading run of recognized "-word" flags from t,
// stopping at the first token that is not itself a recognized flag name.
// Unrecognized "-"-prefixed tokens are reported via the returned warnings
// slice and consumed as ordinary words (matching the historical
// "argument-like parameter" diagnostic), not treated as flags.
func ParseFlags(t *Tokenizer, vocab FlagVocabulary) (flags []ParsedFlag, words []Token, warnings []string) {
	for {
		save := t.pos
		tok := t.Next()
		if tok.Flavor == EndOfLine {
			return
		}
		if tok.Flavor != Word || len(tok.Text) < 2 || tok.Text[0] != '-' {
			t.pos = save
			return
		}
		name := tok.Text[1:]
		spec, ok := vocab[name]
		if !ok {
			warnings = append(warnings, "argument-like parameter \"-"+name+"\"")
			words = append(words, tok)
			continue
		}
		pf := ParsedFlag{Name: name, Pos: tok.Pos}
		switch spec.Shape {
		case FlagNone:
			// no values
		case FlagSingle:
			v := t.Next()
			if v.Flavor != EndOfLine {
				pf.Values = []string{v.Text}
			}
		case FlagOptionalSingle:
			save2 := t.pos
			v := t.Next()
			if v.Flavor == EndOfLine || (v.Flavor == Word && isFlagLike(v.Text, vocab)) {
				t.pos = save2
			} else {
				pf.Values = []string{v.Text}
			}
		case FlagMulti:
			for {
				save3 := t.pos
				v := t.Next()
				if v.Flavor == EndOfLine {
					break
				}
				if v.Flavor == Word && isFlagLike(v.Text, vocab) {
					t.pos = save3
					break
				}
				pf.Values = append(pf.Values, v.Text)
				if spec.MaxWords > 0 && len(pf.Values) >= spec.MaxWords {
					break
				}
			}
		}
		flags = append(flags, pf)
	}
}

func isFlagLike(word string, vocab FlagVocabulary) bool {
	if len(word) < 2 || word[0] != '-' {
		return false
	}
	_, ok := vocab[word[1:]]
	return ok
}
