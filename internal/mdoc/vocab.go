package mdoc

import (
	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/token"
)

// blVocab is Bl's flag vocabulary (§3.3/§3.7): exactly one list-type flag,
// plus -width/-offset/-compact. internal/validate enforces the
// one-list-type-at-a-time exclusivity that this vocabulary alone can't.
var blVocab = token.FlagVocabulary{
	"bullet":  {Name: "bullet", Shape: token.FlagNone},
	"dash":    {Name: "dash", Shape: token.FlagNone},
	"hyphen":  {Name: "hyphen", Shape: token.FlagNone},
	"enum":    {Name: "enum", Shape: token.FlagNone},
	"item":    {Name: "item", Shape: token.FlagNone},
	"tag":     {Name: "tag", Shape: token.FlagNone},
	"diag":    {Name: "diag", Shape: token.FlagNone},
	"hang":    {Name: "hang", Shape: token.FlagNone},
	"ohang":   {Name: "ohang", Shape: token.FlagNone},
	"inset":   {Name: "inset", Shape: token.FlagNone},
	"column":  {Name: "column", Shape: token.FlagMulti},
	"width":   {Name: "width", Shape: token.FlagSingle},
	"offset":  {Name: "offset", Shape: token.FlagSingle},
	"compact": {Name: "compact", Shape: token.FlagNone},
}

// bdVocab is Bd's flag vocabulary: exactly one display-type flag plus
// -offset/-compact/-file.
var bdVocab = token.FlagVocabulary{
	"ragged":   {Name: "ragged", Shape: token.FlagNone},
	"filled":   {Name: "filled", Shape: token.FlagNone},
	"unfilled": {Name: "unfilled", Shape: token.FlagNone},
	"literal":  {Name: "literal", Shape: token.FlagNone},
	"centered": {Name: "centered", Shape: token.FlagNone},
	"offset":   {Name: "offset", Shape: token.FlagSingle},
	"compact":  {Name: "compact", Shape: token.FlagNone},
	"file":     {Name: "file", Shape: token.FlagSingle},
}

// anVocab is An's split/nosplit toggle, which governs whether subsequent
// Nm invocations begin a new output line.
var anVocab = token.FlagVocabulary{
	"split":   {Name: "split", Shape: token.FlagNone},
	"nosplit": {Name: "nosplit", Shape: token.FlagNone},
}

// Vocabulary returns id's recognized flag vocabulary, or an empty
// vocabulary for macros that take none (most inline text-family macros
// take only bare words).
func Vocabulary(id macro.ID) token.FlagVocabulary {
	switch id {
	case macro.Mdoc_Bl:
		return blVocab
	case macro.Mdoc_Bd:
		return bdVocab
	case macro.Mdoc_An:
		return anVocab
	default:
		return nil
	}
}
