package parser

import (
	"github.com/oxhq/manroff/internal/config"
	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/man"
	"github.com/oxhq/manroff/internal/mdoc"
	"github.com/oxhq/manroff/internal/token"
	"github.com/oxhq/manroff/internal/tree"
)

// tokenizeArgs scans rest according to entry's argument profile, consuming
// a leading run of recognized flags (mdoc only; man's vocabulary is always
// empty) and returning the remaining words plus any tokenizer warnings.
// argLikeWarnings and quoteWarnings are kept separate since they map to
// different diagnostic codes (CodeArgLikeParameter vs CodeUnterminatedQuote).
func (p *Parser) tokenizeArgs(id macro.ID, entry macro.Entry, rest []byte) (words []string, flags []token.ParsedFlag, argLikeWarnings, quoteWarnings []string) {
	tk := token.New(rest, 0, entry.Profile)

	if p.dialect == macro.DialectMdoc {
		if vocab := mdoc.Vocabulary(id); vocab != nil {
			var argLike []token.Token
			flags, argLike, argLikeWarnings = token.ParseFlags(tk, vocab)
			for _, t := range argLike {
				words = append(words, t.Text)
			}
		}
	}

	for {
		tok := tk.Next()
		if tok.Flavor == token.EndOfLine {
			break
		}
		if tok.Warning != "" {
			quoteWarnings = append(quoteWarnings, tok.Warning)
		}
		words = append(words, tok.Text)
	}
	return words, flags, argLikeWarnings, quoteWarnings
}

// buildNode dispatches to the dialect's handler to construct the node for
// one macro invocation, decoding escape sequences in its words first.
func (p *Parser) buildNode(id macro.ID, entry macro.Entry, words []string, flags []token.ParsedFlag, line int) *tree.Node {
	decodedWords := make([]string, len(words))
	for i, w := range words {
		decodedWords[i] = decodeEscapes(w, p.cfg, nil, line)
	}

	if p.dialect == macro.DialectMdoc {
		inv := mdoc.Invocation{ID: id, Words: decodedWords, Line: line, Column: 1, Flags: toMdocArgPairs(flags)}
		return p.mdocH.Build(entry, inv)
	}
	inv := man.Invocation{ID: id, Words: decodedWords, Line: line, Column: 1}
	return p.manH.Build(entry, inv)
}

func toMdocArgPairs(flags []token.ParsedFlag) []mdoc.ArgPair {
	if len(flags) == 0 {
		return nil
	}
	out := make([]mdoc.ArgPair, len(flags))
	for i, f := range flags {
		out[i] = mdoc.ArgPair{Name: f.Name, Values: f.Values}
	}
	return out
}

// applyPrologue handles Dd/Dt/Os (mdoc) or TH (man) directly against
// Root.Meta; prologue macros never produce tree nodes.
func (p *Parser) applyPrologue(id macro.ID, rest []byte, line int, sink diag.Sink) {
	meta := &p.builder.Root().Meta
	words := splitWords(rest)

	var err error
	switch id {
	case macro.Mdoc_Dd:
		err = mdoc.ApplyDd(meta, string(rest), line, 1, sink)
	case macro.Mdoc_Dt:
		err = mdoc.ApplyDt(meta, words)
	case macro.Mdoc_Os:
		err = mdoc.ApplyOs(meta, words)
	case macro.Man_TH:
		err = man.ApplyTH(meta, words)
	}
	if err != nil {
		diag.Report(sink, diag.Error, line, 1, diag.CodeDuplicatePrologue, "%s", err)
	}
}

func splitWords(rest []byte) []string {
	tk := token.New(rest, 0, token.None)
	var words []string
	for {
		tok := tk.Next()
		if tok.Flavor == token.EndOfLine {
			return words
		}
		words = append(words, tok.Text)
	}
}

// containerKind classifies how an opener's content attaches beneath it.
type containerKind int

const (
	containerBodyOnly containerKind = iota // Bl, Bd, Bf, Bk, Rs: flags only, no head text
	containerHeadBody                      // Sh, Ss, It: header-line words, then a body
	containerDirect                        // the ten enclosure pairs: content attaches directly
)

func kindOf(id macro.ID) containerKind {
	switch id {
	case macro.Mdoc_Sh, macro.Mdoc_Ss, macro.Mdoc_It,
		macro.Man_SH, macro.Man_SS, macro.Man_TP, macro.Man_IP, macro.Man_HP:
		return containerHeadBody
	case macro.Mdoc_Ao, macro.Mdoc_Bo, macro.Mdoc_Do, macro.Mdoc_Eo, macro.Mdoc_Fo,
		macro.Mdoc_Oo, macro.Mdoc_Po, macro.Mdoc_Qo, macro.Mdoc_So, macro.Mdoc_Xo:
		return containerDirect
	default:
		return containerBodyOnly
	}
}

// enterContainer sets up node's sub-regions (if any) and repositions the
// builder's cursor so subsequent lines attach inside node until its scope
// closes.
func (p *Parser) enterContainer(id macro.ID, node *tree.Node, words []string, line int) {
	switch kindOf(id) {
	case containerHeadBody:
		if len(words) > 0 {
			head := &tree.Node{}
			p.builder.PromoteToHead(node, head)
			decoded := make([]string, len(words))
			for i, w := range words {
				decoded[i] = decodeEscapes(w, p.cfg, nil, line)
			}
			parseable := p.dialect == macro.DialectMdoc && p.table.Get(id).Attrs.Has(macro.AttrParseable)
			head.Child = mdoc.BuildWordChildren(decoded, parseable, line, 1)
			for c := head.Child; c != nil; c = c.Next {
				c.Parent = head
			}
		}
		body := &tree.Node{}
		p.builder.PromoteToBody(node, body)
		p.builder.Restore(body, tree.RelChild)
		p.atStart = true
	case containerBodyOnly:
		body := &tree.Node{}
		p.builder.PromoteToBody(node, body)
		p.builder.Restore(body, tree.RelChild)
		p.atStart = true
	case containerDirect:
		p.builder.Restore(node, tree.RelChild)
		p.atStart = true
	}
}

// decodeEscapes walks s, resolving \-escapes via internal/escape. Unknown
// escapes pass through literally when IgnoreUnknownEscapes is set;
// otherwise they are reported (sink may be nil for argument words, where
// a secondary decode pass exists purely to normalize text, not to
// diagnose — the macro line itself already owns diagnostic reporting).
func decodeEscapes(s string, cfg config.ParserConfig, sink diag.Sink, line int) string {
	return decodeEscapesBytes([]byte(s), cfg, sink, line)
}
