// Package parser ties the lexer, tokenizer, macro dispatcher, tree
// builder, and per-dialect handlers into the single external-facing
// entry point (§6): a byte stream plus a filename go in, a validated
// tree root, document metadata, and a diagnostic log come out.
package parser

import (
	"io"
	"strings"

	"github.com/oxhq/manroff/internal/config"
	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/lex"
	"github.com/oxhq/manroff/internal/macro"
	"github.com/oxhq/manroff/internal/man"
	"github.com/oxhq/manroff/internal/mdoc"
	"github.com/oxhq/manroff/internal/tree"
	"github.com/oxhq/manroff/internal/validate"
)

// frame captures the builder's insertion context immediately before a
// scope was entered, so closing that scope (possibly together with
// everything nested inside it) can restore the builder to exactly where
// the tree should continue growing.
type frame struct {
	cursor  *tree.Node
	rel     tree.Relation
	atStart bool
}

// Parser holds the per-document state a single parse needs: nothing here
// is reused across documents, matching §5's "a parse of one document owns
// exclusive access to its tree and its diagnostic sink" resource model.
type Parser struct {
	cfg config.ParserConfig

	dialect macro.Dialect
	table   macro.Table
	closers map[macro.ID]macro.ID
	stack   *macro.Stack
	builder *tree.Builder

	mdocH *mdoc.Handlers
	manH  *man.Handlers

	frames  []frame
	atStart bool

	sawBody bool // any non-prologue, non-blank content seen
}

// New returns a Parser configured by cfg. A fresh Parser must be created
// per document; it carries no state that could leak between parses.
func New(cfg config.ParserConfig) *Parser {
	return &Parser{cfg: cfg}
}

// Parse reads r to completion, using filename only to annotate
// diagnostics, and returns the validated tree root together with the
// diagnostic collector accumulated along the way.
func (p *Parser) Parse(filename string, r io.Reader) (*tree.Root, *diag.Collector) {
	sink := diag.NewCollector(filename, p.cfg.FatalLevel)

	lines, halted := p.readLines(r, sink)
	if halted {
		return p.builder.Root(), sink
	}
	if len(lines) == 0 {
		diag.Report(sink, diag.Fatal, 0, 0, diag.CodeNoDocumentBody, "empty input: no document body")
		return tree.NewRoot(), sink
	}

	p.dialect = p.resolveDialect(lines)
	if p.dialect == macro.DialectMan {
		p.table = macro.ManTable
		p.manH = man.NewHandlers()
	} else {
		p.dialect = macro.DialectMdoc
		p.table = macro.MdocTable
		p.mdocH = mdoc.NewHandlers()
	}
	p.closers = p.table.CloserMap()
	p.stack = macro.NewStack(p.table)
	p.builder = tree.NewBuilder()
	p.atStart = true

	for _, ln := range lines {
		p.processLine(ln, sink)
		if sink.Worst() >= p.cfg.FatalLevel {
			break
		}
	}

	p.finish(sink)

	root := p.builder.Root()
	if !p.sawBody {
		diag.Report(sink, diag.Fatal, 0, 0, diag.CodeNoDocumentBody, "input with only a prologue: no document body")
	}

	if err := tree.CheckInvariants(root); err != nil {
		diag.Report(sink, diag.Fatal, 0, 0, diag.CodeBadNesting, "internal tree invariant violated: %s", err)
	}

	v := validate.New(p.dialect, sink)
	v.Run(root)

	return root, sink
}

// readLines drains the lexer into memory so dialect auto-detection can
// look ahead at the document's first macro line before any tree node is
// built. halted reports whether a Fatal I/O or line-length error already
// ended the parse.
func (p *Parser) readLines(r io.Reader, sink diag.Sink) (lines []lex.Line, halted bool) {
	lx := lex.New(r, p.cfg.MaxLineLength)
	p.builder = tree.NewBuilder() // placeholder root in case of early halt
	for {
		ln, err := lx.Next()
		if err == io.EOF {
			return lines, false
		}
		if err != nil {
			if tooLong, ok := err.(*lex.ErrTooLong); ok {
				diag.Report(sink, diag.Fatal, tooLong.Line, 0, diag.CodeLineTooLong,
					"macro line exceeds maximum length")
			} else {
				diag.Report(sink, diag.Fatal, ln.Number, 0, diag.CodeIOError, "%s", err)
			}
			return lines, true
		}
		lines = append(lines, ln)
	}
}

// resolveDialect honors an explicit config.DialectMode, or inspects the
// first macro line's name otherwise: Dd/Dt select structured, TH selects
// presentation; an unrecognized or absent leading macro defaults to
// structured, mandoc's own historical default.
func (p *Parser) resolveDialect(lines []lex.Line) macro.Dialect {
	switch p.cfg.Dialect {
	case config.DialectStructured:
		return macro.DialectMdoc
	case config.DialectPresentation:
		return macro.DialectMan
	}
	for _, ln := range lines {
		name, _, ok := splitMacroLine(ln.Text)
		if !ok {
			continue
		}
		switch name {
		case "Dd", "Dt":
			return macro.DialectMdoc
		case "TH":
			return macro.DialectMan
		}
	}
	return macro.DialectMdoc
}

// splitMacroLine reports whether text is a macro line (begins with '.' or
// '\''), and if so its macro name and the remainder of the line after the
// name and one run of separating whitespace.
func splitMacroLine(text []byte) (name string, rest []byte, ok bool) {
	if len(text) == 0 || (text[0] != '.' && text[0] != '\'') {
		return "", nil, false
	}
	body := text[1:]
	i := 0
	for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
		i++
	}
	start := i
	for i < len(body) && body[i] != ' ' && body[i] != '\t' {
		i++
	}
	name = string(body[start:i])
	for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
		i++
	}
	return name, body[i:], true
}

// isComment reports a full-line roff comment: ".\" ..." — the comment
// marker is lexed as the macro "name" since it immediately follows the
// control character with no separating space.
func isComment(name string) bool {
	return strings.HasPrefix(name, `\"`)
}

func (p *Parser) processLine(ln lex.Line, sink diag.Sink) {
	name, rest, isMacro := splitMacroLine(ln.Text)
	if !isMacro {
		p.processText(ln, sink)
		return
	}
	if name == "" || isComment(name) {
		return
	}

	id, known := macro.Lookup(p.dialect, name)
	if !known {
		if !p.cfg.IgnoreUnknownMacros {
			diag.Report(sink, diag.Error, ln.Number, 1, diag.CodeUnknownMacro, "unknown macro %q", name)
		}
		return
	}

	entry := p.table.Get(id)

	if entry.Family == macro.FamilyPrologue {
		p.applyPrologue(id, rest, ln.Number, sink)
		return
	}

	if _, isCloser := p.closers[id]; isCloser {
		p.closeScope(id, sink, ln.Number)
		return
	}

	words, flags, argLikeWarnings, quoteWarnings := p.tokenizeArgs(id, entry, rest)
	for _, w := range argLikeWarnings {
		diag.Report(sink, diag.Warning, ln.Number, 1, diag.CodeArgLikeParameter, "%s", w)
	}
	for _, w := range quoteWarnings {
		diag.Report(sink, diag.Warning, ln.Number, 1, diag.CodeUnterminatedQuote, "%s", w)
	}

	node := p.buildNode(id, entry, words, flags, ln.Number)
	if node == nil {
		return
	}

	p.closeScope(id, sink, ln.Number)
	p.attach(node)
	p.sawBody = true

	if p.table.IsOpener(id) {
		p.frames = append(p.frames, frame{cursor: p.builder.Cursor(), rel: tree.RelSibling, atStart: p.atStart})
		p.stack.Push(id, node)
		p.enterContainer(id, node, words, ln.Number)
	}
}

// closeScope resolves whatever must close before id is handled and
// restores the builder to each closed scope's saved context.
func (p *Parser) closeScope(id macro.ID, sink diag.Sink, line int) {
	result := p.stack.Encounter(id)
	switch result.Violation {
	case macro.ViolationUnmatchedCloser:
		diag.Report(sink, diag.Error, line, 1, diag.CodeScopeViolation, "unmatched closing macro")
		return
	case macro.ViolationCrossesScope:
		if p.cfg.IgnoreScopeErrors {
			diag.Report(sink, diag.Warning, line, 1, diag.CodeScopeViolation, "closing macro crosses an open scope")
		} else {
			diag.Report(sink, diag.Fatal, line, 1, diag.CodeBadNesting, "blocks badly nested")
		}
		return
	}
	if len(result.Closed) == 0 {
		return
	}
	idx := len(p.frames) - len(result.Closed)
	if idx < 0 {
		idx = 0
	}
	saved := p.frames[idx]
	p.frames = p.frames[:idx]
	p.builder.Restore(saved.cursor, saved.rel)
	p.atStart = saved.atStart
}

// processText handles a running-text line: decoded and attached as a
// single text node in the current container.
func (p *Parser) processText(ln lex.Line, sink diag.Sink) {
	text := strings.TrimRight(string(ln.Text), " \t")
	if strings.TrimSpace(text) == "" {
		return
	}
	if strings.Contains(text, " \t") || strings.HasSuffix(string(ln.Text), " ") {
		diag.Report(sink, diag.Warning, ln.Number, len(ln.Text), diag.CodeTrailingWhitespace, "trailing whitespace")
	}
	decoded := decodeEscapes(text, p.cfg, sink, ln.Number)
	p.attach(tree.NewText(decoded, ln.Number, 1))
	p.sawBody = true
}

// attach inserts n at the builder's current insertion point: as the
// first child of the active container, or as the next sibling of the
// previously attached node.
func (p *Parser) attach(n *tree.Node) {
	if p.atStart {
		p.builder.AppendChild(n)
		p.atStart = false
		return
	}
	p.builder.AppendSibling(n)
}

// finish unwinds any scopes still open at end of input, reporting an
// unclosed-explicit-scope Fatal for each explicit-end opener among them
// (implicit-end and shallow scopes close silently at EOF, matching the
// document's final section or list item simply ending).
func (p *Parser) finish(sink diag.Sink) {
	closed := p.stack.CloseAll()
	for _, scope := range closed {
		e := p.table.Get(scope.ID)
		if e.ExplicitCloser != 0 {
			diag.Report(sink, diag.Fatal, 0, 0, diag.CodeUnclosedExplicitScope,
				"unclosed explicit scope %q at end of input", macro.Name(p.dialect, scope.ID))
		}
	}
}
