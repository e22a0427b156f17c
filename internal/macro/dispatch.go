package macro

// Scope is one entry on the open-scope stack: the macro ID that opened
// it and an opaque handle to the tree node the caller built for it. The
// macro package never looks inside Node; it only needs identity to hand
// closed scopes back to the caller.
type Scope struct {
	ID      ID
	Node    interface{}
	Shallow bool
}

// Violation classifies why a scope-close request could not be honored.
type Violation int

const (
	NoViolation Violation = iota
	// ViolationUnmatchedCloser: an explicit-end closer (El, Ed, …)
	// appeared with no corresponding open scope of its kind.
	ViolationUnmatchedCloser
	// ViolationCrossesScope: closing the named opener would require
	// silently closing an intermediate scope that itself demands an
	// explicit closer. This is a syntax error, not an auto-close.
	ViolationCrossesScope
)

// CloseResult reports which open scopes must be popped (and, for a
// violation, which kind) before the caller proceeds to handle id.
type CloseResult struct {
	Closed    []Scope
	Violation Violation
}

// Stack tracks open scopes for one dialect's table during tree
// construction. It implements §4.4's scope-closing rules: implicit-end
// blocks close on re-encountering their own identifier; explicit-end
// blocks close only on their paired closer macro; shallow blocks (list
// items) close only the nearest same-tag scope without crossing their
// enclosing block.
type Stack struct {
	table   Table
	closers map[ID]ID
	scopes  []Scope
}

// NewStack builds a scope stack bound to table's opener/closer pairing.
func NewStack(table Table) *Stack {
	return &Stack{table: table, closers: table.CloserMap()}
}

// Len reports the number of currently open scopes.
func (s *Stack) Len() int { return len(s.scopes) }

// Top returns the innermost open scope, if any.
func (s *Stack) Top() (Scope, bool) {
	if len(s.scopes) == 0 {
		return Scope{}, false
	}
	return s.scopes[len(s.scopes)-1], true
}

// Push opens a new scope for id, associating it with node. The caller
// must only call Push for an ID that Table.IsOpener reports true, after
// resolving any CloseResult from Encounter.
func (s *Stack) Push(id ID, node interface{}) {
	e := s.table.Get(id)
	s.scopes = append(s.scopes, Scope{ID: id, Node: node, Shallow: e.Attrs.Has(AttrShallow)})
}

// Encounter determines what must close before id's macro is handled. It
// does not mutate the node side of the stack; the caller pops exactly
// CloseResult.Closed (already in innermost-first order) and then, if id
// is itself an opener, calls Push once the new node exists.
func (s *Stack) Encounter(id ID) CloseResult {
	if opener, ok := s.closers[id]; ok {
		return s.closeExplicit(opener)
	}

	e := s.table.Get(id)
	if !e.ImplicitEnd {
		return CloseResult{}
	}
	if e.Attrs.Has(AttrShallow) {
		return s.closeShallow(id)
	}
	return s.closeImplicit(id)
}

// closeExplicit closes the scope opened by opener (and everything above
// it), invoked when its paired closer macro is encountered. Any
// intermediate scope between the top of the stack and opener must
// itself be auto-closeable (implicit-end or shallow); an intermediate
// scope that demands its own explicit closer makes this a violation
// rather than a silent close.
func (s *Stack) closeExplicit(opener ID) CloseResult {
	idx := -1
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if s.scopes[i].ID == opener {
			idx = i
			break
		}
	}
	if idx == -1 {
		return CloseResult{Violation: ViolationUnmatchedCloser}
	}
	for i := len(s.scopes) - 1; i > idx; i-- {
		if s.table.Get(s.scopes[i].ID).ExplicitCloser != 0 {
			return CloseResult{Violation: ViolationCrossesScope}
		}
	}
	closed := append([]Scope(nil), s.scopes[idx:]...)
	reverse(closed)
	s.scopes = s.scopes[:idx]
	return CloseResult{Closed: closed}
}

// closeImplicit closes the nearest open scope matching id, together with
// everything opened after it (a new Sh, for instance, closes a prior Sh
// and any unclosed Ss/list nested inside it).
func (s *Stack) closeImplicit(id ID) CloseResult {
	idx := -1
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if s.scopes[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return CloseResult{}
	}
	closed := append([]Scope(nil), s.scopes[idx:]...)
	reverse(closed)
	s.scopes = s.scopes[:idx]
	return CloseResult{Closed: closed}
}

// closeShallow closes only the innermost scope if it matches id exactly,
// never walking past an enclosing scope of a different kind (e.g. It
// never crosses its enclosing Bl).
func (s *Stack) closeShallow(id ID) CloseResult {
	top, ok := s.Top()
	if !ok || top.ID != id {
		return CloseResult{}
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	return CloseResult{Closed: []Scope{top}}
}

// CloseAll pops every remaining open scope, in innermost-first order,
// for end-of-input handling. Explicit-end scopes left open at EOF are
// the caller's responsibility to report as a diagnostic; CloseAll only
// performs the structural unwind.
func (s *Stack) CloseAll() []Scope {
	closed := append([]Scope(nil), s.scopes...)
	reverse(closed)
	s.scopes = nil
	return closed
}

func reverse(s []Scope) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
