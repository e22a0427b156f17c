package macro

import "github.com/oxhq/manroff/internal/token"

// ManTable is the presentation-dialect dispatch table. man(7) has no
// parseable/callable nesting concept and no explicit-end scopes beyond
// RS/RE, EX/EE, UR/UE and MT/ME, so most entries are FamilyText or
// FamilyLayout with ImplicitEnd.
var ManTable = buildManTable()

func buildManTable() Table {
	t := Table{}

	t[Man_TH] = Entry{ID: Man_TH, Profile: token.None, Family: FamilyPrologue}

	// Section headers: a new SH or SS closes any prior open one of its
	// own kind, matching the mdoc Sh/Ss behavior.
	t[Man_SH] = Entry{ID: Man_SH, Profile: token.None, Family: FamilyLayout, ImplicitEnd: true}
	t[Man_SS] = Entry{ID: Man_SS, Profile: token.None, Family: FamilyLayout, ImplicitEnd: true}

	// Paragraph-break family: line-scope, closes the prior paragraph.
	for _, id := range []ID{Man_LP, Man_PP, Man_P} {
		t[id] = Entry{ID: id, Profile: token.None, Family: FamilyText, Attrs: AttrLineScope, ImplicitEnd: true}
	}

	// Tagged/indented/hanging paragraphs: implicit-end, shallow (a new TP
	// closes the previous TP's body without touching an enclosing SH).
	t[Man_TP] = Entry{ID: Man_TP, Profile: token.None, Family: FamilyLayout, ImplicitEnd: true, Attrs: AttrShallow | AttrLineScope}
	t[Man_IP] = Entry{ID: Man_IP, Profile: token.None, Family: FamilyLayout, ImplicitEnd: true, Attrs: AttrShallow | AttrLineScope}
	t[Man_HP] = Entry{ID: Man_HP, Profile: token.None, Family: FamilyLayout, ImplicitEnd: true, Attrs: AttrShallow | AttrLineScope}

	// Relative-indent block: explicit-end.
	t[Man_RS] = Entry{ID: Man_RS, Profile: token.None, Family: FamilyLayout, ExplicitCloser: Man_RE}
	t[Man_RE] = Entry{ID: Man_RE, Profile: token.None, Family: FamilyLayout}

	// Font/style toggles and alternating-font macros: partial-line text,
	// arguments consumed on the invoking line only.
	for _, id := range []ID{
		Man_SM, Man_SB, Man_BI, Man_BR, Man_IB, Man_IR, Man_RB, Man_RI,
		Man_B, Man_I, Man_R,
	} {
		t[id] = Entry{ID: id, Profile: token.Delim, Family: FamilyPartialLine, Attrs: AttrLineScope}
	}

	t[Man_DT] = Entry{ID: Man_DT, Profile: token.None, Family: FamilyOrdered, Attrs: AttrLineScope}
	t[Man_UC] = Entry{ID: Man_UC, Profile: token.None, Family: FamilyOrdered, Attrs: AttrLineScope}
	t[Man_PD] = Entry{ID: Man_PD, Profile: token.None, Family: FamilyOrdered, Attrs: AttrLineScope}
	t[Man_AT] = Entry{ID: Man_AT, Profile: token.None, Family: FamilyOrdered, Attrs: AttrLineScope}
	t[Man_OP] = Entry{ID: Man_OP, Profile: token.Delim, Family: FamilyPartialLine, Attrs: AttrLineScope}

	// Example/literal display: explicit-end (EX/EE pair).
	t[Man_EX] = Entry{ID: Man_EX, Profile: token.None, Family: FamilyLayout, ExplicitCloser: Man_EE}
	t[Man_EE] = Entry{ID: Man_EE, Profile: token.None, Family: FamilyLayout}

	// Hyperlink/mailto: partial-explicit, explicit-end (UR/UE and MT/ME
	// pairs).
	t[Man_UR] = Entry{ID: Man_UR, Profile: token.None, Family: FamilyPartialExplicit, Attrs: AttrLineScope, ExplicitCloser: Man_UE}
	t[Man_UE] = Entry{ID: Man_UE, Profile: token.None, Family: FamilyPartialExplicit}
	t[Man_MT] = Entry{ID: Man_MT, Profile: token.None, Family: FamilyPartialExplicit, Attrs: AttrLineScope, ExplicitCloser: Man_ME}
	t[Man_ME] = Entry{ID: Man_ME, Profile: token.None, Family: FamilyPartialExplicit}

	return t
}
