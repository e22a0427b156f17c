package macro

import "github.com/oxhq/manroff/internal/token"

// MdocTable is the structured-dialect dispatch table. Every entry is
// grounded on mdoc.h's ordering and mdoc_argv.c's per-macro parsing
// profile (ARGSFL_NONE/DELIM/TABSEP). Macros not given an explicit entry
// fall back to Table.Get's default (plain Text family, Mode None); every
// named mdoc macro has an entry below, so only the Mdoc_Text pseudo-macro
// takes that default.
var MdocTable = buildMdocTable()

func buildMdocTable() Table {
	t := Table{}

	// Prologue: must appear exactly once, in order, and are pruned from
	// the tree after populating Root.Meta (§4.6).
	t[Mdoc_Dd] = Entry{ID: Mdoc_Dd, Profile: token.None, Family: FamilyPrologue}
	t[Mdoc_Dt] = Entry{ID: Mdoc_Dt, Profile: token.None, Family: FamilyPrologue}
	t[Mdoc_Os] = Entry{ID: Mdoc_Os, Profile: token.None, Family: FamilyPrologue}

	// Sections: implicit-end — a new Sh closes any open Sh; a new Ss
	// closes any open Ss but not an enclosing Sh.
	t[Mdoc_Sh] = Entry{ID: Mdoc_Sh, Profile: token.None, Family: FamilyLayout, ImplicitEnd: true, Attrs: AttrParseable}
	t[Mdoc_Ss] = Entry{ID: Mdoc_Ss, Profile: token.None, Family: FamilyLayout, ImplicitEnd: true, Attrs: AttrParseable}

	// Paragraph break: line-scope, no children beyond its own line.
	t[Mdoc_Pp] = Entry{ID: Mdoc_Pp, Profile: token.None, Family: FamilyText, Attrs: AttrLineScope}

	// Lists: Bl/El explicit-end; It is shallow (closes only at the
	// nearest It, never crossing the enclosing Bl).
	t[Mdoc_Bl] = Entry{ID: Mdoc_Bl, Profile: token.None, Family: FamilyLayout, ExplicitCloser: Mdoc_El}
	t[Mdoc_El] = Entry{ID: Mdoc_El, Profile: token.None, Family: FamilyLayout}
	t[Mdoc_It] = Entry{ID: Mdoc_It, Profile: token.TabSep, Family: FamilyLayout, ImplicitEnd: true, Attrs: AttrShallow | AttrParseable}

	// Displays: Bd/Ed explicit-end.
	t[Mdoc_Bd] = Entry{ID: Mdoc_Bd, Profile: token.None, Family: FamilyLayout, ExplicitCloser: Mdoc_Ed}
	t[Mdoc_Ed] = Entry{ID: Mdoc_Ed, Profile: token.None, Family: FamilyLayout}
	t[Mdoc_D1] = Entry{ID: Mdoc_D1, Profile: token.None, Family: FamilyPartialLine, Attrs: AttrParseable | AttrLineScope}
	t[Mdoc_Dl] = Entry{ID: Mdoc_Dl, Profile: token.None, Family: FamilyPartialLine, Attrs: AttrParseable | AttrLineScope}

	// Font-block: Bf/Ef explicit-end.
	t[Mdoc_Bf] = Entry{ID: Mdoc_Bf, Profile: token.None, Family: FamilyLayout, ExplicitCloser: Mdoc_Ef}
	t[Mdoc_Ef] = Entry{ID: Mdoc_Ef, Profile: token.None, Family: FamilyLayout}

	// Keep-block: Bk/Ek explicit-end.
	t[Mdoc_Bk] = Entry{ID: Mdoc_Bk, Profile: token.None, Family: FamilyLayout, ExplicitCloser: Mdoc_Ek}
	t[Mdoc_Ek] = Entry{ID: Mdoc_Ek, Profile: token.None, Family: FamilyLayout}

	// Name (special family, callable/parseable) + one-line description
	// (text family).
	t[Mdoc_Nm] = Entry{ID: Mdoc_Nm, Profile: token.None, Family: FamilySpecial, Attrs: AttrCallable | AttrParseable | AttrLineScope}
	t[Mdoc_Nd] = Entry{ID: Mdoc_Nd, Profile: token.None, Family: FamilyText, Attrs: AttrLineScope}

	// Flags/args and other inline text macros: parseable+callable, text
	// family, Delim profile so trailing punctuation is split off.
	for _, id := range []ID{
		Mdoc_Ad, Mdoc_An, Mdoc_Ar, Mdoc_Cd, Mdoc_Cm, Mdoc_Dv, Mdoc_Er, Mdoc_Ev,
		Mdoc_Fa, Mdoc_Fl, Mdoc_Ic, Mdoc_Li, Mdoc_Ms, Mdoc_Pa, Mdoc_Va, Mdoc_Vt,
		Mdoc_Em, Mdoc_Sy, Mdoc_No, Mdoc_Ns, Mdoc_Sx, Mdoc_Tn, Mdoc_Ql, Mdoc_Ic,
	} {
		t[id] = Entry{ID: id, Profile: token.Delim, Family: FamilyText, Attrs: AttrCallable | AttrParseable | AttrLineScope}
	}

	// Cross-reference and function: ordered (positional), not parseable.
	t[Mdoc_Xr] = Entry{ID: Mdoc_Xr, Profile: token.Delim, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Fn] = Entry{ID: Mdoc_Fn, Profile: token.Delim, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Fd] = Entry{ID: Mdoc_Fd, Profile: token.None, Family: FamilyText, Attrs: AttrLineScope}
	t[Mdoc_Ft] = Entry{ID: Mdoc_Ft, Profile: token.Delim, Family: FamilyText, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_In] = Entry{ID: Mdoc_In, Profile: token.None, Family: FamilyText, Attrs: AttrLineScope}
	t[Mdoc_At] = Entry{ID: Mdoc_At, Profile: token.None, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_St] = Entry{ID: Mdoc_St, Profile: token.None, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Rv] = Entry{ID: Mdoc_Rv, Profile: token.None, Family: FamilyOrdered, Attrs: AttrLineScope}
	t[Mdoc_Ex] = Entry{ID: Mdoc_Ex, Profile: token.None, Family: FamilyOrdered, Attrs: AttrLineScope}
	t[Mdoc_Bx] = Entry{ID: Mdoc_Bx, Profile: token.None, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Bsx] = Entry{ID: Mdoc_Bsx, Profile: token.None, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Nx] = Entry{ID: Mdoc_Nx, Profile: token.None, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Ox] = Entry{ID: Mdoc_Ox, Profile: token.None, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Fx] = Entry{ID: Mdoc_Fx, Profile: token.None, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Ux] = Entry{ID: Mdoc_Ux, Profile: token.None, Family: FamilyOrdered, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Db] = Entry{ID: Mdoc_Db, Profile: token.None, Family: FamilyOrdered, Attrs: AttrLineScope}
	t[Mdoc_Ud] = Entry{ID: Mdoc_Ud, Profile: token.None, Family: FamilyOrdered, Attrs: AttrLineScope}

	// Enclosure pairs: explicit-end, parseable/callable.
	enclosures := []struct{ open, close ID }{
		{Mdoc_Ao, Mdoc_Ac}, {Mdoc_Bo, Mdoc_Bc}, {Mdoc_Do, Mdoc_Dc},
		{Mdoc_Eo, Mdoc_Ec}, {Mdoc_Po, Mdoc_Pc}, {Mdoc_Qo, Mdoc_Qc},
		{Mdoc_So, Mdoc_Sc}, {Mdoc_Xo, Mdoc_Xc}, {Mdoc_Fo, Mdoc_Fc}, {Mdoc_Oo, Mdoc_Oc},
	}
	for _, e := range enclosures {
		t[e.open] = Entry{ID: e.open, Profile: token.Delim, Family: FamilyPartialExplicit, Attrs: AttrCallable | AttrParseable, ExplicitCloser: e.close}
		t[e.close] = Entry{ID: e.close, Profile: token.Delim, Family: FamilyPartialExplicit}
	}

	// One-line enclosure shorthands (Aq, Bq, Dq, Pq, Qq, Sq, Op): partial
	// line, implicit end at end of line.
	for _, id := range []ID{Mdoc_Aq, Mdoc_Bq, Mdoc_Dq, Mdoc_Pq, Mdoc_Qq, Mdoc_Sq, Mdoc_Op} {
		t[id] = Entry{ID: id, Profile: token.Delim, Family: FamilyPartialLine, Attrs: AttrCallable | AttrParseable | AttrLineScope}
	}

	// Punctuation joiner and spacing toggles: special, no children.
	t[Mdoc_Pf] = Entry{ID: Mdoc_Pf, Profile: token.None, Family: FamilySpecial, Attrs: AttrCallable | AttrLineScope}
	t[Mdoc_Sm] = Entry{ID: Mdoc_Sm, Profile: token.None, Family: FamilySpecial, Attrs: AttrLineScope}

	// Reference block: Rs/Re explicit-end; %A/%B/… ordered children.
	t[Mdoc_Rs] = Entry{ID: Mdoc_Rs, Profile: token.None, Family: FamilyLayout, ExplicitCloser: Mdoc_Re}
	t[Mdoc_Re] = Entry{ID: Mdoc_Re, Profile: token.None, Family: FamilyLayout}
	for _, id := range []ID{Mdoc_A, Mdoc_B, Mdoc_D, Mdoc_I, Mdoc_J, Mdoc_N, Mdoc_O, Mdoc_P, Mdoc_R, Mdoc_T, Mdoc_V} {
		t[id] = Entry{ID: id, Profile: token.None, Family: FamilyText, Attrs: AttrLineScope}
	}

	t[Mdoc_Bt] = Entry{ID: Mdoc_Bt, Profile: token.None, Family: FamilyOrdered, Attrs: AttrLineScope}
	t[Mdoc_Hf] = Entry{ID: Mdoc_Hf, Profile: token.None, Family: FamilyText, Attrs: AttrLineScope}
	t[Mdoc_Fr] = Entry{ID: Mdoc_Fr, Profile: token.None, Family: FamilyText, Attrs: AttrLineScope}
	t[Mdoc_Ot] = Entry{ID: Mdoc_Ot, Profile: token.None, Family: FamilyText, Attrs: AttrLineScope}

	return t
}
