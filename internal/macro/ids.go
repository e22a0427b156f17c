// Package macro implements the macro dispatcher (§4.4): a table keyed by a
// closed macro-identifier enumeration, an open-scope stack, and the
// implicit/explicit scope-closing rules that drive the tree builder.
package macro

// Dialect distinguishes the structured (mdoc) and presentation (man)
// macro vocabularies.
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectMdoc
	DialectMan
)

// ID identifies one macro within its dialect. The numbering follows the
// historical mdoc.h / man macro ordering so that cross-references to the
// original tables stay legible; it carries no significance beyond identity
// and table indexing.
type ID int

// Structured-dialect (mdoc) macro identifiers, matching mdoc.h's MDOC_*
// enumeration (106 entries, MDOC___ through MDOC_Ud).
const (
	Mdoc_Text ID = iota // MDOC___: plain text, not a macro invocation
	Mdoc_Dd
	Mdoc_Dt
	Mdoc_Os
	Mdoc_Sh
	Mdoc_Ss
	Mdoc_Pp
	Mdoc_D1
	Mdoc_Dl
	Mdoc_Bd
	Mdoc_Ed
	Mdoc_Bl
	Mdoc_El
	Mdoc_It
	Mdoc_Ad
	Mdoc_An
	Mdoc_Ar
	Mdoc_Cd
	Mdoc_Cm
	Mdoc_Dv
	Mdoc_Er
	Mdoc_Ev
	Mdoc_Ex
	Mdoc_Fa
	Mdoc_Fd
	Mdoc_Fl
	Mdoc_Fn
	Mdoc_Ft
	Mdoc_Ic
	Mdoc_In
	Mdoc_Li
	Mdoc_Nd
	Mdoc_Nm
	Mdoc_Op
	Mdoc_Ot
	Mdoc_Pa
	Mdoc_Rv
	Mdoc_St
	Mdoc_Va
	Mdoc_Vt
	Mdoc_Xr
	Mdoc_A   // %A
	Mdoc_B   // %B
	Mdoc_D   // %D
	Mdoc_I   // %I
	Mdoc_J   // %J
	Mdoc_N   // %N
	Mdoc_O   // %O
	Mdoc_P   // %P
	Mdoc_R   // %R
	Mdoc_T   // %T
	Mdoc_V   // %V
	Mdoc_Ac
	Mdoc_Ao
	Mdoc_Aq
	Mdoc_At
	Mdoc_Bc
	Mdoc_Bf
	Mdoc_Bo
	Mdoc_Bq
	Mdoc_Bsx
	Mdoc_Bx
	Mdoc_Db
	Mdoc_Dc
	Mdoc_Do
	Mdoc_Dq
	Mdoc_Ec
	Mdoc_Ef
	Mdoc_Em
	Mdoc_Eo
	Mdoc_Fx
	Mdoc_Ms
	Mdoc_No
	Mdoc_Ns
	Mdoc_Nx
	Mdoc_Ox
	Mdoc_Pc
	Mdoc_Pf
	Mdoc_Po
	Mdoc_Pq
	Mdoc_Qc
	Mdoc_Ql
	Mdoc_Qo
	Mdoc_Qq
	Mdoc_Re
	Mdoc_Rs
	Mdoc_Sc
	Mdoc_So
	Mdoc_Sq
	Mdoc_Sm
	Mdoc_Sx
	Mdoc_Sy
	Mdoc_Tn
	Mdoc_Ux
	Mdoc_Xc
	Mdoc_Xo
	Mdoc_Fo
	Mdoc_Fc
	Mdoc_Oo
	Mdoc_Oc
	Mdoc_Bk
	Mdoc_Ek
	Mdoc_Bt
	Mdoc_Hf
	Mdoc_Fr
	Mdoc_Ud
	mdocMax
)

// Presentation-dialect (man) macro identifiers. The historical man(7)
// vocabulary is smaller and carries no public header in original_source/;
// this is the conventional set.
const (
	Man_Text ID = iota // plain text
	Man_TH
	Man_SH
	Man_SS
	Man_TP
	Man_LP
	Man_PP
	Man_P
	Man_IP
	Man_HP
	Man_SM
	Man_SB
	Man_BI
	Man_BR
	Man_IB
	Man_IR
	Man_RB
	Man_RI
	Man_B
	Man_I
	Man_R
	Man_RS
	Man_RE
	Man_DT
	Man_UC
	Man_PD
	Man_AT
	Man_OP
	Man_EX
	Man_EE
	Man_UR
	Man_UE
	Man_MT
	Man_ME
	manMax
)

// MdocCount and ManCount report the size of each dialect's macro table,
// for tests that assert the closed enumeration's shape against spec.md's
// "~130 macros across the two dialects" figure.
func MdocCount() int { return int(mdocMax) }
func ManCount() int  { return int(manMax) }
