package macro

// mdocNames maps the canonical two/three-letter macro name to its ID,
// mirroring mdoc.h's ordering. Unexported; use Lookup.
var mdocNames = map[string]ID{
	"Dd": Mdoc_Dd, "Dt": Mdoc_Dt, "Os": Mdoc_Os, "Sh": Mdoc_Sh, "Ss": Mdoc_Ss,
	"Pp": Mdoc_Pp, "D1": Mdoc_D1, "Dl": Mdoc_Dl, "Bd": Mdoc_Bd, "Ed": Mdoc_Ed,
	"Bl": Mdoc_Bl, "El": Mdoc_El, "It": Mdoc_It, "Ad": Mdoc_Ad, "An": Mdoc_An,
	"Ar": Mdoc_Ar, "Cd": Mdoc_Cd, "Cm": Mdoc_Cm, "Dv": Mdoc_Dv, "Er": Mdoc_Er,
	"Ev": Mdoc_Ev, "Ex": Mdoc_Ex, "Fa": Mdoc_Fa, "Fd": Mdoc_Fd, "Fl": Mdoc_Fl,
	"Fn": Mdoc_Fn, "Ft": Mdoc_Ft, "Ic": Mdoc_Ic, "In": Mdoc_In, "Li": Mdoc_Li,
	"Nd": Mdoc_Nd, "Nm": Mdoc_Nm, "Op": Mdoc_Op, "Ot": Mdoc_Ot, "Pa": Mdoc_Pa,
	"Rv": Mdoc_Rv, "St": Mdoc_St, "Va": Mdoc_Va, "Vt": Mdoc_Vt, "Xr": Mdoc_Xr,
	"%A": Mdoc_A, "%B": Mdoc_B, "%D": Mdoc_D, "%I": Mdoc_I, "%J": Mdoc_J,
	"%N": Mdoc_N, "%O": Mdoc_O, "%P": Mdoc_P, "%R": Mdoc_R, "%T": Mdoc_T, "%V": Mdoc_V,
	"Ac": Mdoc_Ac, "Ao": Mdoc_Ao, "Aq": Mdoc_Aq, "At": Mdoc_At, "Bc": Mdoc_Bc,
	"Bf": Mdoc_Bf, "Bo": Mdoc_Bo, "Bq": Mdoc_Bq, "Bsx": Mdoc_Bsx, "Bx": Mdoc_Bx,
	"Db": Mdoc_Db, "Dc": Mdoc_Dc, "Do": Mdoc_Do, "Dq": Mdoc_Dq, "Ec": Mdoc_Ec,
	"Ef": Mdoc_Ef, "Em": Mdoc_Em, "Eo": Mdoc_Eo, "Fx": Mdoc_Fx, "Ms": Mdoc_Ms,
	"No": Mdoc_No, "Ns": Mdoc_Ns, "Nx": Mdoc_Nx, "Ox": Mdoc_Ox, "Pc": Mdoc_Pc,
	"Pf": Mdoc_Pf, "Po": Mdoc_Po, "Pq": Mdoc_Pq, "Qc": Mdoc_Qc, "Ql": Mdoc_Ql,
	"Qo": Mdoc_Qo, "Qq": Mdoc_Qq, "Re": Mdoc_Re, "Rs": Mdoc_Rs, "Sc": Mdoc_Sc,
	"So": Mdoc_So, "Sq": Mdoc_Sq, "Sm": Mdoc_Sm, "Sx": Mdoc_Sx, "Sy": Mdoc_Sy,
	"Tn": Mdoc_Tn, "Ux": Mdoc_Ux, "Xc": Mdoc_Xc, "Xo": Mdoc_Xo, "Fo": Mdoc_Fo,
	"Fc": Mdoc_Fc, "Oo": Mdoc_Oo, "Oc": Mdoc_Oc, "Bk": Mdoc_Bk, "Ek": Mdoc_Ek,
	"Bt": Mdoc_Bt, "Hf": Mdoc_Hf, "Fr": Mdoc_Fr, "Ud": Mdoc_Ud,
}

var manNames = map[string]ID{
	"TH": Man_TH, "SH": Man_SH, "SS": Man_SS, "TP": Man_TP, "LP": Man_LP,
	"PP": Man_PP, "P": Man_P, "IP": Man_IP, "HP": Man_HP, "SM": Man_SM,
	"SB": Man_SB, "BI": Man_BI, "BR": Man_BR, "IB": Man_IB, "IR": Man_IR,
	"RB": Man_RB, "RI": Man_RI, "B": Man_B, "I": Man_I, "R": Man_R,
	"RS": Man_RS, "RE": Man_RE, "DT": Man_DT, "UC": Man_UC, "PD": Man_PD,
	"AT": Man_AT, "OP": Man_OP, "EX": Man_EX, "EE": Man_EE, "UR": Man_UR,
	"UE": Man_UE, "MT": Man_MT, "ME": Man_ME,
}

var mdocNamesRev, manNamesRev map[ID]string

func init() {
	mdocNamesRev = make(map[ID]string, len(mdocNames))
	for name, id := range mdocNames {
		mdocNamesRev[id] = name
	}
	manNamesRev = make(map[ID]string, len(manNames))
	for name, id := range manNames {
		manNamesRev[id] = name
	}
}

// Lookup resolves a macro name within a dialect to its ID. ok is false for
// an unrecognized name (the dispatcher reports this as CodeUnknownMacro).
func Lookup(dialect Dialect, name string) (ID, bool) {
	switch dialect {
	case DialectMdoc:
		id, ok := mdocNames[name]
		return id, ok
	case DialectMan:
		id, ok := manNames[name]
		return id, ok
	default:
		return 0, false
	}
}

// Name returns the canonical macro name for id within dialect, or "" if
// unknown (including the Text pseudo-macro, which has no source name).
func Name(dialect Dialect, id ID) string {
	switch dialect {
	case DialectMdoc:
		return mdocNamesRev[id]
	case DialectMan:
		return manNamesRev[id]
	default:
		return ""
	}
}
