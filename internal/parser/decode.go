package parser

import (
	"strings"

	"github.com/oxhq/manroff/internal/config"
	"github.com/oxhq/manroff/internal/diag"
	"github.com/oxhq/manroff/internal/escape"
)

// decodeEscapesBytes resolves every \-escape in line into its decoded
// text, per §4.1. KindFont escapes carry no literal text of their own
// (internal/render is responsible for font state); KindClass escapes
// resolve to the single rune the historical roff engine would display in
// a plain-text rendering. An unrecognized escape is reported through sink
// and either dropped or kept literal depending on
// cfg.IgnoreUnknownEscapes.
func decodeEscapesBytes(line []byte, cfg config.ParserConfig, sink diag.Sink, lineNo int) string {
	if !bytesContainBackslash(line) {
		return string(line)
	}

	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		if line[i] != '\\' {
			sb.WriteByte(line[i])
			continue
		}
		result, next := escape.Decode(line, i+1)
		switch result.Kind {
		case escape.KindRune:
			sb.WriteRune(result.Rune)
		case escape.KindClass:
			if r, ok := classRune(result.Class); ok {
				sb.WriteRune(r)
			}
		case escape.KindFont:
			// no literal text; font state is a rendering concern
		case escape.KindError:
			if cfg.IgnoreUnknownEscapes {
				sb.WriteByte('\\')
				if next > i+1 {
					sb.Write(line[i+1 : next])
				}
			} else if sink != nil {
				diag.Report(sink, diag.Error, lineNo, i+1, diag.CodeBadEscape, "%s", result.Err)
			}
		}
		i = next - 1
	}
	return sb.String()
}

func bytesContainBackslash(b []byte) bool {
	for _, c := range b {
		if c == '\\' {
			return true
		}
	}
	return false
}

// classRune maps an escape.Class to the rune a plain-text rendering shows.
func classRune(c escape.Class) (rune, bool) {
	switch c {
	case escape.ClassNoBreakSpace:
		return ' ', true
	case escape.ClassBreakableHyphen:
		return '-', true
	case escape.ClassTabAsSpace:
		return ' ', true
	case escape.ClassSoftHyphen:
		return 0, false // invisible unless a line break lands there
	case escape.ClassNoSpace:
		return 0, false // \& is a zero-width parsing boundary, not text
	default:
		return 0, false
	}
}
