package shelltoken

import (
	"github.com/drpriver/drsh/internal/atom"
	"github.com/drpriver/drsh/internal/env"
)

// Environment is the subset of *env.Env canonicalization needs, so tests
// can stand up a minimal fake instead of a full environment.
type Environment interface {
	Home() *atom.Atom
	GetString(key string) (string, bool)
}

var _ Environment = (*env.Env)(nil)

// Canonicalize strips quoting and escapes from tok, expands a leading
// "~/" or bare "~" against HOME, and substitutes $VAR references, the way
// drsh_canonicalize does in a single left-to-right pass.
func Canonicalize(tok Token, backslashIsSep bool, e Environment) string {
	p := tok.Text
	out := make([]byte, 0, len(p))

	if len(p) > 0 && p[0] == '~' {
		if home := e.Home(); home != nil && home.Len() > 0 {
			if len(p) == 1 || p[1] == '/' || (backslashIsSep && p[1] == '\\') {
				p = p[1:]
				out = append(out, home.Bytes()...)
			}
		}
	}

	var quoted byte
	backslash := false
	dollarStart := -1

	isIdentByte := func(c byte) bool {
		return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
	}

	flushDollar := func(key []byte) {
		if len(key) == 0 {
			return
		}
		if v, ok := e.GetString(string(key)); ok {
			out = append(out, v...)
		}
	}

	for i := 0; i < len(p); i++ {
		c := p[i]
		if dollarStart >= 0 {
			if isIdentByte(c) {
				continue
			}
			flushDollar(p[dollarStart+1 : i])
			dollarStart = -1
		}

		switch c {
		case '$':
			if !backslash {
				dollarStart = i
				continue
			}
		case '"':
			if !backslash && quoted == '"' {
				quoted = 0
				continue
			}
			if !backslash && quoted == 0 {
				quoted = '"'
				continue
			}
		case '\'':
			if !backslash && quoted == '\'' {
				quoted = 0
				continue
			}
			if !backslash && quoted == 0 {
				quoted = '\''
				continue
			}
		case '\\':
			if !backslash {
				backslash = true
				continue
			}
		}

		if backslash {
			switch c {
			case ' ', '"', '\'':
			default:
				out = append(out, '\\')
			}
		}
		backslash = false
		if dollarStart >= 0 {
			continue
		}
		out = append(out, c)
	}
	if dollarStart >= 0 {
		flushDollar(p[dollarStart+1:])
	}
	return string(out)
}
