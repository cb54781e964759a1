// SPDX-License-Identifier: MPL-2.0

package textutil

import "strings"

const (
	classDigit  = "0123456789"
	classUpper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	classLower  = "abcdefghijklmnopqrstuvwxyz"
	classPunct  = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	classSpace  = "\t\n\v\f\r "
	classBlank  = " \t"
	classXDigit = "0123456789ABCDEFabcdef"
)

// classes maps a POSIX class name to its members.
var classes = map[string]string{
	"alnum":  classDigit + classUpper + classLower,
	"alpha":  classUpper + classLower,
	"blank":  classBlank,
	"cntrl":  controlChars(),
	"digit":  classDigit,
	"graph":  classDigit + classUpper + classLower + classPunct,
	"lower":  classLower,
	"print":  classDigit + classUpper + classLower + classPunct + " ",
	"punct":  classPunct,
	"space":  classSpace,
	"upper":  classUpper,
	"xdigit": classXDigit,
}

func controlChars() string {
	var b strings.Builder
	for c := byte(0); c < 0x20; c++ {
		b.WriteByte(c)
	}
	b.WriteByte(0x7f)
	return b.String()
}

// ClassMembers returns the characters of the named POSIX class ("digit",
// "lower", ...). The name is given without the surrounding "[:" and ":]".
func ClassMembers(name string) (string, bool) {
	members, ok := classes[name]
	return members, ok
}

// ClassNames returns the recognized class names in a stable order.
func ClassNames() []string {
	return []string{"alnum", "alpha", "blank", "cntrl", "digit", "graph", "lower", "print", "punct", "space", "upper", "xdigit"}
}

// ExpandCharClass expands a tr-style character set into the literal
// characters it denotes.
//
//   - "\x" yields x literally, whatever x is.
//   - "[:name:]" yields every member of the POSIX class name. Unknown names,
//     and brackets that are not a complete class, are copied literally.
//   - "a-z" yields every character from a to z inclusive when a < z by code
//     point. Otherwise the '-' is copied literally.
func ExpandCharClass(pattern string) string {
	runes := []rune(pattern)
	var out strings.Builder
	out.Grow(len(pattern))

	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; {
		case r == '\\':
			if i+1 < len(runes) {
				i++
				out.WriteRune(runes[i])
			}
		case r == '[':
			if name, end, ok := bracketClass(runes, i); ok {
				if members, known := classes[name]; known {
					out.WriteString(members)
					i = end
					continue
				}
			}
			out.WriteRune(r)
		case i+2 < len(runes) && runes[i+1] == '-' && r < runes[i+2]:
			for c := r; c <= runes[i+2]; c++ {
				out.WriteRune(c)
			}
			i += 2
		default:
			out.WriteRune(r)
		}
	}

	return out.String()
}

// bracketClass reports whether runes[start:] begins with "[:name:]" and
// returns name plus the index of the closing ']'.
func bracketClass(runes []rune, start int) (name string, end int, ok bool) {
	if start+1 >= len(runes) || runes[start+1] != ':' {
		return "", 0, false
	}
	for j := start + 2; j+1 < len(runes); j++ {
		if runes[j] == ':' && runes[j+1] == ']' {
			return string(runes[start+2 : j]), j + 1, true
		}
		if runes[j] == ']' {
			break
		}
	}
	return "", 0, false
}
