package token

import (
	"math"
	"unicode/utf8"
)

// Skip advances i past any run of whitespace bytes (anything from 0x01
// through 0x20; a NUL byte is not whitespace).
func Skip(d []byte, i int) int {
	for i < len(d) && d[i] != 0 && d[i] <= ' ' {
		i++
	}
	return i
}

// ScanNumber scans a number at d[i] and returns its value and the index
// past the consumed text. The value is composed as
//
//	sign * mantissa * 10^(scale + exponent)
//
// with floating accumulation throughout; there is no integer fast path.
// The scanner is lenient: any digit run is accepted after an optional
// leading zero, and a bare sign yields 0.
func ScanNumber(d []byte, i int) (float64, int) {
	var n, scale float64
	sign := 1.0
	subscale, signsubscale := 0, 1

	if i < len(d) && d[i] == '-' {
		sign = -1
		i++
	}
	if i < len(d) && d[i] == '0' {
		i++
	}
	if i < len(d) && d[i] >= '1' && d[i] <= '9' {
		for i < len(d) && d[i] >= '0' && d[i] <= '9' {
			n = n*10.0 + float64(d[i]-'0')
			i++
		}
	}
	if i+1 < len(d) && d[i] == '.' && d[i+1] >= '0' && d[i+1] <= '9' {
		i++
		for i < len(d) && d[i] >= '0' && d[i] <= '9' {
			n = n*10.0 + float64(d[i]-'0')
			scale--
			i++
		}
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < len(d) && d[i] == '+' {
			i++
		} else if i < len(d) && d[i] == '-' {
			signsubscale = -1
			i++
		}
		for i < len(d) && d[i] >= '0' && d[i] <= '9' {
			subscale = subscale*10 + int(d[i]-'0')
			i++
		}
	}
	return sign * n * math.Pow(10, scale+float64(subscale*signsubscale)), i
}

// ScanString scans a quoted string at d[i], decoding escapes, and
// returns the decoded text and the index past the closing quote. An
// unterminated string is not an error; it ends at the end of input and
// the returned index equals len(d), which callers must check if they
// care.
//
// The \u escape decodes UTF-16: a lone low surrogate or a NUL code
// point is silently dropped, and a high surrogate with a malformed or
// absent low half drops the escape (consuming the second escape when
// its digits were read). Unknown escapes copy the escaped byte.
func ScanString(d []byte, i int) (string, int, error) {
	if i >= len(d) || d[i] != '"' {
		return "", i, ErrString
	}
	i++
	out := make([]byte, 0, 16)
	for i < len(d) && d[i] != '"' {
		if d[i] != '\\' {
			out = append(out, d[i])
			i++
			continue
		}
		i++
		if i >= len(d) {
			break
		}
		switch d[i] {
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			uc := Hex4(d, i+1)
			i += 4
			switch {
			case (uc >= 0xDC00 && uc <= 0xDFFF) || uc == 0:
				// invalid: drop
			case uc >= 0xD800 && uc <= 0xDBFF:
				if i+2 >= len(d) || d[i+1] != '\\' || d[i+2] != 'u' {
					break // missing second half of surrogate
				}
				uc2 := Hex4(d, i+3)
				i += 6
				if uc2 < 0xDC00 || uc2 > 0xDFFF {
					break // invalid second half of surrogate
				}
				uc = 0x10000 + ((uc&0x3FF)<<10 | uc2&0x3FF)
				out = utf8.AppendRune(out, rune(uc))
			default:
				out = utf8.AppendRune(out, rune(uc))
			}
		default:
			out = append(out, d[i])
		}
		i++
	}
	if i < len(d) && d[i] == '"' {
		i++
	}
	if i > len(d) {
		i = len(d)
	}
	return string(out), i, nil
}

// Hex4 decodes exactly 4 hex digits at d[i]. It returns 0 when any of
// the 4 characters is not a hex digit, which is indistinguishable from
// a legitimately zero value; ScanString drops the resulting NUL code
// point either way.
func Hex4(d []byte, i int) uint32 {
	var h uint32
	for k := 0; k < 4; k++ {
		if i+k >= len(d) {
			return 0
		}
		c := d[i+k]
		switch {
		case c >= '0' && c <= '9':
			h += uint32(c - '0')
		case c >= 'A' && c <= 'F':
			h += 10 + uint32(c-'A')
		case c >= 'a' && c <= 'f':
			h += 10 + uint32(c-'a')
		default:
			return 0
		}
		if k < 3 {
			h <<= 4
		}
	}
	return h
}
