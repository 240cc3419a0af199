// Package minify strips insignificant whitespace and comments from JSON
// text. It is a pure text filter, independent of tree construction.
package minify

// Minify removes whitespace outside string literals, //-to-end-of-line
// comments, and /* */ block comments, writing the result over the input
// buffer and returning it resliced to the new length. String literals
// are copied verbatim, escape sequences included. Unterminated strings
// or block comments end the scan at the end of the buffer; no failure
// is raised.
func Minify(d []byte) []byte {
	into := 0
	i := 0
	for i < len(d) {
		switch c := d[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '/' && i+1 < len(d) && d[i+1] == '/':
			for i < len(d) && d[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(d) && d[i+1] == '*':
			for i < len(d) && !(d[i] == '*' && i+1 < len(d) && d[i+1] == '/') {
				i++
			}
			i += 2
		case c == '"':
			d[into] = c
			into++
			i++
			for i < len(d) && d[i] != '"' {
				if d[i] == '\\' {
					d[into] = d[i]
					into++
					i++
					if i >= len(d) {
						break
					}
				}
				d[into] = d[i]
				into++
				i++
			}
			if i < len(d) {
				d[into] = d[i]
				into++
				i++
			}
		default:
			d[into] = c
			into++
			i++
		}
	}
	return d[:into]
}

// MinifyString is Minify over a copy of s.
func MinifyString(s string) string {
	return string(Minify([]byte(s)))
}
