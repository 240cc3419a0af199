package token

const hexDigits = "0123456789abcdef"

// Quote renders s as a quoted JSON string. The two-character escapes
// cover " \ and the control characters \b \f \n \r \t; any other byte
// below 0x20 becomes \u00XX. Bytes at or above 0x20, including raw
// multi-byte UTF-8 sequences, pass through unescaped.
func Quote(s string) string {
	d := make([]byte, 1, len(s)+2)
	d[0] = '"'
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if c < 0x20 {
				d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
			} else {
				d = append(d, c)
			}
		}
	}
	return string(append(d, '"'))
}
