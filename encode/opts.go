package encode

type EncodeOption func(*EncState)

// EncodeWire selects the compact one-line rendering with no
// whitespace between tokens.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// Depth sets the starting object nesting level, for embedding the
// output inside already indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
