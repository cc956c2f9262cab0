package encode

type EncodeOption func(*EncState)

// EncodeIndent pretty prints with n spaces per level. n <= 0 gives compact
// output, the default.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
