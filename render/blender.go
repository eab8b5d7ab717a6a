package render

// BlendMode selects how a background write composites onto the existing cell
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendAdd
	BlendMax
)

// blend composites src over dst with the given mode and strength in [0, 1]
func blend(dst, src RGB, mode BlendMode, alpha float64) RGB {
	switch mode {
	case BlendAlpha:
		return dst.Lerp(src, alpha)
	case BlendAdd:
		return dst.Add(src.Scale(alpha))
	case BlendMax:
		return dst.Max(src.Scale(alpha))
	default:
		return src
	}
}
