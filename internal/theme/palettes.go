package theme

import "github.com/lucasb-eyer/go-colorful"

// lab builds a color from CIE L*a*b* coordinates on the D50 white point
func lab(l, a, b float64) colorful.Color {
	return colorful.LabWhiteRef(l/100, a/100, b/100, colorful.D50).Clamped()
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var selenizedLight = Palette{
	Bg0: lab(96, 0, 13), Bg1: lab(91, 0, 13), Bg2: lab(82, 0, 13),
	Dim0: lab(62, -4, 1), Fg0: lab(42, -6, -6), Fg1: lab(31, -6, -6),
	Red: lab(46, 66, 42), Green: lab(54, -40, 58), Yellow: lab(59, 6, 71),
	Blue: lab(46, 0, -60), Magenta: lab(52, 58, -16), Cyan: lab(57, -42, -4),
	Orange: lab(52, 39, 52), Violet: lab(49, 32, -47),
}

var selenizedDark = Palette{
	Bg0: lab(23, -12, -12), Bg1: lab(28, -13, -13), Bg2: lab(36, -13, -13),
	Dim0: lab(56, -8, -6), Fg0: lab(75, -5, -2), Fg1: lab(85, -5, -2),
	Red: lab(60, 63, 40), Green: lab(69, -38, 55), Yellow: lab(75, 6, 68),
	Blue: lab(60, 0, -57), Magenta: lab(66, 55, -15), Cyan: lab(73, -40, -4),
	Orange: lab(67, 37, 50), Violet: lab(64, 30, -45),
}

var selenizedWhite = Palette{
	Bg0: lab(100, 0, 0), Bg1: lab(93, 0, 0), Bg2: lab(82, 0, 0),
	Dim0: lab(56, 0, 0), Fg0: lab(30, 0, 0), Fg1: lab(16, 0, 0),
	Red: lab(40, 88, 56), Green: lab(54, -53, 77), Yellow: lab(65, 8, 95),
	Blue: lab(40, 0, -80), Magenta: lab(50, 77, -21), Cyan: lab(61, -56, -6),
	Orange: lab(51, 52, 70), Violet: lab(45, 42, -63),
}

var selenizedBlack = Palette{
	Bg0: lab(8, 0, 0), Bg1: lab(15, 0, 0), Bg2: lab(25, 0, 0),
	Dim0: lab(50, 0, 0), Fg0: lab(75, 0, 0), Fg1: lab(88, 0, 0),
	Red: lab(56, 63, 40), Green: lab(67, -38, 55), Yellow: lab(75, 6, 68),
	Blue: lab(56, 0, -57), Magenta: lab(64, 55, -15), Cyan: lab(72, -40, -4),
	Orange: lab(64, 37, 50), Violet: lab(60, 30, -45),
}

// solarized base tones, darkest first
var solarizedBase = [8]colorful.Color{
	hex("#002b36"), hex("#073642"), hex("#586e75"), hex("#657b83"),
	hex("#839496"), hex("#93a1a1"), hex("#eee8d5"), hex("#fdf6e3"),
}

// solarizedPalette maps the base tones onto background and foreground
// roles, mirrored between the light and dark modes.
func solarizedPalette(dark bool) Palette {
	b := solarizedBase
	p := Palette{
		Red: hex("#dc322f"), Orange: hex("#cb4b16"), Yellow: hex("#b58900"),
		Green: hex("#859900"), Cyan: hex("#2aa198"), Blue: hex("#268bd2"),
		Violet: hex("#6c71c4"), Magenta: hex("#d33682"),
	}
	if dark {
		p.Bg0, p.Bg1, p.Bg2 = b[0], b[1], b[2]
		p.Dim0, p.Fg0, p.Fg1 = b[3], b[4], b[5]
	} else {
		p.Bg0, p.Bg1, p.Bg2 = b[7], b[6], b[5]
		p.Dim0, p.Fg0, p.Fg1 = b[4], b[3], b[2]
	}
	return p
}
