package color

// cssNames is the CSS3 extended color keyword set.
var cssNames = map[string]Color{
	"aliceblue":            New(240, 248, 255),
	"antiquewhite":         New(250, 235, 215),
	"aqua":                 New(0, 255, 255),
	"aquamarine":           New(127, 255, 212),
	"azure":                New(240, 255, 255),
	"beige":                New(245, 245, 220),
	"bisque":               New(255, 228, 196),
	"black":                New(0, 0, 0),
	"blanchedalmond":       New(255, 235, 205),
	"blue":                 New(0, 0, 255),
	"blueviolet":           New(138, 43, 226),
	"brown":                New(165, 42, 42),
	"burlywood":            New(222, 184, 135),
	"cadetblue":            New(95, 158, 160),
	"chartreuse":           New(127, 255, 0),
	"chocolate":            New(210, 105, 30),
	"coral":                New(255, 127, 80),
	"cornflowerblue":       New(100, 149, 237),
	"cornsilk":             New(255, 248, 220),
	"crimson":              New(220, 20, 60),
	"cyan":                 New(0, 255, 255),
	"darkblue":             New(0, 0, 139),
	"darkcyan":             New(0, 139, 139),
	"darkgoldenrod":        New(184, 134, 11),
	"darkgray":             New(169, 169, 169),
	"darkgreen":            New(0, 100, 0),
	"darkgrey":             New(169, 169, 169),
	"darkkhaki":            New(189, 183, 107),
	"darkmagenta":          New(139, 0, 139),
	"darkolivegreen":       New(85, 107, 47),
	"darkorange":           New(255, 140, 0),
	"darkorchid":           New(153, 50, 204),
	"darkred":              New(139, 0, 0),
	"darksalmon":           New(233, 150, 122),
	"darkseagreen":         New(143, 188, 143),
	"darkslateblue":        New(72, 61, 139),
	"darkslategray":        New(47, 79, 79),
	"darkslategrey":        New(47, 79, 79),
	"darkturquoise":        New(0, 206, 209),
	"darkviolet":           New(148, 0, 211),
	"deeppink":             New(255, 20, 147),
	"deepskyblue":          New(0, 191, 255),
	"dimgray":              New(105, 105, 105),
	"dimgrey":              New(105, 105, 105),
	"dodgerblue":           New(30, 144, 255),
	"firebrick":            New(178, 34, 34),
	"floralwhite":          New(255, 250, 240),
	"forestgreen":          New(34, 139, 34),
	"fuchsia":              New(255, 0, 255),
	"gainsboro":            New(220, 220, 220),
	"ghostwhite":           New(248, 248, 255),
	"gold":                 New(255, 215, 0),
	"goldenrod":            New(218, 165, 32),
	"gray":                 New(128, 128, 128),
	"green":                New(0, 128, 0),
	"greenyellow":          New(173, 255, 47),
	"grey":                 New(128, 128, 128),
	"honeydew":             New(240, 255, 240),
	"hotpink":              New(255, 105, 180),
	"indianred":            New(205, 92, 92),
	"indigo":               New(75, 0, 130),
	"ivory":                New(255, 255, 240),
	"khaki":                New(240, 230, 140),
	"lavender":             New(230, 230, 250),
	"lavenderblush":        New(255, 240, 245),
	"lawngreen":            New(124, 252, 0),
	"lemonchiffon":         New(255, 250, 205),
	"lightblue":            New(173, 216, 230),
	"lightcoral":           New(240, 128, 128),
	"lightcyan":            New(224, 255, 255),
	"lightgoldenrodyellow": New(250, 250, 210),
	"lightgray":            New(211, 211, 211),
	"lightgreen":           New(144, 238, 144),
	"lightgrey":            New(211, 211, 211),
	"lightpink":            New(255, 182, 193),
	"lightsalmon":          New(255, 160, 122),
	"lightseagreen":        New(32, 178, 170),
	"lightskyblue":         New(135, 206, 250),
	"lightslategray":       New(119, 136, 153),
	"lightslategrey":       New(119, 136, 153),
	"lightsteelblue":       New(176, 196, 222),
	"lightyellow":          New(255, 255, 224),
	"lime":                 New(0, 255, 0),
	"limegreen":            New(50, 205, 50),
	"linen":                New(250, 240, 230),
	"magenta":              New(255, 0, 255),
	"maroon":               New(128, 0, 0),
	"mediumaquamarine":     New(102, 205, 170),
	"mediumblue":           New(0, 0, 205),
	"mediumorchid":         New(186, 85, 211),
	"mediumpurple":         New(147, 112, 219),
	"mediumseagreen":       New(60, 179, 113),
	"mediumslateblue":      New(123, 104, 238),
	"mediumspringgreen":    New(0, 250, 154),
	"mediumturquoise":      New(72, 209, 204),
	"mediumvioletred":      New(199, 21, 133),
	"midnightblue":         New(25, 25, 112),
	"mintcream":            New(245, 255, 250),
	"mistyrose":            New(255, 228, 225),
	"moccasin":             New(255, 228, 181),
	"navajowhite":          New(255, 222, 173),
	"navy":                 New(0, 0, 128),
	"oldlace":              New(253, 245, 230),
	"olive":                New(128, 128, 0),
	"olivedrab":            New(107, 142, 35),
	"orange":               New(255, 165, 0),
	"orangered":            New(255, 69, 0),
	"orchid":               New(218, 112, 214),
	"palegoldenrod":        New(238, 232, 170),
	"palegreen":            New(152, 251, 152),
	"paleturquoise":        New(175, 238, 238),
	"palevioletred":        New(219, 112, 147),
	"papayawhip":           New(255, 239, 213),
	"peachpuff":            New(255, 218, 185),
	"peru":                 New(205, 133, 63),
	"pink":                 New(255, 192, 203),
	"plum":                 New(221, 160, 221),
	"powderblue":           New(176, 224, 230),
	"purple":               New(128, 0, 128),
	"red":                  New(255, 0, 0),
	"rosybrown":            New(188, 143, 143),
	"royalblue":            New(65, 105, 225),
	"saddlebrown":          New(139, 69, 19),
	"salmon":               New(250, 128, 114),
	"sandybrown":           New(244, 164, 96),
	"seagreen":             New(46, 139, 87),
	"seashell":             New(255, 245, 238),
	"sienna":               New(160, 82, 45),
	"silver":               New(192, 192, 192),
	"skyblue":              New(135, 206, 235),
	"slateblue":            New(106, 90, 205),
	"slategray":            New(112, 128, 144),
	"slategrey":            New(112, 128, 144),
	"snow":                 New(255, 250, 250),
	"springgreen":          New(0, 255, 127),
	"steelblue":            New(70, 130, 180),
	"tan":                  New(210, 180, 140),
	"teal":                 New(0, 128, 128),
	"thistle":              New(216, 191, 216),
	"tomato":               New(255, 99, 71),
	"turquoise":            New(64, 224, 208),
	"violet":               New(238, 130, 238),
	"wheat":                New(245, 222, 179),
	"white":                New(255, 255, 255),
	"whitesmoke":           New(245, 245, 245),
	"yellow":               New(255, 255, 0),
	"yellowgreen":          New(154, 205, 50),
}
