package testcases

var centredCases = []Case{
	{
		// inscribed circle with a 24 pixel margin on every side
		Name:       "circle_margin",
		Width:      2048,
		Height:     2048,
		Radius:     1000,
		Resolution: 100,
	},
	{
		// default radius, circle touching all four edges
		Name:       "circle_snug",
		Width:      2000,
		Height:     2000,
		Resolution: 100,
	},
	{
		Name:       "ellipse_wide",
		Width:      2048,
		Height:     1024,
		Radius:     900,
		RadiusY:    400,
		Resolution: 100,
	},
	{
		Name:       "low_resolution",
		Width:      2048,
		Height:     2048,
		Radius:     1000,
		Resolution: 16,
	},
}

var clippedCases = []Case{
	{
		// centre pushed north until the circle overflows the top edge
		Name:       "north_clip",
		Width:      2048,
		Height:     2048,
		Radius:     1024,
		OffsetY:    200,
		Resolution: 100,
	},
	{
		// overflows north and east at once
		Name:       "corner_clip",
		Width:      2048,
		Height:     2048,
		Radius:     1024,
		OffsetX:    300,
		OffsetY:    300,
		Resolution: 100,
	},
	{
		// radius larger than the half-frame in both directions
		Name:       "oversized",
		Width:      1024,
		Height:     1024,
		Radius:     700,
		Resolution: 80,
	},
}

var offsetCases = []Case{
	{
		Name:       "shift_small",
		Width:      2048,
		Height:     2048,
		Radius:     900,
		OffsetX:    50,
		OffsetY:    -80,
		Resolution: 100,
	},
	{
		Name:       "shift_ellipse",
		Width:      1600,
		Height:     1200,
		Radius:     600,
		RadiusY:    450,
		OffsetX:    -120,
		OffsetY:    60,
		Resolution: 60,
	},
}

// All contains all mask cases, grouped by category.
// The category name is used as a prefix in preview filenames.
var All = map[string][]Case{
	"centred": centredCases,
	"clipped": clippedCases,
	"offset":  offsetCases,
}
