package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

var Palette = struct {
	White  RGB
	Yellow RGB
	Orange RGB
	Cyan   RGB
	Red    RGB
	Green  RGB
	Gray   RGB
	Purple RGB
}{
	White:  RGB{R: 255, G: 255, B: 255},
	Yellow: RGB{R: 255, G: 255, B: 0},
	Orange: RGB{R: 255, G: 128, B: 0},
	Cyan:   RGB{R: 0, G: 255, B: 255},
	Red:    RGB{R: 255, G: 0, B: 0},
	Green:  RGB{R: 0, G: 255, B: 0},
	Gray:   RGB{R: 128, G: 128, B: 128},
	Purple: RGB{R: 255, G: 0, B: 255},
}
