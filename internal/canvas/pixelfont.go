package canvas

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Pixel face geometry: 5x7 capitals, one row below the baseline for
// descenders, one column of spacing.
const (
	glyphWidth   = 5
	glyphRows    = 8
	glyphAscent  = 7
	glyphAdvance = 6
	firstGlyph   = ' '
	lastGlyph    = '~'
)

var pixelGlyphs = [lastGlyph + 1][glyphRows]string{
	' ':  {".....", ".....", ".....", ".....", ".....", ".....", ".....", "....."},
	'!':  {"..#..", "..#..", "..#..", "..#..", "..#..", ".....", "..#..", "....."},
	'"':  {".#.#.", ".#.#.", ".#.#.", ".....", ".....", ".....", ".....", "....."},
	'#':  {".#.#.", ".#.#.", "#####", ".#.#.", "#####", ".#.#.", ".#.#.", "....."},
	'$':  {"..#..", ".####", "#.#..", ".###.", "..#.#", "####.", "..#..", "....."},
	'%':  {"##...", "##..#", "...#.", "..#..", ".#...", "#..##", "...##", "....."},
	'&':  {".##..", "#..#.", "#.#..", ".#...", "#.#.#", "#..#.", ".##.#", "....."},
	'\'': {"..#..", "..#..", ".#...", ".....", ".....", ".....", ".....", "....."},
	'(':  {"...#.", "..#..", ".#...", ".#...", ".#...", "..#..", "...#.", "....."},
	')':  {".#...", "..#..", "...#.", "...#.", "...#.", "..#..", ".#...", "....."},
	'*':  {".....", "..#..", "#.#.#", ".###.", "#.#.#", "..#..", ".....", "....."},
	'+':  {".....", "..#..", "..#..", "#####", "..#..", "..#..", ".....", "....."},
	',':  {".....", ".....", ".....", ".....", ".....", "..#..", "..#..", ".#..."},
	'-':  {".....", ".....", ".....", "#####", ".....", ".....", ".....", "....."},
	'.':  {".....", ".....", ".....", ".....", ".....", ".....", "..#..", "....."},
	'/':  {".....", "....#", "...#.", "..#..", ".#...", "#....", ".....", "....."},
	'0':  {".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###.", "....."},
	'1':  {"..#..", ".##..", "..#..", "..#..", "..#..", "..#..", ".###.", "....."},
	'2':  {".###.", "#...#", "....#", "...#.", "..#..", ".#...", "#####", "....."},
	'3':  {"#####", "...#.", "..#..", "...#.", "....#", "#...#", ".###.", "....."},
	'4':  {"...#.", "..##.", ".#.#.", "#..#.", "#####", "...#.", "...#.", "....."},
	'5':  {"#####", "#....", "####.", "....#", "....#", "#...#", ".###.", "....."},
	'6':  {"..##.", ".#...", "#....", "####.", "#...#", "#...#", ".###.", "....."},
	'7':  {"#####", "....#", "...#.", "..#..", ".#...", ".#...", ".#...", "....."},
	'8':  {".###.", "#...#", "#...#", ".###.", "#...#", "#...#", ".###.", "....."},
	'9':  {".###.", "#...#", "#...#", ".####", "....#", "...#.", ".##..", "....."},
	':':  {".....", ".....", "..#..", ".....", ".....", "..#..", ".....", "....."},
	';':  {".....", ".....", "..#..", ".....", ".....", "..#..", "..#..", ".#..."},
	'<':  {"...#.", "..#..", ".#...", "#....", ".#...", "..#..", "...#.", "....."},
	'=':  {".....", ".....", "#####", ".....", "#####", ".....", ".....", "....."},
	'>':  {".#...", "..#..", "...#.", "....#", "...#.", "..#..", ".#...", "....."},
	'?':  {".###.", "#...#", "....#", "...#.", "..#..", ".....", "..#..", "....."},
	'@':  {".###.", "#...#", "....#", ".##.#", "#.#.#", "#.#.#", ".###.", "....."},
	'A':  {".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#", "....."},
	'B':  {"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####.", "....."},
	'C':  {".###.", "#...#", "#....", "#....", "#....", "#...#", ".###.", "....."},
	'D':  {"###..", "#..#.", "#...#", "#...#", "#...#", "#..#.", "###..", "....."},
	'E':  {"#####", "#....", "#....", "####.", "#....", "#....", "#####", "....."},
	'F':  {"#####", "#....", "#....", "####.", "#....", "#....", "#....", "....."},
	'G':  {".###.", "#...#", "#....", "#.###", "#...#", "#...#", ".####", "....."},
	'H':  {"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#", "....."},
	'I':  {".###.", "..#..", "..#..", "..#..", "..#..", "..#..", ".###.", "....."},
	'J':  {"..###", "...#.", "...#.", "...#.", "...#.", "#..#.", ".##..", "....."},
	'K':  {"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#", "....."},
	'L':  {"#....", "#....", "#....", "#....", "#....", "#....", "#####", "....."},
	'M':  {"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#", "....."},
	'N':  {"#...#", "#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#", "....."},
	'O':  {".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###.", "....."},
	'P':  {"####.", "#...#", "#...#", "####.", "#....", "#....", "#....", "....."},
	'Q':  {".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#", "....."},
	'R':  {"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#", "....."},
	'S':  {".####", "#....", "#....", ".###.", "....#", "....#", "####.", "....."},
	'T':  {"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#..", "....."},
	'U':  {"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###.", "....."},
	'V':  {"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#..", "....."},
	'W':  {"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "#.#.#", ".#.#.", "....."},
	'X':  {"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#", "....."},
	'Y':  {"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#..", "....."},
	'Z':  {"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####", "....."},
	'[':  {".###.", ".#...", ".#...", ".#...", ".#...", ".#...", ".###.", "....."},
	'\\': {".....", "#....", ".#...", "..#..", "...#.", "....#", ".....", "....."},
	']':  {".###.", "...#.", "...#.", "...#.", "...#.", "...#.", ".###.", "....."},
	'^':  {"..#..", ".#.#.", "#...#", ".....", ".....", ".....", ".....", "....."},
	'_':  {".....", ".....", ".....", ".....", ".....", ".....", "#####", "....."},
	'`':  {".#...", "..#..", "...#.", ".....", ".....", ".....", ".....", "....."},
	'a':  {".....", ".....", ".###.", "....#", ".####", "#...#", ".####", "....."},
	'b':  {"#....", "#....", "#.##.", "##..#", "#...#", "#...#", "####.", "....."},
	'c':  {".....", ".....", ".###.", "#....", "#....", "#...#", ".###.", "....."},
	'd':  {"....#", "....#", ".##.#", "#..##", "#...#", "#...#", ".####", "....."},
	'e':  {".....", ".....", ".###.", "#...#", "#####", "#....", ".###.", "....."},
	'f':  {"..##.", ".#..#", ".#...", "###..", ".#...", ".#...", ".#...", "....."},
	'g':  {".....", ".....", ".####", "#...#", "#...#", ".####", "....#", ".###."},
	'h':  {"#....", "#....", "#.##.", "##..#", "#...#", "#...#", "#...#", "....."},
	'i':  {"..#..", ".....", ".##..", "..#..", "..#..", "..#..", ".###.", "....."},
	'j':  {"...#.", ".....", "..##.", "...#.", "...#.", "...#.", "#..#.", ".##.."},
	'k':  {".#...", ".#...", ".#..#", ".#.#.", ".##..", ".#.#.", ".#..#", "....."},
	'l':  {".##..", "..#..", "..#..", "..#..", "..#..", "..#..", ".###.", "....."},
	'm':  {".....", ".....", "##.#.", "#.#.#", "#.#.#", "#...#", "#...#", "....."},
	'n':  {".....", ".....", "#.##.", "##..#", "#...#", "#...#", "#...#", "....."},
	'o':  {".....", ".....", ".###.", "#...#", "#...#", "#...#", ".###.", "....."},
	'p':  {".....", ".....", "####.", "#...#", "#...#", "####.", "#....", "#...."},
	'q':  {".....", ".....", ".####", "#...#", "#...#", ".####", "....#", "....#"},
	'r':  {".....", ".....", "#.##.", "##..#", "#....", "#....", "#....", "....."},
	's':  {".....", ".....", ".###.", "#....", ".###.", "....#", "####.", "....."},
	't':  {".#...", ".#...", "###..", ".#...", ".#...", ".#..#", "..##.", "....."},
	'u':  {".....", ".....", "#...#", "#...#", "#...#", "#..##", ".##.#", "....."},
	'v':  {".....", ".....", "#...#", "#...#", "#...#", ".#.#.", "..#..", "....."},
	'w':  {".....", ".....", "#...#", "#...#", "#.#.#", "#.#.#", ".#.#.", "....."},
	'x':  {".....", ".....", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "....."},
	'y':  {".....", ".....", "#...#", "#...#", "#...#", ".####", "....#", ".###."},
	'z':  {".....", ".....", "#####", "...#.", "..#..", ".#...", "#####", "....."},
	'{':  {"...#.", "..#..", "..#..", ".#...", "..#..", "..#..", "...#.", "....."},
	'|':  {"..#..", "..#..", "..#..", "..#..", "..#..", "..#..", "..#..", "....."},
	'}':  {".#...", "..#..", "..#..", "...#.", "..#..", "..#..", ".#...", "....."},
	'~':  {".....", ".....", ".#...", "#.#.#", "...#.", ".....", ".....", "....."},
}

// Drawn for any rune outside printable ASCII.
var missingGlyph = [glyphRows]string{"#####", "#...#", "#...#", "#...#", "#...#", "#...#", "#####", "....."}

// PixelFace is the default 8px bitmap face. Glyphs are 5 pixels wide on a
// 6 pixel advance and span 8 rows, 7 of them above the baseline.
var PixelFace font.Face = newPixelFace()

func newPixelFace() *basicfont.Face {
	n := int(lastGlyph-firstGlyph) + 2
	mask := image.NewAlpha(image.Rect(0, 0, glyphWidth, n*glyphRows))

	stamp := func(index int, rows [glyphRows]string) {
		for y, row := range rows {
			for x := 0; x < len(row) && x < glyphWidth; x++ {
				if row[x] == '#' {
					mask.Pix[(index*glyphRows+y)*mask.Stride+x] = 0xff
				}
			}
		}
	}
	for r := firstGlyph; r <= lastGlyph; r++ {
		stamp(int(r-firstGlyph), pixelGlyphs[r])
	}
	stamp(n-1, missingGlyph)

	return &basicfont.Face{
		Advance: glyphAdvance,
		Width:   glyphWidth,
		Height:  glyphRows + 1,
		Ascent:  glyphAscent,
		Descent: glyphRows - glyphAscent,
		Mask:    mask,
		Ranges: []basicfont.Range{
			{Low: firstGlyph, High: lastGlyph + 1, Offset: 0},
			{Low: '\ufffd', High: '\ufffe', Offset: n - 1},
		},
	}
}

// Fits reports whether text drawn with face at row y stays within a panel
// height px tall.
func Fits(face font.Face, y, height int) bool {
	m := face.Metrics()
	return y >= 0 && y+m.Ascent.Ceil()+m.Descent.Ceil() <= height
}
