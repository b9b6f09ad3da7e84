package graphics

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestBakeGlyphsCoversPrintableASCII(t *testing.T) {
	baked, err := BakeGlyphs(goregular.TTF, 18)
	if err != nil {
		t.Fatalf("BakeGlyphs: %v", err)
	}
	b := baked.Image.Bounds()
	if h := b.Dy(); h&(h-1) != 0 {
		t.Errorf("Atlas height %d is not a power of two", h)
	}
	if baked.LineHeight <= 0 {
		t.Errorf("Expected positive line height, got %d", baked.LineHeight)
	}

	for r := firstRune; r <= lastRune; r++ {
		fc, ok := baked.Characters[r]
		if !ok {
			t.Errorf("Missing glyph %q", r)
			continue
		}
		if fc.AtlasX+fc.Width > float32(b.Dx()) || fc.AtlasY+fc.Height > float32(b.Dy()) {
			t.Errorf("Glyph %q at (%v,%v) size %vx%v falls outside atlas %v", r, fc.AtlasX, fc.AtlasY, fc.Width, fc.Height, b)
		}
	}

	if space := baked.Characters[' ']; space.Advance <= 0 || space.Width != 0 {
		t.Errorf("Space should advance without a bitmap, got %+v", space)
	}
	if a := baked.Characters['A']; a.Width == 0 || a.Height == 0 {
		t.Errorf("Expected a bitmap for 'A', got %+v", a)
	}
}

func TestBakeGlyphsRejectsGarbage(t *testing.T) {
	if _, err := BakeGlyphs([]byte("not a font"), 18); err == nil {
		t.Error("Expected parse error")
	}
}

func TestFontRendererLayout(t *testing.T) {
	baked, err := BakeGlyphs(goregular.TTF, 18)
	if err != nil {
		t.Fatalf("BakeGlyphs: %v", err)
	}
	b := baked.Image.Bounds()
	fr := &FontRenderer{atlas: &FontAtlasInfo{
		AtlasW:     b.Dx(),
		AtlasH:     b.Dy(),
		LineHeight: baked.LineHeight,
		Characters: baked.Characters,
	}}

	// Spaces add advance but no quads
	verts := fr.buildVertices("a b", 0, 20, 1)
	if len(verts) != 2*6*4 {
		t.Errorf("Expected 2 quads, got %d floats", len(verts))
	}

	// The 'b' quad starts after the advances of 'a' and the space
	chars := baked.Characters
	wantX := float32(chars['a'].Advance+chars[' '].Advance) + chars['b'].BearingX
	if got := verts[6*4]; got != wantX {
		t.Errorf("Expected second quad at x=%v, got %v", wantX, got)
	}

	// Unknown runes advance like a space
	missing := fr.buildVertices("a\u00e9b", 0, 20, 1)
	if len(missing) != len(verts) || missing[6*4] != wantX {
		t.Errorf("Missing glyph should lay out like a space: got %v floats, x=%v", len(missing), missing[6*4])
	}

	// Scale multiplies positions
	scaled := fr.buildVertices("a b", 0, 20, 2)
	if scaled[6*4] != 2*wantX {
		t.Errorf("Expected x=%v at 2x, got %v", 2*wantX, scaled[6*4])
	}
}
