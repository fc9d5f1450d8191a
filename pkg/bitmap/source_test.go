package bitmap

import (
	"image"
	"image/color"
	"testing"
)

func TestNewSourceValidation(t *testing.T) {
	pix := make([]byte, 12)

	if _, err := NewSource(pix, 2, 2, RGB); err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	if _, err := NewSource(pix, 2, 2, Layout(5)); err == nil {
		t.Error("unknown layout accepted")
	}
	if _, err := NewSource(pix, 0, 2, Gray); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := NewSource(pix, 2, -1, Gray); err == nil {
		t.Error("negative height accepted")
	}
	if _, err := NewSource(pix, 2, 2, RGBA); err == nil {
		t.Error("short pixel buffer accepted")
	}
	// 576*2^58 wraps to 0 mod 2^64; the size check must not be fooled.
	if _, err := NewSource(nil, 576, 1<<58, Gray); err == nil {
		t.Error("overflowing dimensions accepted")
	}
}

func TestDarkGray(t *testing.T) {
	src, err := NewSource([]byte{0, 127, 128, 255}, 4, 1, Gray)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	want := []bool{true, true, false, false}
	for x, w := range want {
		if got := src.Dark(x, 0); got != w {
			t.Errorf("Dark(%d, 0) = %v, want %v", x, got, w)
		}
	}
}

func TestDarkGrayAlphaIgnoresAlpha(t *testing.T) {
	src, err := NewSource([]byte{127, 0, 128, 255}, 2, 1, GrayAlpha)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	if !src.Dark(0, 0) {
		t.Error("level 127 with zero alpha should print")
	}
	if src.Dark(1, 0) {
		t.Error("level 128 with full alpha should stay blank")
	}
}

func TestDarkRGBTruncation(t *testing.T) {
	// (127+128+128)/3 truncates to 127: still ink.
	pix := []byte{
		127, 128, 128,
		128, 128, 128,
	}
	src, err := NewSource(pix, 2, 1, RGB)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	if !src.Dark(0, 0) {
		t.Error("average 127 should print")
	}
	if src.Dark(1, 0) {
		t.Error("average 128 should stay blank")
	}
}

func TestDarkRGBAIgnoresAlpha(t *testing.T) {
	pix := []byte{
		10, 10, 10, 0,
		250, 250, 250, 0,
	}
	src, err := NewSource(pix, 2, 1, RGBA)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	if !src.Dark(0, 0) {
		t.Error("dark transparent pixel should print")
	}
	if src.Dark(1, 0) {
		t.Error("light transparent pixel should stay blank")
	}
}

func TestDarkRows(t *testing.T) {
	pix := []byte{
		255, 255,
		0, 255,
	}
	src, err := NewSource(pix, 2, 2, Gray)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	if src.Dark(0, 0) || src.Dark(1, 0) || src.Dark(1, 1) {
		t.Error("white pixels printed")
	}
	if !src.Dark(0, 1) {
		t.Error("black pixel at (0, 1) missed")
	}
}

func TestFromImageGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range g.Pix {
		g.Pix[i] = 255
	}
	g.SetGray(2, 3, color.Gray{Y: 10})

	sub, ok := g.SubImage(image.Rect(2, 3, 6, 8)).(*image.Gray)
	if !ok {
		t.Fatal("SubImage is not *image.Gray")
	}

	src := FromImage(sub)
	if src.Width() != 4 || src.Height() != 5 {
		t.Fatalf("source is %dx%d, want 4x5", src.Width(), src.Height())
	}
	if src.Layout() != Gray {
		t.Fatalf("layout = %d, want Gray", src.Layout())
	}

	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			want := x == 0 && y == 0
			if got := src.Dark(x, y); got != want {
				t.Errorf("Dark(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestFromImageColor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.White)

	src := FromImage(img)
	if src.Width() != 2 || src.Height() != 1 {
		t.Fatalf("source is %dx%d, want 2x1", src.Width(), src.Height())
	}
	if src.Layout() != RGBA {
		t.Fatalf("layout = %d, want RGBA", src.Layout())
	}

	// pure red averages to 85
	if !src.Dark(0, 0) {
		t.Error("red pixel should print")
	}
	if src.Dark(1, 0) {
		t.Error("white pixel should stay blank")
	}
}

func TestFromImageNRGBAReusesPix(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src := FromImage(img)

	if len(src.Pix()) != len(img.Pix) || &src.Pix()[0] != &img.Pix[0] {
		t.Error("aligned NRGBA buffer was copied")
	}
}
