package tipview

import (
	"slices"
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"fits exactly", "hello world", 110, []string{"hello world"}},
		{"breaks on space", "hello world foo", 110, []string{"hello world", "foo"}},
		{"no wrap at zero width", "hello world foo", 0, []string{"hello world foo"}},
		{"explicit newline", "a b\nc", 1000, []string{"a b", "c"}},
		{"blank paragraph kept", "a\n\nb", 1000, []string{"a", "", "b"}},
		{"long word alone", "supercalifragilistic ok", 50, []string{"supercalifragilistic", "ok"}},
		{"collapses runs of spaces", "a   b", 1000, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(testFont, tt.text, tt.width, nil)
			if !slices.Equal(got, tt.want) {
				t.Errorf("wrapText(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestPlainText_IntrinsicSize(t *testing.T) {
	pt := newPlainText()
	pt.SetText("hello")
	if w, h := pt.IntrinsicSize(); w != 0 || h != 0 {
		t.Errorf("without font = %dx%d, want 0x0", w, h)
	}
	pt.SetFont(testFont)
	if w, h := pt.IntrinsicSize(); w != 50 || h != 20 {
		t.Errorf("IntrinsicSize = %dx%d, want 50x20", w, h)
	}
	if pt.Prepare(10) {
		t.Error("plain text never asks for a relayout")
	}
	pt.SetText("")
	if w, h := pt.IntrinsicSize(); w != 0 || h != 20 {
		t.Errorf("empty text = %dx%d, want 0x20", w, h)
	}
}

func TestPlainText_RoundsUp(t *testing.T) {
	pt := newPlainText()
	pt.SetFont(monoFont{charW: 3.3, lineH: 12.2})
	pt.SetText("abc")
	if w, h := pt.IntrinsicSize(); w != 10 || h != 13 {
		t.Errorf("IntrinsicSize = %dx%d, want 10x13", w, h)
	}
}

func TestWrappedText_Prepare(t *testing.T) {
	wt := newWrappedText()
	wt.SetFont(testFont)
	wt.SetText("aaa bbb ccc")

	if w, h := wt.IntrinsicSize(); w != 110 || h != 20 {
		t.Fatalf("before layout = %dx%d, want 110x20", w, h)
	}
	if !wt.Prepare(70) {
		t.Fatal("first Prepare should lay out")
	}
	if !slices.Equal(wt.Lines(), []string{"aaa bbb", "ccc"}) {
		t.Errorf("Lines = %q", wt.Lines())
	}
	if w, h := wt.IntrinsicSize(); w != 110 || h != 40 {
		t.Errorf("after layout = %dx%d, want 110x40", w, h)
	}
	if wt.Prepare(70) {
		t.Error("second Prepare at the same width should not lay out")
	}
	if !wt.Prepare(200) {
		t.Error("Prepare at a new width should lay out")
	}
	if w, h := wt.IntrinsicSize(); w != 110 || h != 20 {
		t.Errorf("wide layout = %dx%d, want 110x20", w, h)
	}
}

func TestWrappedText_Invalidation(t *testing.T) {
	wt := newWrappedText()
	wt.SetFont(testFont)
	wt.SetText("aaa bbb ccc")
	wt.Prepare(70)

	wt.SetText("aaa bbb ccc")
	if _, h := wt.IntrinsicSize(); h != 40 {
		t.Errorf("same text kept layout? height = %d, want 40", h)
	}

	wt.SetText("aaa bbb ccc ddd")
	if _, h := wt.IntrinsicSize(); h != 20 {
		t.Errorf("new text height = %d, want one line until prepared", h)
	}
	wt.Prepare(70)

	wt.SetFont(monoFont{charW: 5, lineH: 10})
	if _, h := wt.IntrinsicSize(); h != 10 {
		t.Errorf("new font height = %d, want 10", h)
	}
	if !wt.Prepare(70) {
		t.Error("Prepare after font change should lay out")
	}
}

func TestWrappedText_EmptyNeverPrepares(t *testing.T) {
	wt := newWrappedText()
	wt.SetFont(testFont)
	if wt.Prepare(100) {
		t.Error("empty text should not lay out")
	}
}

func TestApplyDelegate(t *testing.T) {
	if got := applyDelegate(nil, "keep"); got != "keep" {
		t.Errorf("nil delegate = %q", got)
	}
	up := TextDelegateFunc(strings.ToUpper)
	if got := applyDelegate(up, "loud"); got != "LOUD" {
		t.Errorf("delegate = %q", got)
	}
}

func TestResizeFont(t *testing.T) {
	if got := resizeFont(testFont, 30); got != Font(testFont) {
		t.Error("fonts without WithSize should pass through")
	}
	f := DefaultFont(15)
	resized := resizeFont(f, 30).(*TTFFont)
	if resized.Size() != 30 {
		t.Errorf("Size = %v, want 30", resized.Size())
	}
	if same := f.WithSize(15); same != Font(f) {
		t.Error("WithSize at the same size should return the receiver")
	}
}

func TestDefaultFont_Metrics(t *testing.T) {
	f := DefaultFont(20)
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight = %v", f.LineHeight())
	}
	w1, _ := f.MeasureString("a")
	w2, _ := f.MeasureString("aaaa")
	if w1 <= 0 || w2 <= w1 {
		t.Errorf("widths %v, %v not increasing", w1, w2)
	}
	if f.Face() == nil {
		t.Error("Face() = nil")
	}
}

func TestLoadTTFFont_Invalid(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a font"), 12); err == nil {
		t.Error("expected error for invalid data")
	}
}
