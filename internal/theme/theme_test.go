package theme

import (
	"image/color"
	"testing"
)

func TestParse_Selectors(t *testing.T) {
	sheet, err := Parse(`
/* comment */
.a { color: #fff; }
#b, .c.d { width: 10px }
div .a { color: #000 }
@media screen { .a { color: #111 } }
`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		name    string
		id      string
		classes []string
		key     string
		want    string
	}{
		{"class", "", []string{"a"}, "color", "#fff"},
		{"id", "b", nil, "width", "10px"},
		{"compound", "", []string{"d", "c"}, "width", "10px"},
		{"partial compound", "", []string{"c"}, "width", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sheet.Match(tt.id, tt.classes...)[tt.key]
			if got != tt.want {
				t.Errorf("Match(%q, %v)[%q] = %q, want %q", tt.id, tt.classes, tt.key, got, tt.want)
			}
		})
	}
}

func TestSheet_LaterRuleWins(t *testing.T) {
	sheet, err := Parse(`.cube { border: #111111; } .cube.wireframe { border: #eeeeee; }`)
	if err != nil {
		t.Fatal(err)
	}
	if got := sheet.Resolve("", "cube").Border; got != (color.RGBA{0x11, 0x11, 0x11, 0xff}) {
		t.Errorf("cube border = %v", got)
	}
	if got := sheet.Resolve("", "cube", "wireframe").Border; got != (color.RGBA{0xee, 0xee, 0xee, 0xff}) {
		t.Errorf("wireframe border = %v", got)
	}
}

func TestSheet_NilMatch(t *testing.T) {
	var s *Sheet
	if got := s.Match("x", "y"); len(got) != 0 {
		t.Errorf("nil sheet Match() = %v, want empty", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}, true},
		{"#0f0", color.RGBA{0, 255, 0, 255}, true},
		{"transparent", color.RGBA{}, true},
		{"red", color.RGBA{0, 0, 0, 255}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCompute(t *testing.T) {
	c := Compute(map[string]string{
		"background": "#102030",
		"width":      "280px",
		"left":       "100%",
		"top":        "12",
		"padding":    "-3px",
		"font-size":  "16px",
		"unknown":    "x",
	})
	if c.Background != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("Background = %v", c.Background)
	}
	if c.Width != 280 || c.LeftPct != 100 || c.Top != 12 || c.TopPct != -1 {
		t.Errorf("geometry = %+v", c)
	}
	if c.Padding != 4 {
		t.Errorf("Padding = %d, want default 4 for negative input", c.Padding)
	}
	if c.FontSize != 16 {
		t.Errorf("FontSize = %d, want 16", c.FontSize)
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	if len(s.Rules) == 0 {
		t.Fatal("built-in theme has no rules")
	}
	if p := s.Resolve("panel"); p.Width <= 0 {
		t.Errorf("panel width = %d, want > 0", p.Width)
	}
	if row := s.Resolve("", "row"); row.Height <= 0 {
		t.Errorf("row height = %d, want > 0", row.Height)
	}
	if !s.Resolve("", "cube", "wireframe").HasBorder {
		t.Error("wireframe edges have no border colour")
	}
}
