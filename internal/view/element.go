package view

import "sort"

const (
	// WireframeClass is the style class toggled by the wireframe setting.
	WireframeClass = "wireframe"
	// Transparent is the background used while in wireframe mode.
	Transparent = "transparent"
)

// Element is the render target whose style the controller mutates.
type Element interface {
	SetTransform(t Transform)
	SetDisplay(shown bool)
	SetBackground(color string)
	SetClass(name string, on bool)
}

// Style is an Element that records the applied style. Hosts draw from it every frame.
type Style struct {
	Transform  Transform
	Hidden     bool
	Background string
	classes    map[string]bool
}

func (s *Style) SetTransform(t Transform) { s.Transform = t }

func (s *Style) SetDisplay(shown bool) { s.Hidden = !shown }

func (s *Style) SetBackground(color string) { s.Background = color }

func (s *Style) SetClass(name string, on bool) {
	if !on {
		delete(s.classes, name)
		return
	}
	if s.classes == nil {
		s.classes = make(map[string]bool)
	}
	s.classes[name] = true
}

// HasClass reports whether name is in the class list.
func (s *Style) HasClass(name string) bool {
	return s.classes[name]
}

// Classes returns the class list in sorted order.
func (s *Style) Classes() []string {
	out := make([]string, 0, len(s.classes))
	for c := range s.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Display returns the CSS display value: "none" when hidden, "block" otherwise.
func (s *Style) Display() string {
	if s.Hidden {
		return "none"
	}
	return "block"
}
