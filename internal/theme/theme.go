package theme

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

//go:embed theme.css
var defaultCSS string

// Default returns the built-in stylesheet (cube edges, control panel, HUD, console).
func Default() *Sheet {
	s, err := Parse(defaultCSS)
	if err != nil {
		panic("theme: built-in stylesheet: " + err.Error())
	}
	return s
}

// Selector is a compound simple selector: an optional #id plus any number of .classes.
type Selector struct {
	ID      string
	Classes []string
}

// Rule is one ruleset with its raw declaration values.
type Rule struct {
	Selectors []Selector
	Props     map[string]string
}

// Sheet is an ordered list of rules; later rules override earlier ones.
type Sheet struct {
	Rules []Rule
}

// Parse reads a stylesheet. Only class and id selectors are kept; rulesets using
// anything else (type selectors, combinators, pseudo-classes) are skipped, as are at-rules.
func Parse(src string) (*Sheet, error) {
	p := css.NewParser(parse.NewInputString(src), false)
	sheet := &Sheet{}
	var cur *Rule
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() == io.EOF {
				return sheet, nil
			}
			return nil, fmt.Errorf("theme: %w", p.Err())
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			atDepth--
		case css.BeginRulesetGrammar:
			sels, ok := parseSelectors(p.Values())
			if !ok || atDepth > 0 {
				cur = nil
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selectors: sels, Props: make(map[string]string)})
			cur = &sheet.Rules[len(sheet.Rules)-1]
		case css.EndRulesetGrammar:
			cur = nil
		case css.DeclarationGrammar:
			if cur == nil {
				continue
			}
			cur.Props[strings.ToLower(string(data))] = joinValues(p.Values())
		}
	}
}

func joinValues(vals []css.Token) string {
	var b strings.Builder
	for _, v := range vals {
		b.Write(v.Data)
	}
	return strings.TrimSpace(b.String())
}

// parseSelectors splits a selector list on commas. ok is false if any member uses
// syntax other than #id and .class.
func parseSelectors(vals []css.Token) ([]Selector, bool) {
	var raw strings.Builder
	for _, v := range vals {
		raw.Write(v.Data)
	}
	var out []Selector
	for _, part := range strings.Split(raw.String(), ",") {
		sel, ok := parseSelector(strings.TrimSpace(part))
		if !ok {
			return nil, false
		}
		out = append(out, sel)
	}
	return out, len(out) > 0
}

func parseSelector(s string) (Selector, bool) {
	var sel Selector
	if s == "" {
		return sel, false
	}
	for s != "" {
		prefix := s[0]
		if prefix != '.' && prefix != '#' {
			return sel, false
		}
		s = s[1:]
		end := strings.IndexAny(s, ".#")
		if end == -1 {
			end = len(s)
		}
		name := s[:end]
		s = s[end:]
		if !validName(name) {
			return sel, false
		}
		if prefix == '#' {
			if sel.ID != "" {
				return sel, false
			}
			sel.ID = name
		} else {
			sel.Classes = append(sel.Classes, name)
		}
	}
	return sel, true
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// Matches reports whether the selector applies to an element with the given id and classes.
func (sel Selector) Matches(id string, classes []string) bool {
	if sel.ID != "" && sel.ID != id {
		return false
	}
	for _, want := range sel.Classes {
		found := false
		for _, c := range classes {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Match merges the properties of every rule that applies, in source order.
func (s *Sheet) Match(id string, classes ...string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, rule := range s.Rules {
		for _, sel := range rule.Selectors {
			if sel.Matches(id, classes) {
				for k, v := range rule.Props {
					merged[k] = v
				}
				break
			}
		}
	}
	return merged
}

// Resolve matches and computes the style for an element.
func (s *Sheet) Resolve(id string, classes ...string) Computed {
	return Compute(s.Match(id, classes...))
}
