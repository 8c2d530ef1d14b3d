package output

import (
	"strings"

	"github.com/fatih/color"
)

// Style is a set of visual treatments applied to one span of text.
type Style uint16

// Plain applies no treatment.
const Plain Style = 0

const (
	Bold Style = 1 << iota
	Dim
	Underline
	Red
	Green
	Yellow
	OnRed
	OnYellow
	OnBlack
)

var styleNames = []struct {
	style Style
	name  string
	attr  color.Attribute
}{
	{Bold, "bold", color.Bold},
	{Dim, "dim", color.Faint},
	{Underline, "underline", color.Underline},
	{Red, "red", color.FgRed},
	{Green, "green", color.FgGreen},
	{Yellow, "yellow", color.FgYellow},
	{OnRed, "on-red", color.BgRed},
	{OnYellow, "on-yellow", color.BgYellow},
	{OnBlack, "on-black", color.BgBlack},
}

// Has reports whether every treatment in other is part of s.
func (s Style) Has(other Style) bool {
	return s&other == other
}

// With returns s with other layered on top.
func (s Style) With(other Style) Style {
	return s | other
}

// String lists the treatments joined by '+', or "plain".
func (s Style) String() string {
	if s == Plain {
		return "plain"
	}
	names := make([]string, 0, 3)
	for _, n := range styleNames {
		if s.Has(n.style) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "+")
}

func (s Style) attributes() []color.Attribute {
	attrs := make([]color.Attribute, 0, 3)
	for _, n := range styleNames {
		if s.Has(n.style) {
			attrs = append(attrs, n.attr)
		}
	}
	return attrs
}
