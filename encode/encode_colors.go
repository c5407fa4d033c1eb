package encode

import (
	"github.com/dpranke/floyd-datafile/go-floyd/ir"

	"github.com/fatih/color"
)

// Colorable names a place in the output that can be colored: the values
// of a type, its object keys or its punctuation.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

// Colors is a palette. Places missing from Map are written as is.
type Colors struct {
	Map map[Colorable]*color.Color
}

// NewColors returns the default terminal palette.
func NewColors() *Colors {
	punct := color.New(color.Faint)
	return &Colors{Map: map[Colorable]*color.Color{
		{ir.NullType, ValueColor}:   color.New(color.FgMagenta),
		{ir.BoolType, ValueColor}:   color.New(color.FgMagenta, color.Bold),
		{ir.NumberType, ValueColor}: color.New(color.FgCyan),
		{ir.StringType, ValueColor}: color.New(color.FgGreen),
		{ir.ObjectType, FieldColor}: color.New(color.FgBlue, color.Bold),
		{ir.ObjectType, SepColor}:   punct,
		{ir.ArrayType, SepColor}:    punct,
	}}
}

// Set replaces the color used for a place.
func (c *Colors) Set(t ir.Type, a ColorAttr, col *color.Color) {
	c.Map[Colorable{Type: t, Attr: a}] = col
}

// Color wraps s in the escape sequences for the given place. Sprint does
// not interpret s, so format verbs in the text survive.
func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	col := c.Map[Colorable{Type: t, Attr: a}]
	if col == nil {
		return s
	}
	return col.Sprint(s)
}
