package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	IdentColor ColorAttr = iota
	ValueColor
	BracketColor
	ParenColor
	NodeColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			IdentColor:   color.RGB(196, 96, 16).SprintfFunc(),
			ValueColor:   color.RGB(128, 216, 236).SprintfFunc(),
			BracketColor: color.RGB(74, 92, 138).SprintfFunc(),
			ParenColor:   color.RGB(255, 0, 196).SprintfFunc(),
			NodeColor:    color.GreenString,
		},
	}
}

func colorDefault(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return color.WhiteString(s, args...)
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	f, ok := c.Map[attr]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
