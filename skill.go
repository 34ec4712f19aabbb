package lumen

import (
	"errors"
	"fmt"
	"strings"
)

// Icon identifies a skill glyph. Hosts map icons to whatever artwork they
// render; the layout never looks inside.
type Icon uint8

const (
	IconNone Icon = iota
	IconCode
	IconJavaScript
	IconTypeScript
	IconPython
	IconJava
	IconHTML
	IconCSS
	IconC
	IconCPlusPlus
	IconReact
	IconNode
	IconExpress
	IconMongoDB
	IconPostgreSQL
	IconGit
	IconDocker
	IconGitHub
	iconCount
)

var iconSlugs = [iconCount]string{
	IconNone:       "none",
	IconCode:       "code",
	IconJavaScript: "javascript",
	IconTypeScript: "typescript",
	IconPython:     "python",
	IconJava:       "java",
	IconHTML:       "html",
	IconCSS:        "css",
	IconC:          "c",
	IconCPlusPlus:  "cplusplus",
	IconReact:      "react",
	IconNode:       "nodejs",
	IconExpress:    "express",
	IconMongoDB:    "mongodb",
	IconPostgreSQL: "postgresql",
	IconGit:        "git",
	IconDocker:     "docker",
	IconGitHub:     "github",
}

// ErrUnknownIcon is returned when an icon slug is not recognized.
var ErrUnknownIcon = errors.New("lumen: unknown icon")

func (i Icon) String() string {
	if i < iconCount {
		return iconSlugs[i]
	}
	return fmt.Sprintf("Icon(%d)", uint8(i))
}

// Monogram returns a short label for hosts without icon artwork.
func (i Icon) Monogram() string {
	switch i {
	case IconNone:
		return ""
	case IconJavaScript:
		return "JS"
	case IconTypeScript:
		return "TS"
	case IconPython:
		return "PY"
	case IconCPlusPlus:
		return "C++"
	case IconNode:
		return "NODE"
	case IconPostgreSQL:
		return "PG"
	case IconMongoDB:
		return "MDB"
	case IconGitHub:
		return "GH"
	case IconCode:
		return "</>"
	}
	return strings.ToUpper(i.String())
}

// ParseIcon resolves a slug such as "javascript" or "nodejs".
// Matching is case-insensitive.
func ParseIcon(s string) (Icon, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, slug := range iconSlugs {
		if slug == s {
			return Icon(i), nil
		}
	}
	return IconNone, fmt.Errorf("%w: %q", ErrUnknownIcon, s)
}

// MarshalText implements encoding.TextMarshaler.
func (i Icon) MarshalText() ([]byte, error) {
	if i >= iconCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIcon, uint8(i))
	}
	return []byte(iconSlugs[i]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Icon) UnmarshalText(b []byte) error {
	v, err := ParseIcon(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// Skill is one labeled item in the skill graph. Name is its identity; Color is
// an opaque token the presentation layer resolves (a CSS-style color here).
type Skill struct {
	Name  string `toml:"name" yaml:"name" json:"name"`
	Color string `toml:"color" yaml:"color" json:"color,omitempty"`
	Icon  Icon   `toml:"icon" yaml:"icon" json:"icon"`
}

// DefaultLanguages is the left-hand group of the portfolio skill graph.
var DefaultLanguages = []Skill{
	{Name: "JavaScript", Icon: IconJavaScript, Color: "#F7DF1E"},
	{Name: "TypeScript", Icon: IconTypeScript, Color: "#3178C6"},
	{Name: "Python", Icon: IconPython, Color: "#3776AB"},
	{Name: "Java", Icon: IconJava, Color: "#007396"},
	{Name: "HTML", Icon: IconHTML, Color: "#E34F26"},
	{Name: "CSS", Icon: IconCSS, Color: "#1572B6"},
	{Name: "C", Icon: IconC, Color: "#00599C"},
}

// DefaultTools is the right-hand group of the portfolio skill graph.
var DefaultTools = []Skill{
	{Name: "React", Icon: IconReact, Color: "#61DAFB"},
	{Name: "Node.js", Icon: IconNode, Color: "#339933"},
	{Name: "Express", Icon: IconExpress, Color: "#FFFFFF"},
	{Name: "MongoDB", Icon: IconMongoDB, Color: "#47A248"},
	{Name: "PostgreSQL", Icon: IconPostgreSQL, Color: "#4169E1"},
	{Name: "Git", Icon: IconGit, Color: "#F05032"},
	{Name: "Docker", Icon: IconDocker, Color: "#2496ED"},
}
