// Package theme provides the lipgloss style palette used for leveled
// message output. Themes are loaded from embedded YAML files with a
// hardcoded fallback, so a malformed theme file can never leave the
// toolkit without styles.
package theme

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"termsay/internal/logger"
)

// DefaultThemeData contains the embedded default theme YAML data.
//
//go:embed themes/default.yaml
var DefaultThemeData []byte

// PlainThemeData contains the embedded plain (colorless) theme YAML data.
//
//go:embed themes/plain.yaml
var PlainThemeData []byte

// themeFile mirrors the on-disk YAML layout of a theme.
type themeFile struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Palette     map[string]string `yaml:"palette"`
	Levels      map[string]string `yaml:"levels"`
	Accent      string            `yaml:"accent,omitempty"`
}

// Theme maps named colors and message levels to lipgloss styles.
type Theme struct {
	Name string

	palette map[string]lipgloss.Style
	levels  map[string]lipgloss.Style
	accent  lipgloss.Style
}

// Load returns the named theme. Unknown names and parse failures fall
// back to a minimal built-in theme rather than erroring.
func Load(name string) *Theme {
	var data []byte
	switch name {
	case "", "default":
		data = DefaultThemeData
	case "plain":
		data = PlainThemeData
	default:
		logger.Warn("unknown theme, using default", "theme", name)
		data = DefaultThemeData
	}

	theme, err := parse(data)
	if err != nil {
		logger.Error("failed to load theme", "theme", name, "error", err)
		return fallback(name)
	}
	return theme
}

// Default returns the standard ANSI theme.
func Default() *Theme {
	return Load("default")
}

// Color looks up a named palette color.
func (t *Theme) Color(name string) (lipgloss.Style, bool) {
	style, ok := t.palette[name]
	return style, ok
}

// Level looks up the default style for a message level.
func (t *Theme) Level(level string) (lipgloss.Style, bool) {
	style, ok := t.levels[level]
	return style, ok
}

// Accent returns the style used for emphasized decorative text, such as
// header boxes.
func (t *Theme) Accent() lipgloss.Style {
	return t.accent
}

// ColorNames returns the palette's color names in sorted order, for
// option validation and usage text.
func (t *Theme) ColorNames() []string {
	names := make([]string, 0, len(t.palette))
	for name := range t.palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parse(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	theme := &Theme{
		Name:    file.Name,
		palette: make(map[string]lipgloss.Style, len(file.Palette)),
		levels:  make(map[string]lipgloss.Style, len(file.Levels)),
	}
	for name, code := range file.Palette {
		theme.palette[name] = colorStyle(code)
	}
	for level, colorName := range file.Levels {
		code, ok := file.Palette[colorName]
		if !ok {
			return nil, fmt.Errorf("level %q references unknown palette color %q", level, colorName)
		}
		theme.levels[level] = colorStyle(code)
	}
	if file.Accent != "" {
		code, ok := file.Palette[file.Accent]
		if !ok {
			return nil, fmt.Errorf("accent references unknown palette color %q", file.Accent)
		}
		theme.accent = colorStyle(code).Bold(true)
	}
	return theme, nil
}

func colorStyle(code string) lipgloss.Style {
	if code == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// fallback builds a colorless theme that still knows the standard palette
// names, so option validation keeps working when YAML parsing fails.
func fallback(name string) *Theme {
	theme := &Theme{
		Name:    name,
		palette: make(map[string]lipgloss.Style),
		levels:  make(map[string]lipgloss.Style),
	}
	for _, colorName := range []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white", "gray"} {
		theme.palette[colorName] = lipgloss.NewStyle()
	}
	for _, level := range []string{"info", "success", "warning", "error"} {
		theme.levels[level] = lipgloss.NewStyle()
	}
	return theme
}
