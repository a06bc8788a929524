// FILE: internal/render/colors.go
package render

// Theme names a board color palette.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeBrown   Theme = "brown"
	ThemeGreen   Theme = "green"
	ThemeGray    Theme = "gray"
	ThemeMono    Theme = "mono"
)

// palette holds the ANSI selectors for one theme. Foreground tones are
// chosen so both sides stay readable on either background.
type palette struct {
	lightBg string
	darkBg  string
	whiteFg string
	blackFg string
	reset   string
}

var palettes = map[Theme]palette{
	ThemeClassic: {
		lightBg: "\033[48;5;249m",
		darkBg:  "\033[48;5;246m",
		whiteFg: "\033[38;5;231m",
		blackFg: "\033[38;5;0m",
		reset:   "\033[0m",
	},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		whiteFg: "\033[97m",
		blackFg: "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		whiteFg: "\033[97m",
		blackFg: "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		whiteFg: "\033[97m",
		blackFg: "\033[30m",
		reset:   "\033[0m",
	},
	// Mono emits no escape sequences at all, for pipes and dumb terminals.
	ThemeMono: {},
}

// Valid reports whether t names a known theme.
func (t Theme) Valid() bool {
	_, ok := palettes[t]
	return ok
}

// Themes lists the known theme names for help and error text.
func Themes() []string {
	return []string{
		string(ThemeClassic),
		string(ThemeBrown),
		string(ThemeGreen),
		string(ThemeGray),
		string(ThemeMono),
	}
}
