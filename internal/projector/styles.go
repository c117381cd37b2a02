package projector

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Style names referenced by projected blocks.
const (
	StyleHeader               = "header"
	StyleSubheader            = "subheader"
	StyleSectionHeader        = "sectionHeader"
	StyleContactInfo          = "contactInfo"
	StyleExperienceCompany    = "experienceCompany"
	StyleExperienceTitle      = "experienceTitle"
	StyleExperiencePeriod     = "experiencePeriod"
	StyleExperienceDesc       = "experienceDescription"
	StyleEducationInstitution = "educationInstitution"
	StyleEducationDegree      = "educationDegree"
	StyleEducationPeriod      = "educationPeriod"
	StyleEducationDesc        = "educationDescription"
	StyleSkillCategory        = "skillCategory"
	StyleSkillSubcategory     = "skillSubcategoryText"
)

//go:embed styles.yaml
var stylesYAML []byte

// Style is a named text style. Zero values mean "inherit the default".
type Style struct {
	FontSize     float64
	Bold         bool
	Italics      bool
	Color        string
	Margin       *Margin
	MarginBottom float64
}

// StyleSheet maps style names to styles.
type StyleSheet map[string]Style

func (s StyleSheet) Clone() StyleSheet {
	out := make(StyleSheet, len(s))
	for name, st := range s {
		if st.Margin != nil {
			m := *st.Margin
			st.Margin = &m
		}
		out[name] = st
	}
	return out
}

type styleFile struct {
	Default Style
	Styles  StyleSheet
}

type rawStyle struct {
	FontSize     float64   `yaml:"fontSize"`
	Bold         bool      `yaml:"bold"`
	Italics      bool      `yaml:"italics"`
	Color        string    `yaml:"color"`
	Margin       []float64 `yaml:"margin"`
	MarginBottom float64   `yaml:"marginBottom"`
}

func (r rawStyle) style(name string) (Style, error) {
	st := Style{
		FontSize:     r.FontSize,
		Bold:         r.Bold,
		Italics:      r.Italics,
		Color:        r.Color,
		MarginBottom: r.MarginBottom,
	}
	if r.Margin != nil {
		if len(r.Margin) != 4 {
			return st, fmt.Errorf("style %q: margin needs 4 values, got %d", name, len(r.Margin))
		}
		m := Margin{r.Margin[0], r.Margin[1], r.Margin[2], r.Margin[3]}
		st.Margin = &m
	}
	return st, nil
}

var sharedStyles = mustParseStyles(stylesYAML)

// SharedStyles returns a copy of the style dictionary used for every
// document, and the default style.
func SharedStyles() (StyleSheet, Style) {
	return sharedStyles.Styles.Clone(), sharedStyles.Default
}

func mustParseStyles(b []byte) styleFile {
	f, err := parseStyles(b)
	if err != nil {
		panic(err)
	}
	return f
}

func parseStyles(b []byte) (styleFile, error) {
	var raw struct {
		Default rawStyle            `yaml:"default"`
		Styles  map[string]rawStyle `yaml:"styles"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return styleFile{}, fmt.Errorf("styles: %w", err)
	}
	def, err := raw.Default.style("default")
	if err != nil {
		return styleFile{}, err
	}
	out := styleFile{Default: def, Styles: make(StyleSheet, len(raw.Styles))}
	for name, r := range raw.Styles {
		st, err := r.style(name)
		if err != nil {
			return styleFile{}, err
		}
		out.Styles[name] = st
	}
	return out, nil
}
