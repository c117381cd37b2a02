package projector

import (
	"strings"

	"resume-builder/internal/model"
)

// Section headers as printed in the document.
const (
	HeaderAbout           = "About"
	HeaderSkills          = "Technical Skills"
	HeaderExperience      = "Professional Experience"
	HeaderEducation       = "Education"
	HeaderSoftSkills      = "Soft Skills"
	HeaderDifferentiators = "Differentiators"
)

var (
	noMargin          = Margin{0, 0, 0, 0}
	skillStackMargin  = Margin{10, 0, 0, 5}
	descriptionMargin = Margin{0, 5, 0, 10}
)

// Project maps a record to the ordered blocks of its document. Missing
// optional data is omitted, never an error; only strictly empty strings
// count as missing.
func Project(rec model.ResumeRecord) []Block {
	var out []Block

	if rec.Name != "" {
		out = append(out, text(rec.Name, StyleHeader))
	}
	if rec.Title != "" {
		out = append(out, text(rec.Title, StyleSubheader))
	}
	if contact := contactBlocks(rec); len(contact) > 0 {
		out = append(out, stack(contact, noMargin))
	}

	out = appendSection(out, HeaderAbout, rec.Sections.About)

	if skills := skillBlocks(rec.Skills); len(skills) > 0 {
		out = append(out, text(HeaderSkills, StyleSectionHeader))
		out = append(out, skills...)
	}

	var exp []Block
	for _, e := range rec.Experience {
		end := e.EndDate
		if e.IsCurrent {
			end = model.CurrentEnd()
		}
		exp = append(exp, entry{
			heading:     e.Company,
			subheading:  e.Title,
			start:       e.StartDate,
			end:         end,
			description: e.Description,
		}.blocks(experienceStyles)...)
	}
	if len(exp) > 0 {
		out = append(out, text(HeaderExperience, StyleSectionHeader))
		out = append(out, exp...)
	}

	var edu []Block
	for _, e := range rec.Education {
		edu = append(edu, entry{
			heading:     e.Institution,
			subheading:  e.Degree,
			start:       e.StartDate,
			end:         e.EndDate,
			description: e.Description,
		}.blocks(educationStyles)...)
	}
	if len(edu) > 0 {
		out = append(out, text(HeaderEducation, StyleSectionHeader))
		out = append(out, edu...)
	}

	out = appendSection(out, HeaderSoftSkills, rec.Sections.SoftSkills)
	out = appendSection(out, HeaderDifferentiators, rec.Sections.Differentiators)
	return out
}

func appendSection(out []Block, header, body string) []Block {
	if body == "" {
		return out
	}
	return append(out, text(header, StyleSectionHeader), Block{Text: body})
}

func contactBlocks(rec model.ResumeRecord) []Block {
	var out []Block
	if rec.Email != "" {
		out = append(out, link(rec.Email, StyleContactInfo, "mailto:"+rec.Email))
	}
	if rec.Phone != "" {
		if rec.PhoneIsWhatsapp {
			out = append(out, link(rec.Phone, StyleContactInfo, WhatsappLink(rec.Phone)))
		} else {
			out = append(out, text(rec.Phone, StyleContactInfo))
		}
	}
	if rec.HasLinkedin && rec.LinkedinUsername != "" {
		p := "linkedin.com/in/" + rec.LinkedinUsername
		out = append(out, link(p, StyleContactInfo, "https://"+p))
	}
	if rec.HasGithub && rec.GithubUsername != "" {
		p := "github.com/" + rec.GithubUsername
		out = append(out, link(p, StyleContactInfo, "https://"+p))
	}
	return out
}

// WhatsappLink returns the wa.me deep link for a phone number as typed.
// The link carries digits only; spaces, "+", "-" and parentheses are dropped.
func WhatsappLink(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return "https://wa.me/" + digits
}

// skillBlocks walks the taxonomy in declared order; selections under names
// the taxonomy does not know are ignored.
func skillBlocks(skills model.Skills) []Block {
	var out []Block
	tax := model.SkillTaxonomy()
	for _, cat := range tax.CategoryNames() {
		var lines []Block
		for _, sub := range tax.SubcategoryNames(cat) {
			labels := skills.Selected(cat, sub)
			if len(labels) == 0 {
				continue
			}
			lines = append(lines, text(sub+": "+strings.Join(labels, ", "), StyleSkillSubcategory))
		}
		if len(lines) == 0 {
			continue
		}
		out = append(out, text(cat, StyleSkillCategory), stack(lines, skillStackMargin))
	}
	return out
}

type entryStyles struct {
	heading, subheading, period, description string
}

var (
	experienceStyles = entryStyles{StyleExperienceCompany, StyleExperienceTitle, StyleExperiencePeriod, StyleExperienceDesc}
	educationStyles  = entryStyles{StyleEducationInstitution, StyleEducationDegree, StyleEducationPeriod, StyleEducationDesc}
)

// entry is the shape shared by experience and education items.
type entry struct {
	heading, subheading string
	start               model.DatePair
	end                 model.EndDate
	description         string
}

// blocks returns nil when the entry has nothing to show.
func (e entry) blocks(st entryStyles) []Block {
	var out []Block
	if e.heading != "" {
		out = append(out, text(e.heading, st.heading))
	}
	if e.subheading != "" {
		out = append(out, text(e.subheading, st.subheading))
	}
	if p := Period(e.start, e.end); p != "" {
		out = append(out, text(p, st.period))
	}
	if e.description != "" {
		m := descriptionMargin
		out = append(out, Block{Text: e.description, Style: st.description, Margin: &m})
	}
	return out
}

// Period formats "MM/YYYY - MM/YYYY", "MM/YYYY - Current", or a single
// date when only one side is valid. It is empty when neither is.
func Period(start model.DatePair, end model.EndDate) string {
	var b strings.Builder
	if start.Valid() {
		b.WriteString(start.String())
	}
	if start.Valid() && end.Valid() {
		b.WriteString(" - ")
	}
	if end.Valid() {
		b.WriteString(end.String())
	}
	return b.String()
}
