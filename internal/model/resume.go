package model

// Go models that match resume.schema.json, the body accepted by
// POST /api/generate.

// Sections holds the three free-text sections of the form.
type Sections struct {
	About           string `json:"About"`
	SoftSkills      string `json:"Soft Skills"`
	Differentiators string `json:"Differentiators"`
}

type Experience struct {
	Company     string   `json:"company"`
	Title       string   `json:"title"`
	StartDate   DatePair `json:"startDate"`
	EndDate     EndDate  `json:"endDate"`
	Description string   `json:"description"`
	IsCurrent   bool     `json:"isCurrent"`
}

type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	StartDate   DatePair `json:"startDate"`
	EndDate     EndDate  `json:"endDate"`
	Description string   `json:"description,omitempty"`
}

// Skills maps category -> subcategory -> selected labels, in selection order.
type Skills map[string]map[string][]string

type ResumeRecord struct {
	Name             string       `json:"name"`
	Title            string       `json:"title"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	PhoneIsWhatsapp  bool         `json:"phoneIsWhatsapp"`
	LinkedinUsername string       `json:"linkedinUsername"`
	GithubUsername   string       `json:"githubUsername"`
	HasLinkedin      bool         `json:"hasLinkedin"`
	HasGithub        bool         `json:"hasGithub"`
	Sections         Sections     `json:"sections"`
	Experience       []Experience `json:"experience"`
	Education        []Education  `json:"education"`
	Skills           Skills       `json:"skills"`
}

// Clone returns a deep copy of r. Slices and the skills mapping of the copy
// share no memory with r.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	if r.Experience != nil {
		out.Experience = append([]Experience(nil), r.Experience...)
	}
	if r.Education != nil {
		out.Education = append([]Education(nil), r.Education...)
	}
	out.Skills = r.Skills.Clone()
	return out
}

func (s Skills) Clone() Skills {
	if s == nil {
		return nil
	}
	out := make(Skills, len(s))
	for cat, subs := range s {
		if subs == nil {
			out[cat] = nil
			continue
		}
		m := make(map[string][]string, len(subs))
		for sub, labels := range subs {
			if labels == nil {
				m[sub] = nil
				continue
			}
			m[sub] = append([]string{}, labels...)
		}
		out[cat] = m
	}
	return out
}

// Selected returns the labels selected under category/subcategory. Missing
// levels read as empty.
func (s Skills) Selected(category, subcategory string) []string {
	if s == nil {
		return nil
	}
	return s[category][subcategory]
}

// NewExperience returns a blank experience entry.
func NewExperience() Experience {
	return Experience{}
}

// NewEducation returns a blank education entry.
func NewEducation() Education {
	return Education{}
}

// Empty returns the record a fresh form starts with: every field blank, one
// blank experience and education entry, and a skills mapping with every
// taxonomy subcategory initialized to an empty selection.
func Empty() ResumeRecord {
	return ResumeRecord{
		Experience: []Experience{NewExperience()},
		Education:  []Education{NewEducation()},
		Skills:     SkillTaxonomy().EmptySelection(),
	}
}
