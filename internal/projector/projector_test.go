package projector

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatten lists every text block depth first as "style|text".
func flatten(blocks []Block) []string {
	var out []string
	Walk(blocks, func(b Block) {
		if b.IsStack() {
			return
		}
		out = append(out, b.Style+"|"+b.Text)
	})
	return out
}

func contactStack(t *testing.T, blocks []Block) []Block {
	t.Helper()
	for _, b := range blocks {
		if b.IsStack() && len(b.Stack) > 0 && b.Stack[0].Style == StyleContactInfo {
			return b.Stack
		}
	}
	return nil
}

func TestProjectEmptyRecord(t *testing.T) {
	assert.Empty(t, Project(model.ResumeRecord{}))
	assert.Empty(t, Project(model.Empty()))
}

func TestProjectNameAndSkillScenario(t *testing.T) {
	rec := model.Empty()
	rec.Name = "Ana"
	rec.Skills["Frontend"]["Linguagens"] = []string{"TypeScript"}

	assert.Equal(t, []string{
		"header|Ana",
		"sectionHeader|Technical Skills",
		"skillCategory|Frontend",
		"skillSubcategoryText|Linguagens: TypeScript",
	}, flatten(Project(rec)))
}

func TestProjectSectionOrder(t *testing.T) {
	got := flatten(Project(model.Demo()))

	idx := func(s string) int {
		for i, v := range got {
			if v == s {
				return i
			}
		}
		t.Fatalf("%q not found in %v", s, got)
		return -1
	}
	order := []int{
		idx("header|Ana Souza"),
		idx("subheader|Desenvolvedora Full Stack"),
		idx("contactInfo|ana.souza@example.com"),
		idx("sectionHeader|About"),
		idx("sectionHeader|Technical Skills"),
		idx("sectionHeader|Professional Experience"),
		idx("sectionHeader|Education"),
		idx("sectionHeader|Soft Skills"),
		idx("sectionHeader|Differentiators"),
	}
	assert.IsIncreasing(t, order)
}

func TestProjectContact(t *testing.T) {
	t.Run("whatsapp link strips punctuation", func(t *testing.T) {
		rec := model.ResumeRecord{Phone: "+55 81 99993-4299", PhoneIsWhatsapp: true}
		c := contactStack(t, Project(rec))
		require.Len(t, c, 1)
		assert.Equal(t, "+55 81 99993-4299", c[0].Text)
		assert.Equal(t, "https://wa.me/5581999934299", c[0].Link)
	})

	t.Run("parentheses stripped", func(t *testing.T) {
		assert.Equal(t, "https://wa.me/5581999934299", WhatsappLink("+55 (81) 99993-4299"))
	})

	t.Run("leading plus dropped", func(t *testing.T) {
		assert.Equal(t, "https://wa.me/5581999934299", WhatsappLink("+5581999934299"))
		assert.Equal(t, "https://wa.me/5581999934299", WhatsappLink("5581999934299"))
	})

	t.Run("plain phone", func(t *testing.T) {
		rec := model.ResumeRecord{Phone: "+55 81 99993-4299"}
		c := contactStack(t, Project(rec))
		require.Len(t, c, 1)
		assert.Empty(t, c[0].Link)
	})

	t.Run("email link", func(t *testing.T) {
		rec := model.ResumeRecord{Email: "ana@example.com"}
		c := contactStack(t, Project(rec))
		require.Len(t, c, 1)
		assert.Equal(t, "mailto:ana@example.com", c[0].Link)
	})

	t.Run("linkedin gated by flag", func(t *testing.T) {
		rec := model.ResumeRecord{Email: "ana@example.com", LinkedinUsername: "ana"}
		for _, b := range contactStack(t, Project(rec)) {
			assert.NotContains(t, b.Text, "linkedin")
		}

		rec.HasLinkedin = true
		c := contactStack(t, Project(rec))
		require.Len(t, c, 2)
		assert.Equal(t, "linkedin.com/in/ana", c[1].Text)
		assert.Equal(t, "https://linkedin.com/in/ana", c[1].Link)
	})

	t.Run("github needs username", func(t *testing.T) {
		rec := model.ResumeRecord{HasGithub: true}
		assert.Empty(t, Project(rec))

		rec.GithubUsername = "ana"
		c := contactStack(t, Project(rec))
		require.Len(t, c, 1)
		assert.Equal(t, "github.com/ana", c[0].Text)
		assert.Equal(t, "https://github.com/ana", c[0].Link)
	})

	t.Run("contact order", func(t *testing.T) {
		rec := model.ResumeRecord{
			Email: "a@b.c", Phone: "1",
			HasLinkedin: true, LinkedinUsername: "l",
			HasGithub: true, GithubUsername: "g",
		}
		c := contactStack(t, Project(rec))
		require.Len(t, c, 4)
		assert.Equal(t, []string{"a@b.c", "1", "linkedin.com/in/l", "github.com/g"},
			[]string{c[0].Text, c[1].Text, c[2].Text, c[3].Text})
	})
}

func TestPeriod(t *testing.T) {
	start := model.DatePair{Month: "01", Year: "2020"}
	cases := []struct {
		name  string
		start model.DatePair
		end   model.EndDate
		want  string
	}{
		{"both", start, model.EndOf("06", "2022"), "01/2020 - 06/2022"},
		{"current", start, model.CurrentEnd(), "01/2020 - Current"},
		{"start only", start, model.EndDate{}, "01/2020"},
		{"end only", model.DatePair{}, model.EndOf("06", "2022"), "06/2022"},
		{"current only", model.DatePair{}, model.CurrentEnd(), "Current"},
		{"lone month", model.DatePair{Month: "01"}, model.EndOf("", "2022"), ""},
		{"neither", model.DatePair{}, model.EndDate{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Period(tc.start, tc.end))
		})
	}
}

func TestProjectExperience(t *testing.T) {
	t.Run("blank entries dropped with header", func(t *testing.T) {
		rec := model.ResumeRecord{Experience: []model.Experience{{}, {StartDate: model.DatePair{Month: "01"}}}}
		assert.Empty(t, Project(rec))
	})

	t.Run("is current wins over stored end date", func(t *testing.T) {
		rec := model.ResumeRecord{Experience: []model.Experience{{
			Company:   "Acme",
			StartDate: model.DatePair{Month: "03", Year: "2021"},
			EndDate:   model.EndOf("04", "2022"),
			IsCurrent: true,
		}}}
		assert.Equal(t, []string{
			"sectionHeader|Professional Experience",
			"experienceCompany|Acme",
			"experiencePeriod|03/2021 - Current",
		}, flatten(Project(rec)))
	})

	t.Run("full entry", func(t *testing.T) {
		rec := model.ResumeRecord{Experience: []model.Experience{
			{},
			{
				Company:     "Acme",
				Title:       "Engineer",
				StartDate:   model.DatePair{Month: "01", Year: "2019"},
				EndDate:     model.EndOf("02", "2021"),
				Description: "Built things",
			},
		}}
		blocks := Project(rec)
		assert.Equal(t, []string{
			"sectionHeader|Professional Experience",
			"experienceCompany|Acme",
			"experienceTitle|Engineer",
			"experiencePeriod|01/2019 - 02/2021",
			"experienceDescription|Built things",
		}, flatten(blocks))
		require.NotNil(t, blocks[len(blocks)-1].Margin)
		assert.Equal(t, Margin{0, 5, 0, 10}, *blocks[len(blocks)-1].Margin)
	})

	t.Run("description alone keeps entry", func(t *testing.T) {
		rec := model.ResumeRecord{Experience: []model.Experience{{Description: "Freelance"}}}
		assert.Equal(t, []string{
			"sectionHeader|Professional Experience",
			"experienceDescription|Freelance",
		}, flatten(Project(rec)))
	})
}

func TestProjectEducation(t *testing.T) {
	rec := model.ResumeRecord{Education: []model.Education{
		{Institution: "UFPE", Degree: "BSc", EndDate: model.CurrentEnd()},
		{StartDate: model.DatePair{Year: "2010"}},
		{Description: "Exchange program"},
	}}
	assert.Equal(t, []string{
		"sectionHeader|Education",
		"educationInstitution|UFPE",
		"educationDegree|BSc",
		"educationPeriod|Current",
		"educationDescription|Exchange program",
	}, flatten(Project(rec)))
}

func TestProjectSkills(t *testing.T) {
	t.Run("taxonomy order and stack", func(t *testing.T) {
		rec := model.ResumeRecord{Skills: model.Skills{
			"Testes & Qualidade": {"Unitários": {"Jest"}},
			"Frontend": {
				"Performance": {"Lazy Loading"},
				"Linguagens":  {"TypeScript", "JavaScript"},
			},
			"Backend": {"APIs": {}},
		}}
		blocks := Project(rec)
		assert.Equal(t, []string{
			"sectionHeader|Technical Skills",
			"skillCategory|Frontend",
			"skillSubcategoryText|Linguagens: TypeScript, JavaScript",
			"skillSubcategoryText|Performance: Lazy Loading",
			"skillCategory|Testes & Qualidade",
			"skillSubcategoryText|Unitários: Jest",
		}, flatten(blocks))

		require.True(t, blocks[2].IsStack())
		assert.Equal(t, Margin{10, 0, 0, 5}, *blocks[2].Margin)
	})

	t.Run("unknown names ignored", func(t *testing.T) {
		rec := model.ResumeRecord{Skills: model.Skills{"Cooking": {"Pasta": {"Carbonara"}}}}
		assert.Empty(t, Project(rec))
	})

	t.Run("nil subcategory map", func(t *testing.T) {
		rec := model.ResumeRecord{Skills: model.Skills{"Frontend": nil}}
		assert.Empty(t, Project(rec))
	})
}

func TestProjectWhitespaceIsContent(t *testing.T) {
	rec := model.ResumeRecord{Name: " ", Sections: model.Sections{SoftSkills: "  "}}
	assert.Equal(t, []string{
		"header| ",
		"sectionHeader|Soft Skills",
		"|  ",
	}, flatten(Project(rec)))
}

func TestProjectIsDeterministic(t *testing.T) {
	assert.Equal(t, Project(model.Demo()), Project(model.Demo()))
}

func TestNewDocumentStyles(t *testing.T) {
	doc := NewDocument(model.Demo())

	Walk(doc.Content, func(b Block) {
		if b.Style != "" {
			assert.Contains(t, doc.Styles, b.Style)
		}
	})
	assert.Equal(t, 11.0, doc.DefaultStyle.FontSize)
	assert.Equal(t, "#333", doc.DefaultStyle.Color)

	h := doc.Styles[StyleHeader]
	assert.Equal(t, 24.0, h.FontSize)
	assert.True(t, h.Bold)
	assert.Equal(t, "#0D0126", h.Color)
	require.NotNil(t, h.Margin)
	assert.Equal(t, Margin{0, 0, 0, 8}, *h.Margin)

	assert.True(t, doc.Styles[StyleExperienceTitle].Italics)
	assert.Equal(t, 2.0, doc.Styles[StyleContactInfo].MarginBottom)
}

func TestDocumentStylesAreCopies(t *testing.T) {
	doc := NewDocument(model.ResumeRecord{})
	doc.Styles[StyleHeader].Margin[3] = 99
	delete(doc.Styles, StyleSubheader)

	styles, _ := SharedStyles()
	assert.Equal(t, 8.0, styles[StyleHeader].Margin[3])
	assert.Contains(t, styles, StyleSubheader)
}

func TestParseStylesRejectsBadMargin(t *testing.T) {
	_, err := parseStyles([]byte("styles:\n  x:\n    margin: [1, 2]\n"))
	assert.Error(t, err)
}
