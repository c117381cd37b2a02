package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatePairValid(t *testing.T) {
	assert.True(t, DatePair{Month: "03", Year: "2021"}.Valid())
	assert.False(t, DatePair{Month: "03"}.Valid())
	assert.False(t, DatePair{Year: "2021"}.Valid())
	assert.False(t, DatePair{}.Valid())
}

func TestEndDateValid(t *testing.T) {
	assert.True(t, CurrentEnd().Valid())
	assert.True(t, EndOf("12", "2020").Valid())
	assert.False(t, EndOf("12", "").Valid())
	assert.Equal(t, "Current", CurrentEnd().String())
	assert.Equal(t, "12/2020", EndOf("12", "2020").String())
}

func TestEndDateJSON(t *testing.T) {
	t.Run("sentinel", func(t *testing.T) {
		b, err := json.Marshal(CurrentEnd())
		require.NoError(t, err)
		assert.JSONEq(t, `"Current"`, string(b))

		var e EndDate
		require.NoError(t, json.Unmarshal(b, &e))
		assert.Equal(t, CurrentEnd(), e)
	})

	t.Run("legacy sentinel", func(t *testing.T) {
		var e EndDate
		require.NoError(t, json.Unmarshal([]byte(`"Atual"`), &e))
		assert.True(t, e.Current)
	})

	t.Run("pair", func(t *testing.T) {
		b, err := json.Marshal(EndOf("05", "2022"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"month":"05","year":"2022"}`, string(b))

		var e EndDate
		require.NoError(t, json.Unmarshal(b, &e))
		assert.Equal(t, EndOf("05", "2022"), e)
	})

	t.Run("null and empty", func(t *testing.T) {
		var e EndDate
		require.NoError(t, json.Unmarshal([]byte(`null`), &e))
		assert.Equal(t, EndDate{}, e)
		require.NoError(t, json.Unmarshal([]byte(`""`), &e))
		assert.Equal(t, EndDate{}, e)
	})

	t.Run("unknown string", func(t *testing.T) {
		var e EndDate
		assert.Error(t, json.Unmarshal([]byte(`"soon"`), &e))
	})
}

func TestRecordRoundTrip(t *testing.T) {
	for name, rec := range map[string]ResumeRecord{
		"empty": Empty(),
		"demo":  Demo(),
		"zero":  {},
	} {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(rec)
			require.NoError(t, err)

			var got ResumeRecord
			require.NoError(t, json.Unmarshal(b, &got))
			assert.Equal(t, rec, got)
		})
	}
}

func TestRecordWireNames(t *testing.T) {
	b, err := json.Marshal(Demo())
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"name", "title", "email", "phone", "phoneIsWhatsapp", "hasLinkedin", "hasGithub", "linkedinUsername", "githubUsername", "sections", "experience", "education", "skills"} {
		assert.Contains(t, m, k)
	}
	sections := m["sections"].(map[string]interface{})
	assert.Contains(t, sections, "About")
	assert.Contains(t, sections, "Soft Skills")
	assert.Contains(t, sections, "Differentiators")

	exp := m["experience"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Current", exp["endDate"])
}

func TestCloneIsDeep(t *testing.T) {
	orig := Demo()
	c := orig.Clone()

	c.Experience[0].Company = "Other"
	c.Education[0].Degree = "Other"
	c.Skills["Frontend"]["Linguagens"][0] = "Other"
	c.Skills["Backend"]["APIs"] = append(c.Skills["Backend"]["APIs"], "GraphQL")

	assert.Equal(t, "Acme Tecnologia", orig.Experience[0].Company)
	assert.Equal(t, "Bacharelado em Ciência da Computação", orig.Education[0].Degree)
	assert.Equal(t, "JavaScript", orig.Skills["Frontend"]["Linguagens"][0])
	assert.Empty(t, orig.Skills["Backend"]["APIs"])
}

func TestEmptyRecord(t *testing.T) {
	rec := Empty()
	assert.Len(t, rec.Experience, 1)
	assert.Len(t, rec.Education, 1)
	for _, cat := range SkillTaxonomy().CategoryNames() {
		for _, sub := range SkillTaxonomy().SubcategoryNames(cat) {
			labels, ok := rec.Skills[cat][sub]
			assert.True(t, ok, "%s/%s", cat, sub)
			assert.Empty(t, labels)
		}
	}
}

func TestTaxonomyOrder(t *testing.T) {
	tax := SkillTaxonomy()
	assert.Equal(t, []string{"Frontend", "Backend", "Banco de Dados", "DevOps & Ferramentas", "Testes & Qualidade"}, tax.CategoryNames())
	assert.Equal(t, []string{"Linguagens", "Frameworks e Bibliotecas", "Gerenciamento de Estado", "Performance", "Acessibilidade e SEO"}, tax.SubcategoryNames("Frontend"))
	assert.Nil(t, tax.SubcategoryNames("Cooking"))
}

func TestTaxonomyContains(t *testing.T) {
	tax := SkillTaxonomy()
	assert.True(t, tax.Contains("Frontend", "Linguagens", "TypeScript"))
	assert.True(t, tax.Contains("DevOps & Ferramentas", "Containers e CI/CD", "GitHub Actions"))
	assert.True(t, tax.Contains("Frontend", "Acessibilidade e SEO", "Acessibilidade (WCAG)"))
	assert.False(t, tax.Contains("Frontend", "Linguagens", "Go"))
	assert.False(t, tax.Contains("Backend", "Linguagens", "TypeScript"))
	assert.False(t, tax.Contains("Nope", "Linguagens", "TypeScript"))
}

func TestTaxonomyAccessorsReturnCopies(t *testing.T) {
	tax := SkillTaxonomy()
	labels := tax.Labels("Backend", "APIs")
	require.Equal(t, []string{"RESTful", "GraphQL"}, labels)
	labels[0] = "SOAP"

	names := tax.CategoryNames()
	names[0] = "Changed"

	assert.Equal(t, []string{"RESTful", "GraphQL"}, tax.Labels("Backend", "APIs"))
	assert.Equal(t, "Frontend", tax.CategoryNames()[0])
}

func TestParseTaxonomyRejectsDuplicates(t *testing.T) {
	_, err := ParseTaxonomy([]byte(`
- name: A
  subcategories:
    - name: x
      labels: [one]
- name: A
`))
	assert.Error(t, err)

	_, err = ParseTaxonomy([]byte(`
- name: A
  subcategories:
    - name: x
    - name: x
`))
	assert.Error(t, err)
}

func TestDecodeRecord(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b, err := json.Marshal(Demo())
		require.NoError(t, err)

		rec, err := DecodeRecord(b)
		require.NoError(t, err)
		assert.Equal(t, Demo(), rec)
	})

	t.Run("legacy sentinel", func(t *testing.T) {
		rec, err := DecodeRecord([]byte(`{"sections":{},"experience":[{"company":"Acme","endDate":"Atual","isCurrent":true}]}`))
		require.NoError(t, err)
		assert.True(t, rec.Experience[0].EndDate.Current)
	})

	t.Run("null optional fields read as absent", func(t *testing.T) {
		rec, err := DecodeRecord([]byte(`{
			"sections": {"About": null, "Soft Skills": null, "Differentiators": "Fast"},
			"experience": [{"company": "Acme", "startDate": null, "endDate": null}],
			"education": [{"institution": "UFPE", "startDate": null, "endDate": {"month": "06", "year": "2019"}}]
		}`))
		require.NoError(t, err)
		assert.Equal(t, Sections{Differentiators: "Fast"}, rec.Sections)
		assert.Equal(t, DatePair{}, rec.Experience[0].StartDate)
		assert.Equal(t, EndDate{}, rec.Experience[0].EndDate)
		assert.Equal(t, DatePair{}, rec.Education[0].StartDate)
		assert.Equal(t, EndOf("06", "2019"), rec.Education[0].EndDate)
	})

	t.Run("missing sections", func(t *testing.T) {
		_, err := DecodeRecord([]byte(`{"name":"Ana"}`))
		assert.ErrorContains(t, err, "schema validation failed")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := DecodeRecord([]byte(`{"sections":{},"hasGithub":"yes"}`))
		assert.Error(t, err)
	})

	t.Run("bad end date", func(t *testing.T) {
		_, err := DecodeRecord([]byte(`{"sections":{},"education":[{"endDate":"later"}]}`))
		assert.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeRecord([]byte(`{`))
		assert.Error(t, err)
	})

	t.Run("skill outside taxonomy", func(t *testing.T) {
		_, err := DecodeRecord([]byte(`{"sections":{},"skills":{"Frontend":{"Linguagens":["Cobol"]}}}`))
		assert.ErrorContains(t, err, "Cobol")
	})
}
