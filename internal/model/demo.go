package model

// Demo returns a filled-in record used to preview the layout.
func Demo() ResumeRecord {
	rec := Empty()
	rec.Name = "Ana Souza"
	rec.Title = "Desenvolvedora Full Stack"
	rec.Email = "ana.souza@example.com"
	rec.Phone = "+55 81 99993-4299"
	rec.PhoneIsWhatsapp = true
	rec.HasLinkedin = true
	rec.LinkedinUsername = "anasouza"
	rec.HasGithub = true
	rec.GithubUsername = "anasouza"
	rec.Sections = Sections{
		About:           "Desenvolvedora com foco em aplicações web escaláveis e boas práticas de engenharia.",
		SoftSkills:      "Comunicação, trabalho em equipe, resolução de problemas.",
		Differentiators: "Mentora em comunidades de tecnologia e palestrante em eventos locais.",
	}
	rec.Experience = []Experience{
		{
			Company:     "Acme Tecnologia",
			Title:       "Engenheira de Software",
			StartDate:   DatePair{Month: "03", Year: "2021"},
			EndDate:     CurrentEnd(),
			Description: "Desenvolvimento de APIs REST e interfaces em React.",
			IsCurrent:   true,
		},
		{
			Company:     "Startup XYZ",
			Title:       "Desenvolvedora Frontend",
			StartDate:   DatePair{Month: "01", Year: "2019"},
			EndDate:     EndOf("02", "2021"),
			Description: "Criação de componentes reutilizáveis e melhoria de performance.",
		},
	}
	rec.Education = []Education{
		{
			Institution: "Universidade Federal de Pernambuco",
			Degree:      "Bacharelado em Ciência da Computação",
			StartDate:   DatePair{Month: "02", Year: "2015"},
			EndDate:     EndOf("12", "2018"),
		},
	}
	rec.Skills["Frontend"]["Linguagens"] = []string{"JavaScript", "TypeScript"}
	rec.Skills["Frontend"]["Frameworks e Bibliotecas"] = []string{"React.js", "Next.js"}
	rec.Skills["Backend"]["Linguagens"] = []string{"Node.js"}
	rec.Skills["Banco de Dados"]["Relacionais"] = []string{"PostgreSQL"}
	rec.Skills["DevOps & Ferramentas"]["Containers e CI/CD"] = []string{"Docker", "GitHub Actions"}
	return rec
}
