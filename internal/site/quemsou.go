package site

// AboutPage introduces the practitioner.
func AboutPage() Page {
	return Page{
		ID:      AboutMe,
		Eyebrow: "Quem Sou",
		Title:   "Louisiane Aurora",
		Lead: "Psicóloga clínica e consultora de Recursos Humanos. Uni duas " +
			"trajetórias que pareciam distantes para cuidar de pessoas dentro e " +
			"fora das organizações.",
		Sections: []Section{
			{
				Heading: "Minha trajetória",
				Paragraphs: []string{
					"Comecei no RH corporativo, conduzindo seleção, desenvolvimento e " +
						"clima em empresas de diferentes portes. Ali percebi o quanto o " +
						"trabalho pode adoecer e, também, o quanto pode curar.",
					"A psicologia clínica veio como continuidade natural: hoje atendo " +
						"mulheres em sofrimento e levo esse olhar para dentro das empresas " +
						"que atendo.",
				},
			},
			{
				Heading: "Formação",
				Bullets: []string{
					"Psicologia, com especialização em Terapia Cognitivo-Comportamental.",
					"Pós-graduação em Gestão Estratégica de Pessoas.",
					"Formação em avaliação de riscos psicossociais no trabalho.",
				},
				Quote: "Acredito em processos claros e em relações humanas possíveis.",
			},
		},
	}
}
