package site

// HomePage is the landing document.
func HomePage() Page {
	return Page{
		ID:      Home,
		Eyebrow: "Psicologia & Estratégia",
		Title:   "Cuidado clínico e inteligência estratégica no mesmo lugar",
		Lead: "Atendo mulheres que chegaram ao limite e empresas que querem cuidar " +
			"de pessoas sem perder a eficiência. Duas frentes, um mesmo olhar: " +
			"escuta técnica, processos claros e resultados sustentáveis.",
		Sections: []Section{
			{
				Heading: "Como posso ajudar",
				Highlights: []Highlight{
					{
						Title: "Psicologia Clínica",
						Body:  "Terapia Cognitivo-Comportamental online para mulheres em exaustão, ansiedade e sobrecarga.",
					},
					{
						Title: "Consultoria RH",
						Body:  "Estruturação de processos de gente e gestão: recrutamento, cargos, avaliação e cultura.",
					},
					{
						Title: "NR1 Saúde Mental",
						Body:  "Adequação à NR-1 com mapeamento de riscos psicossociais e plano de ação documentado.",
					},
				},
			},
			{
				Heading: "Por que unir clínica e estratégia",
				Paragraphs: []string{
					"O sofrimento que chega ao consultório muitas vezes nasce no trabalho. " +
						"E os problemas que as empresas tentam resolver com processos quase " +
						"sempre têm uma dimensão humana que ninguém mediu.",
					"Trabalhar dos dois lados me permite enxergar o caminho inteiro: da " +
						"pessoa que adoece à organização que pode prevenir.",
				},
				Quote: "Cuidar de pessoas é estratégia. Estratégia sem cuidado é custo.",
			},
		},
		CallToAction: &CallToAction{
			Heading: "Vamos conversar?",
			Body:    "Agende uma conversa inicial sem compromisso para entender qual caminho faz sentido para você ou para a sua empresa.",
			Button:  "Agendar conversa",
		},
	}
}
