package site

// MentalHealthPage covers NR-1 psychosocial risk compliance.
func MentalHealthPage() Page {
	return Page{
		ID:      MentalHealthCompliance,
		Eyebrow: "NR1 Saúde Mental",
		Title:   "Riscos psicossociais no seu Programa de Gerenciamento de Riscos",
		Lead: "A atualização da NR-1 torna obrigatória a identificação e o controle " +
			"dos riscos psicossociais no ambiente de trabalho. Eu ajudo a sua empresa " +
			"a cumprir a norma com método e, principalmente, com cuidado real.",
		Sections: []Section{
			{
				Heading: "O que a norma exige",
				Paragraphs: []string{
					"Fatores como sobrecarga, metas abusivas, assédio e falta de autonomia " +
						"passam a integrar o inventário de riscos do PGR, ao lado dos riscos " +
						"físicos, químicos e ergonômicos.",
				},
				Bullets: []string{
					"Identificação dos perigos e avaliação dos riscos psicossociais.",
					"Plano de ação com medidas de prevenção e prazos.",
					"Registro e acompanhamento documentados.",
				},
			},
			{
				Heading: "Minha entrega",
				Highlights: []Highlight{
					{Title: "Mapeamento", Body: "Questionários validados e escuta qualificada por setor."},
					{Title: "Relatório técnico", Body: "Inventário de riscos psicossociais pronto para integrar o PGR."},
					{Title: "Plano de ação", Body: "Medidas priorizadas, responsáveis e indicadores de acompanhamento."},
					{Title: "Capacitação", Body: "Treinamento de lideranças para reconhecer e acolher sinais de adoecimento."},
				},
			},
		},
		CallToAction: &CallToAction{
			Heading: "Adeque sua empresa com segurança",
			Body:    "Fale comigo para entender o escopo e o prazo para o seu time.",
			Button:  "Falar sobre a NR-1",
		},
	}
}
