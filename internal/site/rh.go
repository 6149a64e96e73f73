package site

// HRConsultingPage describes the HR consultancy service.
func HRConsultingPage() Page {
	return Page{
		ID:      HRConsulting,
		Eyebrow: "Consultoria RH",
		Title:   "Processos de pessoas que funcionam na prática",
		Lead: "Consultoria para pequenas e médias empresas que cresceram mais rápido " +
			"do que a sua gestão de pessoas. Diagnóstico, desenho de processos e " +
			"acompanhamento até a rotina estar de pé.",
		Sections: []Section{
			{
				Heading: "Frentes de trabalho",
				Highlights: []Highlight{
					{Title: "Recrutamento e seleção", Body: "Perfis de vaga, roteiros de entrevista por competências e critérios objetivos de decisão."},
					{Title: "Cargos e salários", Body: "Descrição de cargos, trilhas de carreira e faixas salariais coerentes com o mercado."},
					{Title: "Avaliação de desempenho", Body: "Ciclos simples de feedback e metas que a liderança consegue sustentar."},
					{Title: "Cultura e clima", Body: "Pesquisa de clima, leitura dos resultados e plano de ação com responsáveis."},
				},
			},
			{
				Heading: "Como funciona",
				Bullets: []string{
					"Diagnóstico: entrevistas com liderança e equipe, leitura de indicadores.",
					"Plano: prioridades, cronograma e entregas acordadas.",
					"Implantação: construção conjunta dos processos e materiais.",
					"Acompanhamento: revisões periódicas até a autonomia da equipe.",
				},
			},
		},
		CallToAction: &CallToAction{
			Heading: "Sua empresa está crescendo?",
			Body:    "Conte o momento da sua equipe e receba uma proposta de diagnóstico.",
			Button:  "Solicitar proposta",
		},
	}
}
