package site

// ClinicPage describes the clinical psychology practice.
func ClinicPage() Page {
	return Page{
		ID:      ClinicalPsychology,
		Eyebrow: "Psicologia Clínica",
		Title:   "Um espaço para você voltar ao seu centro",
		Lead: "Psicoterapia online com base na Terapia Cognitivo-Comportamental para " +
			"mulheres que carregam tudo sozinhas e sentem que não há mais energia " +
			"para si mesmas.",
		Sections: []Section{
			{
				Heading: "Para quem é",
				Bullets: []string{
					"Exaustão, esgotamento e sinais de burnout.",
					"Ansiedade, autocobrança e dificuldade de dizer não.",
					"Sobrecarga entre carreira, maternidade e relações.",
					"Transições de vida e de carreira.",
				},
			},
			{
				Heading: "Como são as sessões",
				Paragraphs: []string{
					"Encontros semanais de 50 minutos por vídeo, em ambiente seguro e " +
						"sigiloso. A TCC é uma abordagem estruturada: definimos juntas os " +
						"objetivos e acompanhamos a evolução ao longo do processo.",
				},
				Highlights: []Highlight{
					{Title: "Online", Body: "Atendimento por vídeo de onde você estiver."},
					{Title: "Baseada em evidências", Body: "Técnicas da TCC com eficácia comprovada."},
					{Title: "Acolhimento", Body: "Escuta sem julgamentos, no seu ritmo."},
				},
			},
		},
		CallToAction: &CallToAction{
			Heading: "Dê o primeiro passo",
			Body:    "Envie uma mensagem para saber horários disponíveis e valores.",
			Button:  "Agendar sessão",
		},
	}
}
