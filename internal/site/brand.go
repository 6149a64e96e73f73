package site

// SocialLink is a footer link to an external profile.
type SocialLink struct {
	Label string
	Icon  Icon
	URL   string
}

// Brand carries the identity strings shared by the header and footer.
type Brand struct {
	Name          string
	Monogram      string
	Tagline       string // header subtitle
	FooterTagline string
	Mission       string
	Specialties   []string
	Social        []SocialLink
	Legal         []string
	Copyright     string
	Contact       string // desktop call-to-action label
	WhatsApp      string // mobile call-to-action label
	NavHeading    string
	SpecHeading   string
}

// DefaultBrand returns the practice's brand data.
func DefaultBrand() Brand {
	return Brand{
		Name:          "Louisiane Aurora",
		Monogram:      "L",
		Tagline:       "Psicologia & Estratégia",
		FooterTagline: "Psicologia & Estratégia RH",
		Mission: "Apoiando mulheres exaustas a encontrarem seu centro e organizações a " +
			"estruturarem processos inteligentes, unindo a sensibilidade clínica à " +
			"inteligência estratégica.",
		Specialties: []string{
			"Terapia Cognitivo-Comportamental",
			"Consultoria de RH Estratégico",
			"Saúde Mental e NR1",
		},
		Social: []SocialLink{
			{Label: "Instagram", Icon: IconInstagram, URL: "#"},
			{Label: "LinkedIn", Icon: IconLinkedin, URL: "#"},
			{Label: "WhatsApp", Icon: IconMessageCircle, URL: "#"},
		},
		Legal:       []string{"Termos de Uso", "Privacidade"},
		Copyright:   "© 2024 Louisiane Aurora. Todos os direitos reservados.",
		Contact:     "Contato",
		WhatsApp:    "WhatsApp",
		NavHeading:  "Navegação",
		SpecHeading: "Especialidades",
	}
}
