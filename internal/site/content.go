package site

// Page is a static content document for one PageID.
type Page struct {
	ID       PageID
	Eyebrow  string // short kicker above the title
	Title    string
	Lead     string
	Sections []Section
	// CallToAction is nil for pages that end without a closing prompt.
	CallToAction *CallToAction
}

// Section is one block of a page, rendered in field order.
type Section struct {
	Heading    string
	Paragraphs []string
	Highlights []Highlight
	Bullets    []string
	Quote      string
}

// Highlight is a titled card inside a section.
type Highlight struct {
	Title string
	Body  string
}

// CallToAction closes a page with a prompt to get in touch.
type CallToAction struct {
	Heading string
	Body    string
	Button  string
}

var renderers = map[PageID]func() Page{
	Home:                   HomePage,
	HRConsulting:           HRConsultingPage,
	MentalHealthCompliance: MentalHealthPage,
	ClinicalPsychology:     ClinicPage,
	AboutMe:                AboutPage,
}

// Render returns the document for id, or the Home document when id matches
// no page.
func Render(id PageID) Page {
	if fn, ok := renderers[id]; ok {
		return fn()
	}
	return HomePage()
}
