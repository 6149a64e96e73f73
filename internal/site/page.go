// Package site holds the static content of the Louisiane Aurora website:
// page identifiers, the navigation entry list, brand data and the five page
// documents. Everything here is immutable and free of rendering concerns.
package site

import "strings"

// PageID identifies one of the five content pages.
type PageID int

const (
	Home PageID = iota
	HRConsulting
	MentalHealthCompliance
	ClinicalPsychology
	AboutMe
)

// pageCount is the number of valid PageID values.
const pageCount = int(AboutMe) + 1

var slugs = [pageCount]string{
	Home:                   "home",
	HRConsulting:           "rh",
	MentalHealthCompliance: "saudemental",
	ClinicalPsychology:     "clinica",
	AboutMe:                "quemsou",
}

var labels = [pageCount]string{
	Home:                   "Home",
	HRConsulting:           "Consultoria RH",
	MentalHealthCompliance: "NR1 Saúde Mental",
	ClinicalPsychology:     "Psicologia Clínica",
	AboutMe:                "Quem Sou",
}

// Valid reports whether id is one of the declared pages.
func (id PageID) Valid() bool {
	return id >= Home && int(id) < pageCount
}

// Slug returns the stable lowercase identifier, e.g. "rh".
// Unknown ids report the Home slug.
func (id PageID) Slug() string {
	if !id.Valid() {
		return slugs[Home]
	}
	return slugs[id]
}

// Label returns the navigation label shown to visitors.
func (id PageID) Label() string {
	if !id.Valid() {
		return labels[Home]
	}
	return labels[id]
}

func (id PageID) String() string {
	switch id {
	case Home:
		return "Home"
	case HRConsulting:
		return "HRConsulting"
	case MentalHealthCompliance:
		return "MentalHealthCompliance"
	case ClinicalPsychology:
		return "ClinicalPsychology"
	case AboutMe:
		return "AboutMe"
	default:
		return "Unknown"
	}
}

// ParsePageID maps a slug to its PageID. Matching ignores case and
// surrounding space. Anything unrecognised resolves to Home.
func ParsePageID(s string) PageID {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, slug := range slugs {
		if slug == s {
			return PageID(i)
		}
	}
	return Home
}

// AllPages returns every PageID in navigation order.
func AllPages() []PageID {
	out := make([]PageID, pageCount)
	for i := range out {
		out[i] = PageID(i)
	}
	return out
}
