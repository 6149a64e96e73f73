package site

// Icon names a glyph from the lucide icon set.
type Icon string

const (
	IconHome          Icon = "home"
	IconBriefcase     Icon = "briefcase"
	IconShieldCheck   Icon = "shield-check"
	IconInfo          Icon = "info"
	IconUser          Icon = "user"
	IconMenu          Icon = "menu"
	IconClose         Icon = "x"
	IconInstagram     Icon = "instagram"
	IconLinkedin      Icon = "linkedin"
	IconMessageCircle Icon = "message-circle"
	IconArrowRight    Icon = "arrow-right"
)

var glyphs = map[Icon]string{
	IconHome:          "⌂",
	IconBriefcase:     "▤",
	IconShieldCheck:   "◈",
	IconInfo:          "ⓘ",
	IconUser:          "☺",
	IconMenu:          "☰",
	IconClose:         "✕",
	IconInstagram:     "◎",
	IconLinkedin:      "in",
	IconMessageCircle: "✉",
	IconArrowRight:    "→",
}

// Glyph returns a single-cell terminal stand-in for the icon.
func (i Icon) Glyph() string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return "•"
}

// NavEntry pairs a page with the label and icon used to reach it.
type NavEntry struct {
	ID    PageID
	Label string
	Icon  Icon
}

var entries = []NavEntry{
	{ID: Home, Label: Home.Label(), Icon: IconHome},
	{ID: HRConsulting, Label: HRConsulting.Label(), Icon: IconBriefcase},
	{ID: MentalHealthCompliance, Label: MentalHealthCompliance.Label(), Icon: IconShieldCheck},
	{ID: ClinicalPsychology, Label: ClinicalPsychology.Label(), Icon: IconInfo},
	{ID: AboutMe, Label: AboutMe.Label(), Icon: IconUser},
}

// Entries returns the navigation list in display order. The returned slice
// is a copy.
func Entries() []NavEntry {
	out := make([]NavEntry, len(entries))
	copy(out, entries)
	return out
}

// EntryFor returns the navigation entry for id.
func EntryFor(id PageID) (NavEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return NavEntry{}, false
}
