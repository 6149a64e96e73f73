package nav

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurora/internal/site"
)

type fakeScroller struct {
	resets int
}

func (f *fakeScroller) GotoTop() { f.resets++ }

type recorder struct {
	selects [][2]site.PageID
	toggles []bool
}

func (r *recorder) PageSelected(from, to site.PageID) {
	r.selects = append(r.selects, [2]site.PageID{from, to})
}

func (r *recorder) MenuToggled(open bool) {
	r.toggles = append(r.toggles, open)
}

func TestNew_InitialState(t *testing.T) {
	s := New(nil)
	assert.Equal(t, site.Home, s.Page())
	assert.False(t, s.MenuOpen())
	assert.Equal(t, site.HomePage(), s.Current())
}

func TestSelectPage_RendersOnlySelectedUnit(t *testing.T) {
	for _, id := range site.AllPages() {
		t.Run(id.Slug(), func(t *testing.T) {
			s := New(nil)
			s.SelectPage(id)
			got := s.Current()
			assert.Equal(t, id, got.ID)
			for _, other := range site.AllPages() {
				if other != id {
					assert.NotEqual(t, site.Render(other).Title, got.Title)
				}
			}
		})
	}
}

func TestSelectPage_ClosesMenu(t *testing.T) {
	for _, open := range []bool{false, true} {
		s := New(nil)
		if open {
			s.ToggleMenu()
		}
		require.Equal(t, open, s.MenuOpen())
		s.SelectPage(site.AboutMe)
		assert.False(t, s.MenuOpen(), "menu should close (was open=%v)", open)
	}
}

func TestSelectPage_ScrollsToTop(t *testing.T) {
	sc := &fakeScroller{}
	s := New(sc)
	s.SelectPage(site.HRConsulting)
	s.SelectPage(site.HRConsulting)
	assert.Equal(t, 2, sc.resets)
}

func TestSelectPage_Twice_Stable(t *testing.T) {
	s := New(nil)
	s.SelectPage(site.HRConsulting)
	first := s.Current()
	s.SelectPage(site.HRConsulting)
	assert.Equal(t, site.HRConsulting, s.Page())
	assert.False(t, s.MenuOpen())
	assert.Equal(t, first, s.Current())
}

func TestSelectPage_InvalidFallsBackToHome(t *testing.T) {
	s := New(nil)
	s.SelectPage(site.ClinicalPsychology)
	s.SelectPage(site.PageID(17))
	assert.Equal(t, site.Home, s.Page())
}

func TestToggleMenu_TwiceRestores(t *testing.T) {
	s := New(nil)
	s.SelectPage(site.MentalHealthCompliance)
	s.ToggleMenu()
	assert.True(t, s.MenuOpen())
	assert.Equal(t, site.MentalHealthCompliance, s.Page())
	s.ToggleMenu()
	assert.False(t, s.MenuOpen())
	assert.Equal(t, site.MentalHealthCompliance, s.Page())
}

func TestToggleMenu_DoesNotScroll(t *testing.T) {
	sc := &fakeScroller{}
	s := New(sc)
	s.ToggleMenu()
	assert.Zero(t, sc.resets)
}

func TestScenario_MenuThenClinic(t *testing.T) {
	s := New(nil)
	s.ToggleMenu()
	require.True(t, s.MenuOpen())
	s.SelectPage(site.ClinicalPsychology)
	assert.Equal(t, site.ClinicalPsychology, s.Page())
	assert.False(t, s.MenuOpen())
	assert.Equal(t, site.ClinicPage().Title, s.Current().Title)
}

func TestObserve(t *testing.T) {
	r := &recorder{}
	s := New(nil)
	s.Observe(r)
	s.Observe(nil)
	s.ToggleMenu()
	s.SelectPage(site.AboutMe)
	assert.Equal(t, []bool{true}, r.toggles)
	assert.Equal(t, [][2]site.PageID{{site.Home, site.AboutMe}}, r.selects)
}

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	s := New(nil)
	s.Observe(LogObserver{Logger: log.New(&buf, "", 0)})
	s.ToggleMenu()
	s.SelectPage(site.HRConsulting)
	assert.Equal(t, "nav: menu open=true\nnav: select page home -> rh\n", buf.String())

	// A zero LogObserver is silent.
	LogObserver{}.PageSelected(site.Home, site.AboutMe)
}
