package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"aurora/internal/nav"
	"aurora/internal/site"
)

const testBreakpoint = 120

func newTestApp(t *testing.T, width, height int) (*AppModel, *appModelAdapter) {
	t.Helper()
	a := NewAppModel(nav.New(nil), testBreakpoint)
	adapter := &appModelAdapter{AppModel: a}
	adapter.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return a, adapter
}

// press sends a key and feeds any resulting message back, the way the
// Bubble Tea runtime would.
func press(adapter *appModelAdapter, keys ...string) {
	for _, k := range keys {
		_, cmd := adapter.Update(keyMsg(k))
		if cmd != nil {
			if msg := cmd(); msg != nil {
				adapter.Update(msg)
			}
		}
	}
}

func plainView(adapter *appModelAdapter) string {
	return ansi.Strip(adapter.View())
}

func firstWords(s string, n int) string {
	words := strings.Fields(s)
	return strings.Join(words[:min(n, len(words))], " ")
}

func TestApp_InitialState(t *testing.T) {
	a, adapter := newTestApp(t, 140, 40)
	if a.Nav.Page() != site.Home || a.Nav.MenuOpen() {
		t.Fatalf("initial state: page=%v menu=%v", a.Nav.Page(), a.Nav.MenuOpen())
	}
	if a.Layout != LayoutDesktop {
		t.Errorf("expected desktop layout at width 140, got %v", a.Layout)
	}
	view := plainView(adapter)
	if !strings.Contains(view, "Louisiane Aurora") {
		t.Error("header should show the brand name")
	}
	if !strings.Contains(view, site.HomePage().Title) {
		t.Error("home page should be rendered initially")
	}
}

func TestApp_DigitSelectsPage(t *testing.T) {
	entries := site.Entries()
	for i, e := range entries {
		t.Run(e.ID.Slug(), func(t *testing.T) {
			a, adapter := newTestApp(t, 140, 60)
			press(adapter, string(rune('1'+i)))
			if a.Nav.Page() != e.ID {
				t.Fatalf("after %d: page=%v, want %v", i+1, a.Nav.Page(), e.ID)
			}
			if a.Focus.Current != e.ID {
				t.Errorf("focus should follow selection, got %v", a.Focus.Current)
			}
			view := plainView(adapter)
			for _, other := range site.AllPages() {
				lead := firstWords(site.Render(other).Lead, 4)
				if got := strings.Contains(view, lead); got != (other == e.ID) {
					t.Errorf("view contains lead of %v = %v", other, got)
				}
			}
		})
	}
}

func TestApp_SelectResetsScroll(t *testing.T) {
	a, adapter := newTestApp(t, 80, 15)
	press(adapter, "pgdown", "down", "down")
	if a.Page.Offset() == 0 {
		t.Fatal("expected page to scroll down")
	}
	press(adapter, "2")
	if a.Nav.Page() != site.HRConsulting {
		t.Fatalf("page=%v", a.Nav.Page())
	}
	if a.Page.Offset() != 0 {
		t.Errorf("selecting a page should scroll to top, offset=%d", a.Page.Offset())
	}
}

func TestApp_MenuThenClinic(t *testing.T) {
	a, adapter := newTestApp(t, 60, 40)
	if a.Layout != LayoutMobile {
		t.Fatalf("expected mobile layout at width 60, got %v", a.Layout)
	}

	press(adapter, "m")
	if !a.Nav.MenuOpen() {
		t.Fatal("m should open the menu")
	}
	view := plainView(adapter)
	if !strings.Contains(view, "WHATSAPP") {
		t.Error("open mobile panel should show the WhatsApp button")
	}
	if !strings.Contains(view, site.IconClose.Glyph()) {
		t.Error("menu button should show the close glyph while open")
	}

	press(adapter, "4")
	if a.Nav.Page() != site.ClinicalPsychology {
		t.Errorf("page=%v, want ClinicalPsychology", a.Nav.Page())
	}
	if a.Nav.MenuOpen() {
		t.Error("selecting a page should close the menu")
	}
	view = plainView(adapter)
	if strings.Contains(view, "WHATSAPP") {
		t.Error("closed mobile panel should not render")
	}
	if !strings.Contains(view, "PSICOLOGIA CLÍNICA") {
		t.Error("clinic page should render")
	}
}

func TestApp_MenuToggleTwiceKeepsPage(t *testing.T) {
	a, adapter := newTestApp(t, 60, 40)
	press(adapter, "3", "m", "m")
	if a.Nav.MenuOpen() {
		t.Error("two toggles should restore the closed menu")
	}
	if a.Nav.Page() != site.MentalHealthCompliance {
		t.Errorf("toggle changed page to %v", a.Nav.Page())
	}
}

func TestApp_DesktopHidesMobilePanel(t *testing.T) {
	a, adapter := newTestApp(t, 140, 40)
	press(adapter, "m")
	if !a.Nav.MenuOpen() {
		t.Fatal("toggle should still flip state on desktop")
	}
	if strings.Contains(plainView(adapter), "WHATSAPP") {
		t.Error("mobile panel should not render in desktop layout")
	}
	if !strings.Contains(plainView(adapter), "CONTATO") {
		t.Error("desktop header should show the contact button")
	}
}

func TestApp_TabEnterSelectsFocused(t *testing.T) {
	a, adapter := newTestApp(t, 140, 40)
	press(adapter, "tab", "tab")
	if a.Focus.Current != site.MentalHealthCompliance {
		t.Fatalf("focus=%v after two tabs", a.Focus.Current)
	}
	if a.Nav.Page() != site.Home {
		t.Error("moving focus must not change the page")
	}
	press(adapter, "enter")
	if a.Nav.Page() != site.MentalHealthCompliance {
		t.Errorf("enter: page=%v", a.Nav.Page())
	}

	press(adapter, "shift+tab", "shift+tab", "shift+tab")
	if a.Focus.Current != site.AboutMe {
		t.Errorf("shift+tab should wrap, focus=%v", a.Focus.Current)
	}
}

func TestApp_LeaderSelectsPage(t *testing.T) {
	a, adapter := newTestApp(t, 140, 40)
	press(adapter, " ")
	if !strings.Contains(plainView(adapter), "Páginas") {
		t.Error("leader help should list the pages submenu")
	}
	press(adapter, "p", "s")
	if a.Nav.Page() != site.AboutMe {
		t.Errorf("SPC p s: page=%v", a.Nav.Page())
	}
	if a.KeyHandler.LeaderWaiting {
		t.Error("leader should be done")
	}
}

func TestApp_SelectSamePageTwice(t *testing.T) {
	a, adapter := newTestApp(t, 140, 40)
	press(adapter, "2")
	first := plainView(adapter)
	press(adapter, "2")
	if a.Nav.Page() != site.HRConsulting {
		t.Fatalf("page=%v", a.Nav.Page())
	}
	if got := plainView(adapter); got != first {
		t.Error("re-selecting the same page should not change the view")
	}
}

func TestApp_ContactOverlay(t *testing.T) {
	a, adapter := newTestApp(t, 140, 40)
	press(adapter, "c")
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected contact overlay, got %d overlays", a.Overlays.Len())
	}
	top, _ := a.Overlays.Peek()
	if _, ok := top.View.(*ContactModal); !ok {
		t.Errorf("expected ContactModal, got %T", top.View)
	}
	if !strings.Contains(plainView(adapter), "Instagram") {
		t.Error("overlay should list contact channels")
	}

	// Keys go to the overlay, not the shell.
	press(adapter, "2")
	if a.Nav.Page() != site.Home {
		t.Error("keys must not reach the shell while the overlay is open")
	}

	press(adapter, "esc")
	if a.Overlays.Len() != 0 {
		t.Errorf("esc should dismiss, %d overlays left", a.Overlays.Len())
	}

	press(adapter, "c", "enter")
	if a.Overlays.Len() != 0 {
		t.Errorf("enter should dismiss, %d overlays left", a.Overlays.Len())
	}

	press(adapter, "c")
	_, cmd := adapter.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c with the contact overlay open should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c with the contact overlay open: expected tea.QuitMsg")
	}
}

func TestApp_BrandClickSelectsHome(t *testing.T) {
	a, adapter := newTestApp(t, 140, 40)
	press(adapter, "3")
	if a.Nav.Page() != site.MentalHealthCompliance {
		t.Fatalf("setup: page=%v", a.Nav.Page())
	}

	// Outside the brand block nothing is selected.
	_, cmd := adapter.Update(tea.MouseMsg{X: 139, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd != nil {
		if _, ok := cmd().(SelectPageMsg); ok {
			t.Fatal("click outside the brand should not select a page")
		}
	}

	_, cmd = adapter.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd == nil {
		t.Fatal("brand click should return a command")
	}
	adapter.Update(cmd())
	if a.Nav.Page() != site.Home {
		t.Errorf("brand click: page=%v, want Home", a.Nav.Page())
	}
	if a.Page.Offset() != 0 {
		t.Errorf("brand click should scroll to top, offset=%d", a.Page.Offset())
	}
}

func TestApp_ViewFitsHeight(t *testing.T) {
	for _, size := range [][2]int{{60, 30}, {140, 30}} {
		a, adapter := newTestApp(t, size[0], size[1])
		press(adapter, "m")
		if h := strings.Count(adapter.View(), "\n") + 1; h > size[1] {
			t.Errorf("%v: view is %d lines, terminal is %d", a.Layout, h, size[1])
		}
		press(adapter, " ")
		if h := strings.Count(adapter.View(), "\n") + 1; h > size[1] {
			t.Errorf("%v with leader box: view is %d lines, terminal is %d", a.Layout, h, size[1])
		}
	}
}

func TestApp_FooterInPageRegion(t *testing.T) {
	_, adapter := newTestApp(t, 140, 40)
	press(adapter, "G")
	view := plainView(adapter)
	for _, want := range []string{"Navegação", "Especialidades", "Todos os direitos reservados"} {
		if !strings.Contains(view, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}

func TestApp_QuitKeys(t *testing.T) {
	_, adapter := newTestApp(t, 80, 24)
	for _, k := range []string{"q", "ctrl+c"} {
		var msg tea.KeyMsg
		if k == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = keyMsg(k)
		}
		_, cmd := adapter.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}
