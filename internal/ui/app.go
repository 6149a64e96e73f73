package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aurora/internal/nav"
	"aurora/internal/site"
	"aurora/internal/ui/textutil"
)

// Size assumed until the first tea.WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// AppModel is the root model: the navigation shell, the page region and
// any open overlay.
type AppModel struct {
	Nav        *nav.State
	Brand      site.Brand
	Entries    []site.NavEntry
	Breakpoint int
	Width      int
	Height     int
	Layout     LayoutMode
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Page       *PageView
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel builds the root model around state and makes the page region
// its scroll target.
func NewAppModel(state *nav.State, breakpoint int) *AppModel {
	entries := site.Entries()
	order := make([]site.PageID, len(entries))
	for i, e := range entries {
		order[i] = e.ID
	}
	a := &AppModel{
		Nav:        state,
		Brand:      site.DefaultBrand(),
		Entries:    entries,
		Breakpoint: breakpoint,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Focus:      NewFocusManager(order),
		KeyHandler: NewKeyHandler(DefaultKeybinds(entries)),
		Page:       NewPageView(defaultWidth, defaultHeight),
	}
	state.SetScroller(a.Page)
	a.Focus.SetFocus(state.Page())
	a.refreshContent()
	a.relayout()
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Page.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.refreshContent()
		a.relayout()
		return a, nil
	case SelectPageMsg:
		a.Nav.SelectPage(msg.Page)
		a.Focus.SetFocus(a.Nav.Page())
		a.refreshContent()
		a.relayout()
		return a, nil
	case ToggleMenuMsg:
		a.Nav.ToggleMenu()
		a.relayout()
		return a, nil
	case ShowContactMsg:
		a.Overlays.Push(Overlay{View: NewContactModal(a.Brand), Dismiss: "esc"})
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		if a.Overlays.Len() == 0 && a.clickedBrand(msg) {
			return a, selectPageCmd(site.Home)
		}
	}

	_, cmd := a.Page.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		a.relayout() // the leader help box changes the status height
		return a, cmd
	}

	switch msg.String() {
	case "tab":
		a.Focus.Next()
		return a, nil
	case "shift+tab":
		a.Focus.Prev()
		return a, nil
	case "enter":
		return a, selectPageCmd(a.Focus.Current)
	}

	_, cmd := a.Page.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.Width, a.Height, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	parts := []string{a.header()}
	if panel := a.mobilePanel(); panel != "" {
		parts = append(parts, panel)
	}
	parts = append(parts, a.Page.View(), a.status())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// clickedBrand reports a left click on the brand block in the header.
func (a *AppModel) clickedBrand(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	brand := renderBrand(a.Brand)
	return msg.X < lipgloss.Width(brand) && msg.Y < lipgloss.Height(brand)
}

func (a *AppModel) header() string {
	return renderHeader(a.Brand, a.Entries, a.Nav.Page(), a.Focus.Current, a.Nav.MenuOpen(), a.Layout, a.Width)
}

// mobilePanel is empty unless the layout is mobile and the menu is open.
func (a *AppModel) mobilePanel() string {
	if a.Layout != LayoutMobile || !a.Nav.MenuOpen() {
		return ""
	}
	return renderMobilePanel(a.Brand, a.Entries, a.Nav.Page(), a.Focus.Current, a.Width)
}

func (a *AppModel) status() string {
	if box := RenderKeybindHelp(a.KeyHandler, a.Layout, a.Width); box != "" {
		return box
	}
	hint := "1-5 páginas · tab/enter navegar · c contato · SPC comandos · q sair"
	if a.Layout == LayoutMobile {
		hint = "m menu · " + hint
	}
	return Styles.Hint.Render(textutil.Truncate(hint, a.Width))
}

// refreshContent re-renders the active page and footer into the page region.
func (a *AppModel) refreshContent() {
	a.Layout = LayoutFor(a.Width, a.Breakpoint)
	content := renderPage(a.Nav.Current(), a.Width) + "\n" +
		renderFooter(a.Brand, a.Entries, a.Layout, a.Width)
	a.Page.SetContent(content)
}

// relayout gives the page region whatever height the chrome leaves over.
func (a *AppModel) relayout() {
	a.Layout = LayoutFor(a.Width, a.Breakpoint)
	used := lipgloss.Height(a.header()) + lipgloss.Height(a.status())
	if panel := a.mobilePanel(); panel != "" {
		used += lipgloss.Height(panel)
	}
	a.Page.SetSize(a.Width, max(1, a.Height-used))
}
