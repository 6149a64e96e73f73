package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_EveryPageMatchesItsID(t *testing.T) {
	titles := map[string]PageID{}
	for _, id := range AllPages() {
		p := Render(id)
		assert.Equal(t, id, p.ID)
		assert.NotEmpty(t, p.Title, "page %v has no title", id)
		assert.NotEmpty(t, p.Sections, "page %v has no sections", id)
		if other, dup := titles[p.Title]; dup {
			t.Errorf("pages %v and %v share title %q", other, id, p.Title)
		}
		titles[p.Title] = id
	}
}

func TestRender_Deterministic(t *testing.T) {
	for _, id := range AllPages() {
		assert.Equal(t, Render(id), Render(id))
	}
}

func TestRender_UnknownFallsBackToHome(t *testing.T) {
	assert.Equal(t, HomePage(), Render(PageID(99)))
}

func TestDefaultBrand(t *testing.T) {
	b := DefaultBrand()
	assert.Equal(t, "Louisiane Aurora", b.Name)
	assert.Len(t, b.Specialties, 3)
	assert.Len(t, b.Social, 3)
	assert.Contains(t, b.Copyright, "Todos os direitos reservados")
}
