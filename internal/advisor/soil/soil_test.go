package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	for _, slug := range []string{"clay", "sandy", "loamy", "silty", "peaty", "chalky", "red"} {
		st, ok := Lookup(slug)
		assert.True(t, ok, slug)
		assert.Equal(t, slug, st.Slug)
		assert.NotEmpty(t, st.Crops)
	}

	_, ok := Lookup("Clay")
	assert.True(t, ok)

	_, ok = Lookup("lunar")
	assert.False(t, ok)
}

func TestAllIsOrderedCopy(t *testing.T) {
	all := All()
	assert.Len(t, all, 7)
	assert.Equal(t, "clay", all[0].Slug)

	all[0].Name = "changed"
	st, _ := Lookup("clay")
	assert.Equal(t, "Clay Soil", st.Name)
}
