package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	name, ok := Category("gifts")
	assert.True(t, ok)
	assert.Equal(t, "Gifts", name)

	name, ok = Category("baby-kids")
	assert.True(t, ok)
	assert.Equal(t, "Baby", name)

	_, ok = Category("woodworking")
	assert.False(t, ok)
}

func TestMachine(t *testing.T) {
	name, ok := Machine("scan-n-cut")
	assert.True(t, ok)
	assert.Equal(t, "Scan N Cut", name)

	_, ok = Machine("longarm")
	assert.False(t, ok)
}

func TestCategoriesDropsUnmapped(t *testing.T) {
	got := Categories([]string{"gifts", "woodworking", "seasonal"})
	assert.Equal(t, []string{"Gifts", "Seasonal"}, got)
}

func TestCategoriesAllUnmapped(t *testing.T) {
	got := Categories([]string{"woodworking", "pottery"})
	assert.Empty(t, got)
}

func TestMachinesDropsUnmapped(t *testing.T) {
	got := Machines([]string{"accuquilt", "longarm", "embroidery"})
	assert.Equal(t, []string{"AccuQuilt", "Embroidery"}, got)
}
