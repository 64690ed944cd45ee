package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServesAnyOf(t *testing.T) {
	p := Professional{ServiceCities: []string{"Moscow", "Khimki"}}

	assert.True(t, p.ServesAnyOf(map[string]struct{}{"Khimki": {}}))
	assert.False(t, p.ServesAnyOf(map[string]struct{}{"Saint Petersburg": {}}))
	assert.False(t, p.ServesAnyOf(nil))

	empty := Professional{}
	assert.False(t, empty.ServesAnyOf(map[string]struct{}{"Moscow": {}}))
}

func TestQualifiedFor(t *testing.T) {
	p := Professional{TreatmentIDs: []int64{10, 20}}

	assert.True(t, p.QualifiedFor(20))
	assert.False(t, p.QualifiedFor(30))

	var empty Professional
	assert.False(t, empty.QualifiedFor(10))
}
