package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey_DistinctRadii(t *testing.T) {
	// Радиусы из одного целого диапазона не должны делить ключ
	assert.NotEqual(t, cacheKey("Moscow", 40), cacheKey("Moscow", 40.4))
	assert.NotEqual(t, cacheKey("Moscow", 40.4), cacheKey("Moscow", 40.44))
	assert.NotEqual(t, cacheKey("Moscow", 40), cacheKey("Moscow", -1))
}

func TestCacheKey_Stable(t *testing.T) {
	assert.Equal(t, "coverage:Moscow:40", cacheKey("Moscow", 40))
	assert.Equal(t, "coverage:Moscow:40.4", cacheKey("Moscow", 40.4))
	assert.Equal(t, "coverage:Moscow:-1", cacheKey("Moscow", -1))
	assert.Equal(t, cacheKey("Moscow", 20.5), cacheKey("Moscow", 20.5))
}
