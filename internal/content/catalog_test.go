package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mediexplain/internal/models"
)

func TestGetLanguage(t *testing.T) {
	l, ok := GetLanguage("ta")
	assert.True(t, ok)
	assert.Equal(t, "Tamil", l.Label)

	_, ok = GetLanguage("fr")
	assert.False(t, ok)
	assert.Len(t, Languages(), 6)
}

func TestGuidanceFallsBackToInfo(t *testing.T) {
	assert.Equal(t, "#dc2626", GuidanceFor(models.RiskHigh).Color)
	assert.Equal(t, GuidanceFor(models.RiskInfo), GuidanceFor(""))
	assert.Equal(t, GuidanceFor(models.RiskInfo), GuidanceFor("SEVERE"))
}

func TestTipsReturnsCopy(t *testing.T) {
	got := Tips()
	got[0].Category = "changed"
	assert.Equal(t, "Diet", Tips()[0].Category)
}
