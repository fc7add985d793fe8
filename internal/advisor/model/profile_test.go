package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileResolveAppliesDefaults(t *testing.T) {
	v := Profile{City: "  "}.Resolve(DefaultVisitor)
	assert.Equal(t, "Farmer", v.Name)
	assert.Equal(t, "Delhi", v.City)
	assert.Equal(t, "IN", v.Country)
	assert.Equal(t, "en", v.Language)
	assert.False(t, v.PermissionsGranted)
}

func TestProfileResolveKeepsValues(t *testing.T) {
	v := Profile{Name: "Asha", City: "Pune", Country: "IN", Language: "mr", PermissionsGranted: true}.Resolve(DefaultVisitor)
	assert.Equal(t, Visitor{Name: "Asha", City: "Pune", Country: "IN", Language: "mr", PermissionsGranted: true}, v)
}

func TestNextOnboardingStep(t *testing.T) {
	assert.Equal(t, "/", Profile{}.NextOnboardingStep())
	assert.Equal(t, "/register", Profile{Language: "hi"}.NextOnboardingStep())
	assert.Equal(t, "/permissions", Profile{Language: "hi", Name: "Ravi"}.NextOnboardingStep())
	assert.Equal(t, "", Profile{Language: "hi", Name: "Ravi", PermissionsGranted: true}.NextOnboardingStep())
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, "hi", NormalizeLanguage(" HI "))
	assert.Equal(t, "en", NormalizeLanguage("klingon"))
	assert.Equal(t, "en", NormalizeLanguage(""))
}
