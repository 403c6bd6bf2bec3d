package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLine(t *testing.T) {
	assert.True(t, IsValidLine("district"))
	assert.True(t, IsValidLine("elizabeth"))
	assert.False(t, IsValidLine("District"))
	assert.False(t, IsValidLine(""))
	assert.False(t, IsValidLine("not-a-line"))
}

func TestNormalizeLines(t *testing.T) {
	got := NormalizeLines([]string{"victoria", "district", "victoria", "bakerloo"})
	assert.Equal(t, []string{"bakerloo", "district", "victoria"}, got)

	assert.Empty(t, NormalizeLines(nil))
}

func TestLines_ReturnsCopy(t *testing.T) {
	first := Lines()
	first[0].Name = "changed"

	assert.NotEqual(t, "changed", Lines()[0].Name)
}

func TestUser_IsLinkedToAlexa(t *testing.T) {
	u := &User{}
	assert.False(t, u.IsLinkedToAlexa())

	empty := ""
	u.AlexaToken = &empty
	assert.False(t, u.IsLinkedToAlexa())

	token := "abc"
	u.AlexaToken = &token
	assert.True(t, u.IsLinkedToAlexa())
}
