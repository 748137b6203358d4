package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	owner := uint(7)
	other := uint(8)

	assert.True(t, CanModify(owner, "USER", &owner), "owner may modify")
	assert.False(t, CanModify(other, "USER", &owner), "non-owner may not")
	assert.True(t, CanModify(other, RoleAdmin, &owner), "admin may modify anything")

	// Orphaned resource (creator deleted): admin only
	assert.False(t, CanModify(owner, "USER", nil))
	assert.True(t, CanModify(owner, RoleAdmin, nil))
}
