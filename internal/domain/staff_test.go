package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStaffID_Format(t *testing.T) {
	t.Parallel()

	id := NewStaffID()
	assert.Regexp(t, regexp.MustCompile(`^staff_\d+_[0-9a-f]{5}$`), id)
}

func TestNewStaffID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		id := NewStaffID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
