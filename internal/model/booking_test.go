package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusApproved))
	assert.True(t, ValidStatus(StatusRejected))
	assert.False(t, ValidStatus("approved")) // case-sensitive enum
	assert.False(t, ValidStatus("Cancelled"))
	assert.False(t, ValidStatus(""))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusApproved, StatusPending, true}, // admin correction
		{StatusRejected, StatusPending, true},
		{StatusApproved, StatusRejected, false}, // terminal states never flip directly
		{StatusRejected, StatusApproved, false},
		{StatusPending, StatusPending, false},
		{"Unknown", StatusApproved, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
