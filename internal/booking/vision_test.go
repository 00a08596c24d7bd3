package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeVisionNoDetails(t *testing.T) {
	got := ComposeVision("A rustic outdoor wedding.", Details{})
	assert.Equal(t, "A rustic outdoor wedding.", got)
}

func TestComposeVisionWithDetails(t *testing.T) {
	got := ComposeVision("A rustic outdoor wedding.", Details{
		Theme:     "Rustic",
		VenueType: "Barn",
		Month:     "June",
	})
	want := "A rustic outdoor wedding.\n\n" +
		"Event-Specific Details\n" +
		"Theme: Rustic\n" +
		"Venue Type: Barn\n" +
		"Month: June"
	assert.Equal(t, want, got)
}

func TestComposeVisionDetailOrderIsFixed(t *testing.T) {
	got := ComposeVision("", Details{
		Other:    "fireworks",
		Age:      "30",
		Audience: "family",
	})
	want := "Event-Specific Details\n" +
		"Age: 30\n" +
		"Audience: family\n" +
		"Other: fireworks"
	assert.Equal(t, want, got)
}

func TestComposeVisionSkipsBlankValues(t *testing.T) {
	got := ComposeVision("Party.", Details{Theme: "   ", Cake: "chocolate"})
	assert.Equal(t, "Party.\n\nEvent-Specific Details\nCake: chocolate", got)
}
