package booking

import "strings"

// detailsHeading introduces the optional labeled detail lines appended to
// the client's vision statement.
const detailsHeading = "Event-Specific Details"

// Details carries the optional event-specific fields of the booking form.
// Every field is free text and may be empty.
type Details struct {
	Age       string `json:"age"`
	Theme     string `json:"theme"`
	Cake      string `json:"cake"`
	VenueType string `json:"venue_type"`
	Month     string `json:"month"`
	Goal      string `json:"goal"`
	DressCode string `json:"dress_code"`
	Product   string `json:"product"`
	Audience  string `json:"audience"`
	Other     string `json:"other"`
}

// ComposeVision assembles the stored narrative: the free-form vision text
// followed by a "Label: value" line per non-empty detail under the
// details heading. Order of the lines is fixed. When no detail is present
// the vision text is stored alone; when the vision text is empty the
// details section stands on its own.
func ComposeVision(vision string, d Details) string {
	labeled := []struct {
		label string
		value string
	}{
		{"Age", d.Age},
		{"Theme", d.Theme},
		{"Cake", d.Cake},
		{"Venue Type", d.VenueType},
		{"Month", d.Month},
		{"Goal", d.Goal},
		{"Dress Code", d.DressCode},
		{"Product", d.Product},
		{"Audience", d.Audience},
		{"Other", d.Other},
	}

	lines := make([]string, 0, len(labeled))
	for _, f := range labeled {
		if v := strings.TrimSpace(f.value); v != "" {
			lines = append(lines, f.label+": "+v)
		}
	}

	vision = strings.TrimSpace(vision)
	if len(lines) == 0 {
		return vision
	}
	section := detailsHeading + "\n" + strings.Join(lines, "\n")
	if vision == "" {
		return section
	}
	return vision + "\n\n" + section
}
