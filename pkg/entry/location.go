package entry

// Location is a reusable place from the location catalog. Entries keep their
// own copy, so catalog edits and deletions never reach past entries.
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Snapshot returns an independent copy of l, or nil.
func (l *Location) Snapshot() *Location {
	if l == nil {
		return nil
	}
	cp := *l
	return &cp
}

// SampleLocations returns the starter location catalog.
func SampleLocations(newID func() string) []Location {
	return []Location{
		{ID: newID(), Name: "Workshop"},
		{ID: newID(), Name: "Studio"},
		{ID: newID(), Name: "Home"},
	}
}
