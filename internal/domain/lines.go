package domain

import "sort"

// Line is a London transit line users can mark as a favorite
type Line struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Mode string `json:"mode"`
}

// Transport modes
const (
	ModeTube       = "tube"
	ModeDLR        = "dlr"
	ModeOverground = "overground"
	ModeElizabeth  = "elizabeth-line"
	ModeTram       = "tram"
)

var lines = []Line{
	{ID: "bakerloo", Name: "Bakerloo", Mode: ModeTube},
	{ID: "central", Name: "Central", Mode: ModeTube},
	{ID: "circle", Name: "Circle", Mode: ModeTube},
	{ID: "district", Name: "District", Mode: ModeTube},
	{ID: "hammersmith-city", Name: "Hammersmith & City", Mode: ModeTube},
	{ID: "jubilee", Name: "Jubilee", Mode: ModeTube},
	{ID: "metropolitan", Name: "Metropolitan", Mode: ModeTube},
	{ID: "northern", Name: "Northern", Mode: ModeTube},
	{ID: "piccadilly", Name: "Piccadilly", Mode: ModeTube},
	{ID: "victoria", Name: "Victoria", Mode: ModeTube},
	{ID: "waterloo-city", Name: "Waterloo & City", Mode: ModeTube},
	{ID: "dlr", Name: "DLR", Mode: ModeDLR},
	{ID: "elizabeth", Name: "Elizabeth line", Mode: ModeElizabeth},
	{ID: "liberty", Name: "Liberty", Mode: ModeOverground},
	{ID: "lioness", Name: "Lioness", Mode: ModeOverground},
	{ID: "mildmay", Name: "Mildmay", Mode: ModeOverground},
	{ID: "suffragette", Name: "Suffragette", Mode: ModeOverground},
	{ID: "weaver", Name: "Weaver", Mode: ModeOverground},
	{ID: "windrush", Name: "Windrush", Mode: ModeOverground},
	{ID: "tram", Name: "Tram", Mode: ModeTram},
}

var linesByID = func() map[string]Line {
	m := make(map[string]Line, len(lines))
	for _, l := range lines {
		m[l.ID] = l
	}
	return m
}()

// Lines returns a copy of the line catalog
func Lines() []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// IsValidLine reports whether id names a line in the catalog
func IsValidLine(id string) bool {
	_, ok := linesByID[id]
	return ok
}

// NormalizeLines removes duplicates and sorts line IDs
func NormalizeLines(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
