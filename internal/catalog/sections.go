// Package catalog holds the process-wide immutable configuration tables:
// curriculum sections, badge definitions and the site search index.
// There is no runtime mutation path, everything here is fixed at compile time.
package catalog

type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	XP    int    `json:"xp"`
}

// Sections is the fixed curriculum, each entry carries the XP awarded
// for first-time completion
var Sections = []Section{
	{ID: "foundations", Title: "Foundations", XP: 100},
	{ID: "learning", Title: "Machine Learning", XP: 150},
	{ID: "neural", Title: "Neural Networks", XP: 150},
	{ID: "deep", Title: "Deep Learning", XP: 200},
	{ID: "modern", Title: "Modern AI", XP: 150},
	{ID: "sequential", Title: "Sequential Flow", XP: 100},
	{ID: "ethics", Title: "Ethics & Society", XP: 100},
	{ID: "glossary", Title: "Glossary", XP: 50},
}

// CoreSections gate certificate eligibility
var CoreSections = []string{"foundations", "learning", "neural", "deep", "modern", "ethics"}

func SectionByID(id string) (Section, bool) {
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func ValidSection(id string) bool {
	_, ok := SectionByID(id)
	return ok
}
