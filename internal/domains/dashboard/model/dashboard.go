package model

// Section là một bảng nội dung hiển thị trên dashboard
type Section string

const (
	SectionArtists  Section = "artists"
	SectionReleases Section = "releases"
	SectionEvents   Section = "events"
	SectionPromos   Section = "promos"
)

// Sections theo thứ tự hiển thị
var Sections = []Section{SectionArtists, SectionReleases, SectionEvents, SectionPromos}

type Counts struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type DemoCounts struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

// Summary - response của GET /admin/dashboard
type Summary struct {
	Artists  Counts     `json:"artists"`
	Releases Counts     `json:"releases"`
	Events   Counts     `json:"events"`
	Promos   Counts     `json:"promos"`
	Demos    DemoCounts `json:"demos"`
}

// Set ghi counts vào đúng field của section
func (s *Summary) Set(section Section, c Counts) {
	switch section {
	case SectionArtists:
		s.Artists = c
	case SectionReleases:
		s.Releases = c
	case SectionEvents:
		s.Events = c
	case SectionPromos:
		s.Promos = c
	}
}
