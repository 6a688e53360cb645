package roster

// Entry is one alumnus/professional record built from a spreadsheet row.
// Field names match the sheet's header row 1:1. Image-bearing fields hold
// the normalized asset reference ("" means no image). Entries are rebuilt
// wholesale on every fetch; tier/region are never stored, only derived
// from Subtitle.
type Entry struct {
	Name              string `json:"name"`
	Subtitle          string `json:"subtitle"`
	Image             string `json:"image,omitempty"`
	SubtitleIcon      string `json:"subtitleIcon,omitempty"`
	Hometown          string `json:"hometown,omitempty"`
	School            string `json:"school,omitempty"`
	YouthClub         string `json:"youthClub,omitempty"`
	YouthClubIcon     string `json:"youthClubIcon,omitempty"`
	YouthNationalTeam string `json:"youthNationalTeam,omitempty"`
	YouthNationIcon   string `json:"youthNationIcon,omitempty"`
	Position          string `json:"position,omitempty"`
	Club              string `json:"club,omitempty"`
	ClubIcon          string `json:"clubIcon,omitempty"`
	NationalTeam      string `json:"nationalTeam,omitempty"`
	NationIcon        string `json:"nationIcon,omitempty"`
	College           string `json:"college,omitempty"`
	CollegeIcon       string `json:"collegeIcon,omitempty"`
}

// setField assigns a raw cell value to the field named by the sheet header.
// Unknown headers are ignored so adding a column to the sheet never breaks
// the fetch.
func (e *Entry) setField(header, value string) {
	switch header {
	case "name":
		e.Name = value
	case "subtitle":
		e.Subtitle = value
	case "image":
		e.Image = value
	case "subtitleIcon":
		e.SubtitleIcon = value
	case "hometown":
		e.Hometown = value
	case "school":
		e.School = value
	case "youthClub":
		e.YouthClub = value
	case "youthClubIcon":
		e.YouthClubIcon = value
	case "youthNationalTeam":
		e.YouthNationalTeam = value
	case "youthNationIcon":
		e.YouthNationIcon = value
	case "position":
		e.Position = value
	case "club":
		e.Club = value
	case "clubIcon":
		e.ClubIcon = value
	case "nationalTeam":
		e.NationalTeam = value
	case "nationIcon":
		e.NationIcon = value
	case "college":
		e.College = value
	case "collegeIcon":
		e.CollegeIcon = value
	}
}

// normalizeAssets runs the asset normalizer over every image-bearing column.
func (e *Entry) normalizeAssets() {
	e.Image = NormalizeAsset(e.Image)
	e.SubtitleIcon = NormalizeAsset(e.SubtitleIcon)
	e.YouthClubIcon = NormalizeAsset(e.YouthClubIcon)
	e.YouthNationIcon = NormalizeAsset(e.YouthNationIcon)
	e.NationIcon = NormalizeAsset(e.NationIcon)
	e.ClubIcon = NormalizeAsset(e.ClubIcon)
	e.CollegeIcon = NormalizeAsset(e.CollegeIcon)
}

// Sort orders accepted by the query engine.
const (
	SortLastNameAZ  = "Last Name A-Z"
	SortLastNameZA  = "Last Name Z-A"
	SortFirstNameAZ = "First Name A-Z"
	SortFirstNameZA = "First Name Z-A"
)

// SortOptions lists the accepted sort orders in display order.
var SortOptions = []string{SortLastNameAZ, SortLastNameZA, SortFirstNameAZ, SortFirstNameZA}

// Filter categories and their fixed sub-values. Collegiate entries carry a
// competition tier, professional entries a geographic region.
const (
	CategoryCollegiate   = "Collegiate"
	CategoryProfessional = "Professional"
)

// FilterTree maps each category to its closed set of sub-values.
var FilterTree = map[string][]string{
	CategoryCollegiate:   {"D1", "D2", "D3"},
	CategoryProfessional: {"North America", "Europe", "Oceania"},
}
