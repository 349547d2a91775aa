package domain

type SiteType string

const (
	SiteHistorical SiteType = "Historical"
	SiteReligious  SiteType = "Religious"
	SiteNatural    SiteType = "Natural"
)

func (t SiteType) Valid() bool {
	switch t {
	case SiteHistorical, SiteReligious, SiteNatural:
		return true
	}
	return false
}

// Sightseeing is one attraction row. ticket_price is the canonical
// column name; older rows that carried "price" were migrated.
type Sightseeing struct {
	ID          int64    `json:"id,omitempty"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Type        SiteType `json:"type"`
	TicketPrice float64  `json:"ticket_price"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url,omitempty"`
	MapURL      string   `json:"map_url,omitempty"`
}

func (s Sightseeing) RowID() int64 { return s.ID }
