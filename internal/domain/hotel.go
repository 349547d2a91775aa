package domain

type Hotel struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url,omitempty"`
	MapURL      string  `json:"map_url,omitempty"`
	Amenities   string  `json:"amenities,omitempty"`
}

func (h Hotel) RowID() int64 { return h.ID }

// Price buckets used by the public hotel listing.
const (
	BucketBudget = "budget" // < 200
	BucketMid    = "mid"    // 200..299
	BucketLuxury = "luxury" // >= 300
)
