package domain

type Restaurant struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Cuisine     string  `json:"cuisine"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url,omitempty"`
	MapURL      string  `json:"map_url,omitempty"`
}

func (r Restaurant) RowID() int64 { return r.ID }
