package model

// Location is the embedded place information of an attraction.
type Location struct {
	City    string  `json:"city"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Attraction represents a single destination inside a country.
type Attraction struct {
	ID           string   `json:"id"`
	CountryID    string   `json:"country"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MainImageURL string   `json:"mainImageUrl"`
	Location     Location `json:"location"`
	Type         string   `json:"type"`
	RatingAvg    float64  `json:"ratingAvg"`
	RatingCount  int      `json:"ratingCount"`
	EntranceFee  int64    `json:"entranceFee"`
	Activities   []string `json:"activities"`
}
