package model

// Country represents one browsable destination country.
type Country struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ImageURL        string `json:"imageUrl"`
	AttractionCount int    `json:"attractionCount"`
}

// StatsResponse is the API response for global statistics.
type StatsResponse struct {
	TotalCountries     int `json:"totalCountries"`
	TotalAttractions   int `json:"totalAttractions"`
	TotalComments      int `json:"totalComments"`
	TotalRatings       int `json:"totalRatings"`
	UsersWithFavorites int `json:"usersWithFavorites"`
}
