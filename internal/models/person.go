package models

// Person is one summary entry from the catalog list endpoint. The server does
// not own or mutate these; they are decoded straight off the upstream
// response. ID is derived from the trailing segment of URL so the list view
// can link to /resource/{id}.
type Person struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	URL    string `json:"url"`
	ID     string `json:"id"`
}

// PersonDetail is the richer record returned by the catalog detail endpoint.
type PersonDetail struct {
	Name      string   `json:"name"`
	Height    string   `json:"height"`
	Mass      string   `json:"mass"`
	HairColor string   `json:"hair_color"`
	SkinColor string   `json:"skin_color"`
	EyeColor  string   `json:"eye_color"`
	BirthYear string   `json:"birth_year"`
	Gender    string   `json:"gender"`
	Homeworld string   `json:"homeworld"`
	Films     []string `json:"films"`
	Vehicles  []string `json:"vehicles"`
	Starships []string `json:"starships"`
}
