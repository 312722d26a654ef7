package model

type Shop struct {
	BaseModel
	Name         string  `json:"name"`
	AvatarURL    string  `json:"avatar_url"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	ProductCount int     `json:"product_count"`
	Followers    int     `json:"followers"`
	Rating       float64 `json:"rating"`
	Description  string  `json:"description"`
}
