package dto

type EducationalCardResponse struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Order       int     `json:"order"`
}
