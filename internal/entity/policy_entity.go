package entity

// Policy is a titled company-rule snippet shown to the model as context
// and to the user as reference.
type Policy struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}
