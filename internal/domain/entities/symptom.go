package entities

// Symptom is a selectable symptom from the reference catalog
type Symptom struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
