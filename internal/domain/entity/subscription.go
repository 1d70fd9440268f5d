package entity

// Subscription identifies one Azure subscription to process.
type Subscription struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}
