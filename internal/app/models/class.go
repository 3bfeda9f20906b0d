package models

// Class is reference data owned by the records service; the scheduler only
// reads its identifier and section label.
type Class struct {
	ID      string `json:"id" bson:"_id,omitempty"`
	Name    string `json:"name" bson:"name"`
	Section string `json:"section" bson:"section"`
}
