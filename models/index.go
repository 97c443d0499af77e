package models

// Index describes an entity change published on the notification bus.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id,omitempty"`
	ItemType   string `json:"item_type,omitempty"`
}
