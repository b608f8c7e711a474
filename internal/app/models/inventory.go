package models

// Inventory and Maintenance track hostel assets. Both are declared
// for schema parity with the rest of the system; no route exposes
// them yet.

// Inventory defines an asset record in the 'inventory' collection.
type Inventory struct {
	Name     string `bson:"name" json:"name" binding:"required"`
	Quantity int    `bson:"quantity" json:"quantity"`
	HostelID string `bson:"hostel_id,omitempty" json:"hostel_id,omitempty"`
}

// Maintenance defines a maintenance job in the 'maintenance'
// collection.
type Maintenance struct {
	ItemID      string  `bson:"item_id" json:"item_id" binding:"required"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Date        string  `bson:"date" json:"date" binding:"required,datetime=2006-01-02"`
	Cost        float64 `bson:"cost,omitempty" json:"cost,omitempty"`
	Status      string  `bson:"status" json:"status" binding:"omitempty,oneof=pending in_progress done"`
}
