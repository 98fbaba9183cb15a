package domain

import "time"

// Collection names one logical document collection.
type Collection string

// Document collections.
const (
	CollectionItems        Collection = "items"
	CollectionPersons      Collection = "persons"
	CollectionReviews      Collection = "reviews"
	CollectionPublishers   Collection = "publishers"
	CollectionTransactions Collection = "transactions"
)

// Record is implemented by pointers to every stored entity.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	SetCreatedAt(t time.Time)
	SetUpdatedAt(t time.Time)
}

// Meta carries the storage-assigned fields shared by all records.
type Meta struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// RecordID returns the record identifier.
func (m *Meta) RecordID() string { return m.ID }

// SetRecordID assigns the record identifier.
func (m *Meta) SetRecordID(id string) { m.ID = id }

// SetCreatedAt stamps the creation time.
func (m *Meta) SetCreatedAt(t time.Time) { m.CreatedAt = t }

// SetUpdatedAt stamps the last update time.
func (m *Meta) SetUpdatedAt(t time.Time) { m.UpdatedAt = &t }
