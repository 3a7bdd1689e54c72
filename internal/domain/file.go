package domain

import "time"

// UploadedFile is one uploaded IDML document known to the client.
// Records are created on a successful upload response and removed on
// explicit deletion; they are never mutated in between.
type UploadedFile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
