package entity

import "time"

// Category groups articles. Name is unique.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
