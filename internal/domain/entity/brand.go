package entity

import "time"

// Brand marca de perfume.
type Brand struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
