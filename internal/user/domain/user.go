package domain

import "time"

type ID string

type User struct {
	ID        ID
	Username  string
	CreatedAt time.Time
}
