package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // argon2 encoded
	Phone        string // optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Owner is the public projection of a User attached to appointments.
type Owner struct {
	ID    string
	Name  string
	Email string
	Phone string
}

func (u User) Owner() *Owner {
	return &Owner{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
