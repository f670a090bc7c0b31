package domain

import "time"

// User is a player account. Signals is the in-game currency balance and is
// never negative.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	Username  string    `json:"username"`
	PhotoURL  *string   `json:"photoUrl"`
	Signals   int64     `json:"signals"`
	CreatedAt time.Time `json:"-"`
}

// DisplayName returns the name shown next to the user's market listings.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return u.Username
	}
	return u.ID
}

// Profile carries client-provided presentation fields for a user.
type Profile struct {
	FirstName string  `json:"firstName"`
	Username  string  `json:"username"`
	PhotoURL  *string `json:"photoUrl"`
}
