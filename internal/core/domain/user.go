package domain

import "time"

// User models a registered account. The password hash never leaves the
// server: it is excluded from every JSON rendering.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the claim set carried inside a bearer token. Verification
// trusts these fields as encoded at issuance time; a later username or email
// change is invisible until the user logs in again.
type Identity struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
