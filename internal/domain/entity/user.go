// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User is an account that can log in and call protected routes.
type User struct {
	ID           string // Store-generated identifier, hex encoded.
	Username     string // Login name. Not guaranteed unique by the store.
	PasswordHash string // Opaque salted hash, never the plaintext.
}

// View returns the user without its password hash.
func (u *User) View() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
	}
}

// UserView is the public projection of a User.
type UserView struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}
