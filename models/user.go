package models

// User is an administrator account. Password holds the bcrypt hash, never
// plaintext; is_admin is stored as an integer flag.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	IsAdmin  bool   `json:"is_admin" db:"is_admin"`
}
