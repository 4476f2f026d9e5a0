package user

// User is an account record. Password holds the bcrypt hash, never the
// plaintext, and is stripped before anything leaves the HTTP layer.
type User struct {
	ID       uint
	Username string
	Email    string
	Password string
	IsAdmin  bool
}
