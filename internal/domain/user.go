package domain

// User represents a registered user of the application.
//
// The ID is generated by the database on insert and never changes
// afterwards. No uniqueness is enforced on Username or Email.
//
// NOTE: the password is stored and served as plaintext. This mirrors the
// schema this service is contracted to expose and is a known defect, not a
// design choice; log output is redacted so the value never reaches logs.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser creates an unsaved User from caller-supplied fields.
// The ID is zero until the row is persisted.
func NewUser(username, email, password string) *User {
	return &User{
		Username: username,
		Email:    email,
		Password: password,
	}
}
