package models

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the authenticated identity held for the current visitor. The
// token is the bearer credential issued by the listing API; it stays on the
// server side and is never sent to the browser.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Credentials is the request body for the login and register endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
