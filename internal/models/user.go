package models

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is a portal user, also used for order performers and managers.
type User struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Roles     []Role `json:"roles"`
	CreatedOn string `json:"createdOn"`
}

// UserEnvelope wraps a single user response; login returns the same shape.
type UserEnvelope struct {
	User         User    `json:"User"`
	IsSuccess    bool    `json:"IsSuccess"`
	ErrorMessage *string `json:"ErrorMessage"`
}

// UsersEnvelope wraps the users listing.
type UsersEnvelope struct {
	Users        []User  `json:"Users"`
	IsSuccess    bool    `json:"IsSuccess"`
	ErrorMessage *string `json:"ErrorMessage"`
}
