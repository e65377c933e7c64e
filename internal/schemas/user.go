package schemas

// UserSchema describes a portal user, including performers and assigned
// managers inside orders.
var UserSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"_id":       map[string]any{"type": "string"},
		"username":  map[string]any{"type": "string"},
		"firstName": map[string]any{"type": "string"},
		"lastName":  map[string]any{"type": "string"},
		"roles":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"createdOn": map[string]any{"type": "string"},
	},
	"required":             []string{"_id", "username", "firstName", "lastName", "roles", "createdOn"},
	"additionalProperties": false,
}

// LoginSchema covers POST /api/login responses.
var LoginSchema = envelope("User", UserSchema)

var GetAllUsersSchema = listEnvelope("Users", UserSchema)
