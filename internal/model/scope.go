package model

// Scope carries the identity of the authenticated caller.
// Every todo operation is row-scoped to Scope.UserID; handlers never pass a
// user ID through request payloads.
type Scope struct {
	UserID string
	Email  string
}
