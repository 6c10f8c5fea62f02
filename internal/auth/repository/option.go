package repository

// CreateUserOptions holds parameters for inserting a new User. The ID is
// assigned by the caller.
type CreateUserOptions struct {
	ID           string
	Email        string
	PasswordHash string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}
