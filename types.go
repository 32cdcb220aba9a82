package authgate

import "context"

// TokenTypeBearer is the fixed token-type marker attached to every issued
// token pair.
const TokenTypeBearer = "bearer"

// Principal is the authenticated identity extracted from a verified access
// token. It is immutable for the duration of the request.
type Principal struct {
	Subject string
	Role    string
}

// TokenPair is returned by [Engine.Login] and, without the refresh half,
// by [Engine.Refresh].
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// UserRecord is the credential record returned by a [UserProvider].
type UserRecord struct {
	Identifier   string
	PasswordHash string
	Role         string
}

// UserProvider is the external user-lookup collaborator. Implementations
// return [ErrUserNotFound] for absent identifiers; the engine folds that
// into [ErrInvalidCredentials] so the distinction never leaves the login
// path.
type UserProvider interface {
	GetUserByIdentifier(ctx context.Context, identifier string) (UserRecord, error)
}
