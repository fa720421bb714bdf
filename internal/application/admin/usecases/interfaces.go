package usecases

// TokenIssuer produces the JWT pair handed out on login.
type TokenIssuer interface {
	GenerateAccessToken(adminID uint, email, role string) (string, error)
	GenerateRefreshToken(adminID uint) (string, error)
}
