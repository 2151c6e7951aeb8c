package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devfolio/portfolio-backend/pkg/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("admin privileges required")
)

// AdminClaims is the decoded content of an admin token.
type AdminClaims struct {
	IsAdmin  bool   `json:"isAdmin"`
	Username string `json:"username"`
}

// AuthService validates the configured admin credential pair and issues
// stateless HS256 tokens. Credentials and secret are injected at construction
// so tests can run against fakes; nothing here reads the environment.
type AuthService struct {
	adminUsername string
	adminPassword string
	passwordHash  string // optional argon2id hash; preferred over adminPassword when set
	hmacSecret    []byte
	tokenTTL      time.Duration
}

func NewAuthService(username, password, passwordHash, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		adminUsername: username,
		adminPassword: password,
		passwordHash:  passwordHash,
		hmacSecret:    []byte(secret),
		tokenTTL:      tokenTTL,
	}
}

// Login checks the credential pair and returns a signed token on match.
// Username and password failures are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.adminUsername {
		return "", ErrInvalidCredentials
	}
	if !s.passwordMatches(password) {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"isAdmin":  true,
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.hmacSecret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

func (s *AuthService) passwordMatches(password string) bool {
	if s.passwordHash != "" {
		ok, err := utils.VerifyPassword(password, s.passwordHash)
		return err == nil && ok
	}
	if s.adminPassword == "" {
		return false
	}
	return password == s.adminPassword
}

// Verify validates signature and expiry. Expiry is surfaced distinctly so the
// client can prompt a re-login; every other failure is ErrInvalidToken.
func (s *AuthService) Verify(tokenStr string) (*AdminClaims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.hmacSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	isAdmin, _ := claims["isAdmin"].(bool)
	username, _ := claims["username"].(string)
	return &AdminClaims{IsAdmin: isAdmin, Username: username}, nil
}

// RequireAdmin verifies the token and additionally demands the admin claim.
func (s *AuthService) RequireAdmin(tokenStr string) (*AdminClaims, error) {
	claims, err := s.Verify(tokenStr)
	if err != nil {
		return nil, err
	}
	if !claims.IsAdmin {
		return nil, ErrForbidden
	}
	return claims, nil
}
