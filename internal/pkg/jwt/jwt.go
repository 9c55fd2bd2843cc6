package jwt

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMissingClaims = errors.New("token claims are missing or malformed")

// Claims are the values an access token carries.
type Claims struct {
	UserID string
	Email  string
	Role   user.Role
	// EmployeeID is empty for accounts without an employee record.
	EmployeeID string
}

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (*JWTService, error) {
	expDuration, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	if expDuration <= 0 {
		return nil, errors.New("access token lifetime must be positive")
	}
	return &JWTService{
		accessTokenExpirationTime: expDuration,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
		now:                       time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    string(u.Role),
		"type":    "access",
		"exp":     expiresAt,
	}
	if u.EmployeeID != "" {
		claims["employee_id"] = u.EmployeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken keeps token on a deny list until the process exits.
func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = j.now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// ClaimsFromContext reads the claims jwtauth.Verifier stored in ctx.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, ErrMissingClaims
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Claims{}, ErrMissingClaims
	}
	email, _ := claims["email"].(string)
	employeeID, _ := claims["employee_id"].(string)

	return Claims{UserID: userID, Email: email, Role: user.Role(role), EmployeeID: employeeID}, nil
}
