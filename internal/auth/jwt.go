package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	model "github.com/glkeru/employeehub/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 24 * time.Hour

// Токены доступа HS256
type JWTTokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func NewJWTTokenManager(secret string, issuer string, ttl time.Duration) *JWTTokenManager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTTokenManager{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

func (m *JWTTokenManager) Generate(account model.Account) (string, time.Time, error) {
	if len(m.secret) == 0 {
		return "", time.Time{}, errors.New("jwt secret not configured")
	}
	now := m.now()
	expiresAt := now.Add(m.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (m *JWTTokenManager) Parse(token string) (model.Caller, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return model.Caller{}, err
	}
	if !parsed.Valid {
		return model.Caller{}, errors.New("invalid token claims")
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return model.Caller{}, errors.New("invalid token subject")
	}
	role := model.Role(c.Role)
	if !role.Valid() {
		return model.Caller{}, errors.New("invalid token role")
	}
	return model.Caller{ID: id, Role: role}, nil
}
