// Package token issues and validates the HS256 access/refresh token pair.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/farmergpt/internal/config"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrRevokedToken     = errors.New("token has been revoked")
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Claims struct {
	Username string `json:"username"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// UserID decodes the numeric subject.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

type Pair struct {
	Access  string
	Refresh string
}

type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		accessSecret:  []byte(cfg.JWTAccessSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		issuer:        cfg.JWTIssuer,
	}
}

func (s *Service) create(userID uint, username, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: username,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *Service) IssueAccess(userID uint, username string) (string, error) {
	tok, err := s.create(userID, username, TypeAccess, s.accessTTL, s.accessSecret)
	if err != nil {
		return "", fmt.Errorf("creating access token: %w", err)
	}
	return tok, nil
}

func (s *Service) Issue(userID uint, username string) (*Pair, error) {
	access, err := s.IssueAccess(userID, username)
	if err != nil {
		return nil, err
	}

	refresh, err := s.create(userID, username, TypeRefresh, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("creating refresh token: %w", err)
	}

	return &Pair{Access: access, Refresh: refresh}, nil
}

func (s *Service) ParseAccess(tokenString string) (*Claims, error) {
	return s.parse(tokenString, s.accessSecret, TypeAccess)
}

func (s *Service) ParseRefresh(tokenString string) (*Claims, error) {
	return s.parse(tokenString, s.refreshSecret, TypeRefresh)
}

func (s *Service) parse(tokenString string, secret []byte, tokenType string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.issuer),
	)

	claims := &Claims{}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims.Type != tokenType {
		return nil, ErrInvalidTokenType
	}

	return claims, nil
}
