package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenData is what the core trusts from the identity provider: the
// authenticated owner id carried in the token's subject claim.
type TokenData struct {
	UserID int
}

// ParseTokenDataCtx extracts and verifies the bearer token of the request.
// The signing secret comes from MOIM_JWT_SECRET.
func ParseTokenDataCtx(c echo.Context) (*TokenData, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return nil, errors.New("missing bearer token")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(os.Getenv("MOIM_JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid auth token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, errors.New("token has no subject")
	}

	userID, err := strconv.Atoi(sub)
	if err != nil {
		return nil, errors.New("token subject is not a user id")
	}

	return &TokenData{UserID: userID}, nil
}
