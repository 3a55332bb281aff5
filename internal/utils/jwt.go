package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the JWT helpers. Callers above the service layer never
// see them directly: the token service folds all of them into a single
// "invalid token" kind.
var (
	ErrEmptySignKey       = errors.New("empty token sign key")
	ErrMissingClaim       = errors.New("required claim is missing")
	ErrInvalidClaimType   = errors.New("claim has unexpected type")
	ErrInvalidAuthzHeader = errors.New("invalid authorization header")
)

// SignClaims serializes claims into a JWT and signs it with HMAC-SHA256
// using signKey. The returned string is the compact JWS form.
//
// Example usage:
//
//	token, err := utils.SignClaims(map[string]any{"user_id": 42}, "secret")
func SignClaims(claims map[string]any, signKey string) (string, error) {
	if signKey == "" {
		return "", ErrEmptySignKey
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims))
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ParseClaims verifies the signature of tokenString with signKey and returns
// the decoded claim set.
//
// Validation includes:
//   - signing method must be HS256;
//   - the "exp" claim, when present, must lie in the future;
//   - the "iss" claim must equal issuer when issuer is non-empty;
//   - every key in requiredKeys must be present.
//
// Numeric claims are decoded as [json.Number] so that integer identifiers
// survive the round trip without float rounding.
func ParseClaims(tokenString, signKey, issuer string, requiredKeys ...string) (map[string]any, error) {
	if signKey == "" {
		return nil, ErrEmptySignKey
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithJSONNumber(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	for _, key := range requiredKeys {
		if _, ok := claims[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingClaim, key)
		}
	}

	return claims, nil
}

// ClaimInt64 reads an integer claim decoded by [ParseClaims].
func ClaimInt64(claims map[string]any, key string) (int64, error) {
	value, ok := claims[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingClaim, key)
	}

	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidClaimType, key, err)
		}
		return n, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidClaimType, key)
		}
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidClaimType, key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s is %T", ErrInvalidClaimType, key, value)
	}
}

// ClaimString reads a string claim decoded by [ParseClaims].
func ClaimString(claims map[string]any, key string) (string, error) {
	value, ok := claims[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingClaim, key)
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T", ErrInvalidClaimType, key, value)
	}

	return s, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthzHeader
	}
	return parts[1], nil
}
