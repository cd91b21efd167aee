package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// SplitAuthorization splits an Authorization header into its scheme and
// payload and returns the payload. The header must consist of exactly
// two space-separated tokens and the first must match the expected
// scheme case-insensitively.
func SplitAuthorization(header, scheme string) (string, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return "", fmt.Errorf("authorization header must be '%s <token>': %w", scheme, ErrMalformedRequest)
	}
	if !strings.EqualFold(parts[0], scheme) {
		return "", fmt.Errorf("expected %s scheme: %w", scheme, ErrMalformedRequest)
	}
	return parts[1], nil
}

// DecodeBasicCredentials parses an "Authorization: Basic base64(email:password)"
// header value and returns the email and password.
func DecodeBasicCredentials(header string) (string, string, error) {
	payload, err := SplitAuthorization(header, "Basic")
	if err != nil {
		return "", "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", fmt.Errorf("invalid base64 credentials: %w", ErrMalformedRequest)
	}

	fields := strings.Split(string(decoded), ":")
	if len(fields) != 2 {
		return "", "", fmt.Errorf("credentials must be 'email:password': %w", ErrMalformedRequest)
	}

	return fields[0], fields[1], nil
}

// EncodeBasicCredentials builds the base64 payload of a Basic
// Authorization header from an email and password.
func EncodeBasicCredentials(email, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
}
