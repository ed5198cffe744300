package auth

import (
	"context"

	"github.com/pkg/errors"
)

// Identity headers are set by the gateway after authentication.
const (
	XUserIDHeader   = "X-User-Id"
	XUserRoleHeader = "X-User-Role"
)

const (
	RoleAdmin     = "ADMIN"
	RoleLibrarian = "LIBRARIAN"
	RoleMember    = "MEMBER"
)

type ctxKey int

const (
	userIDKey ctxKey = iota + 1
	userRoleKey
)

var ErrNoIdentity = errors.New("user identity is missing")

func SetAuthContext(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userRoleKey, role)
}

func GetUserID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", ErrNoIdentity
	}
	return userID, nil
}

func GetUserRole(ctx context.Context) (string, error) {
	role, ok := ctx.Value(userRoleKey).(string)
	if !ok || role == "" {
		return "", ErrNoIdentity
	}
	return role, nil
}
