package domain

import "errors"

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrNotFound         = errors.New("not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrNotLoggedIn      = errors.New("not logged in")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidForm      = errors.New("invalid form")
	ErrPermissionDenied = errors.New("permission denied for role")
)
