package panel

import (
	"context"
	"errors"
	"net/http"

	"github.com/bnema/vpnadm/internal/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type operatorDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var token tokenResponse
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Username: username, Password: password},
	}, &token)
	if err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", errors.New("login response has no access token")
	}

	return token.AccessToken, nil
}

func (c *Client) Me(ctx context.Context) (domain.Operator, error) {
	var dto operatorDTO
	if err := c.doJSON(ctx, request{method: http.MethodGet, path: "/auth/me"}, &dto); err != nil {
		return domain.Operator{}, err
	}

	role, err := domain.ParseRole(dto.Role)
	if err != nil {
		role = domain.RoleViewer
	}

	return domain.Operator{
		ID:       dto.ID,
		Username: dto.Username,
		Role:     role,
		Active:   dto.IsActive == nil || *dto.IsActive,
	}, nil
}
