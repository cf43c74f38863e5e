package api

import (
	"context"

	"socialite/internal/core"
)

const (
	signInPath         = "/api/auth/sign-in"
	verifyPasswordPath = "/api/auth/verify-password"
)

func (c *Client) SignIn(ctx context.Context, userName, password string) (string, error) {
	type signInResponse struct {
		Token string `json:"token"`
	}

	var result signInResponse

	res, err := c.r(ctx).
		SetBody(map[string]string{"userName": userName, "password": password}).
		SetResult(&result).
		Post(signInPath)
	if err := c.check(res, err); err != nil {
		return "", err
	}

	return result.Token, nil
}

// VerifyPassword re-authenticates the current session before a sensitive
// action. A nil return means the password matched.
func (c *Client) VerifyPassword(ctx context.Context, password string) error {
	res, err := c.r(ctx).
		SetBody(map[string]string{"password": password}).
		Post(verifyPasswordPath)
	return c.check(res, err)
}

var _ core.AuthAPI = (*Client)(nil)
