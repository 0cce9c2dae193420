// Package session exposes passcode login and logout. Login is the
// only public write surface; every other endpoint requires the token
// it issues.
package session

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/gestor-oficina/ledger-server/internal/service"
)

// LoginBody is the request body for opening a session.
type LoginBody struct {
	Passcode string `json:"passcode" required:"true" doc:"Numeric access passcode"`
}

// LoginInput is the Huma input for opening a session.
type LoginInput struct {
	Body LoginBody
}

// LoginResponseBody is the response body for opening a session.
type LoginResponseBody struct {
	Token string `json:"token" doc:"Bearer token for subsequent requests"`
}

// LoginOutput is the Huma output for opening a session.
type LoginOutput struct {
	Body LoginResponseBody
}

// LogoutInput is the Huma input for closing a session.
type LogoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token to revoke"`
}

// LogoutOutput is the Huma output for closing a session.
type LogoutOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// sessionStore is the interface for opening and closing sessions.
type sessionStore interface {
	Login(passcode string) (string, error)
	Logout(token string)
}

// Handler handles POST and DELETE /v1/session.
type Handler struct {
	Sessions sessionStore
}

// NewHandler creates a new session Handler.
func NewHandler(sessions sessionStore) *Handler {
	return &Handler{Sessions: sessions}
}

// Register registers the session endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/session",
		Summary:     "Open session",
		Description: "Exchanges the access passcode for a bearer token.",
		Tags:        []string{"Session"},
		Metadata:    map[string]any{"public": true},
	}, h.login)

	huma.Register(api, huma.Operation{
		OperationID: "logout",
		Method:      http.MethodDelete,
		Path:        "/v1/session",
		Summary:     "Close session",
		Description: "Revokes the presented bearer token.",
		Tags:        []string{"Session"},
	}, h.logout)
}

func (h *Handler) login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	token, err := h.Sessions.Login(input.Body.Passcode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPasscode) {
			return nil, huma.NewError(http.StatusUnauthorized, "invalid passcode")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to open session", err)
	}
	return &LoginOutput{Body: LoginResponseBody{Token: token}}, nil
}

func (h *Handler) logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	token := strings.TrimPrefix(input.Authorization, "Bearer ")
	h.Sessions.Logout(token)
	return &LogoutOutput{Status: http.StatusOK}, nil
}
