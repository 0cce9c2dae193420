package session

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gestor-oficina/ledger-server/internal/service"
)

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Login(passcode string) (string, error) {
	args := m.Called(passcode)
	return args.String(0), args.Error(1)
}

func (m *mockSessionStore) Logout(token string) {
	m.Called(token)
}

func newSessionTestAPI(t *testing.T, store sessionStore) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(store).Register(api)
	return api
}

func TestHTTP_Login_Success(t *testing.T) {
	store := new(mockSessionStore)
	store.On("Login", "35018").Return("token-1", nil)

	resp := newSessionTestAPI(t, store).Post("/v1/session", LoginBody{Passcode: "35018"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "token-1", body.Token)
	store.AssertExpectations(t)
}

func TestHTTP_Login_WrongPasscode(t *testing.T) {
	store := new(mockSessionStore)
	store.On("Login", "00000").Return("", service.ErrInvalidPasscode)

	resp := newSessionTestAPI(t, store).Post("/v1/session", LoginBody{Passcode: "00000"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	store.AssertExpectations(t)
}

func TestHTTP_Logout_StripsBearerPrefix(t *testing.T) {
	store := new(mockSessionStore)
	store.On("Logout", "token-1").Return()

	resp := newSessionTestAPI(t, store).
		Delete("/v1/session", "Authorization: Bearer token-1")

	assert.Equal(t, http.StatusOK, resp.Code)
	store.AssertExpectations(t)
}
