package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/service"
	"github.com/MKhiriev/go-item-transfer/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return m.loginFn(ctx, credentials)
}

type mockUserService struct {
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	deleteUserFn func(ctx context.Context, callerID, userID int64) error
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) DeleteUser(ctx context.Context, callerID, userID int64) error {
	return m.deleteUserFn(ctx, callerID, userID)
}

type mockItemService struct {
	createItemFn func(ctx context.Context, callerID int64, request models.CreateItemRequest) (models.Item, error)
	listItemsFn  func(ctx context.Context) ([]models.Item, error)
	deleteItemFn func(ctx context.Context, callerID, itemID int64) error
}

func (m *mockItemService) CreateItem(ctx context.Context, callerID int64, request models.CreateItemRequest) (models.Item, error) {
	return m.createItemFn(ctx, callerID, request)
}

func (m *mockItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return m.listItemsFn(ctx)
}

func (m *mockItemService) DeleteItem(ctx context.Context, callerID, itemID int64) error {
	return m.deleteItemFn(ctx, callerID, itemID)
}

type mockTransferService struct {
	initiateFn func(ctx context.Context, sessionToken string, itemID int64, recipientLogin string) (string, error)
	redeemFn   func(ctx context.Context, sessionToken, capability string) (models.Item, error)
}

func (m *mockTransferService) InitiateTransfer(ctx context.Context, sessionToken string, itemID int64, recipientLogin string) (string, error) {
	return m.initiateFn(ctx, sessionToken, itemID, recipientLogin)
}

func (m *mockTransferService) RedeemTransfer(ctx context.Context, sessionToken, capability string) (models.Item, error) {
	return m.redeemFn(ctx, sessionToken, capability)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testSignKey = "handler-test-key"

// newTestServices returns services backed by a real token service; the rest
// are left for the test to fill in.
func newTestServices() *service.Services {
	return &service.Services{
		TokenService: service.NewTokenService(config.App{TokenSignKey: testSignKey}, logger.Nop()),
	}
}

func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{}, logger.Nop()).Init()
}

func sessionToken(t *testing.T, svcs *service.Services, userID int64) string {
	t.Helper()
	token, err := svcs.TokenService.IssueSessionToken(userID)
	require.NoError(t, err)
	return token.String()
}

// do sends a request through router; token is set in the "token" header when
// not empty.
func do(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var response models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func decodeValidation(t *testing.T, rec *httptest.ResponseRecorder) models.ValidationErrorResponse {
	t.Helper()
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	var response models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}
