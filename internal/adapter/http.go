package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-item-transfer/internal/config"
	"github.com/MKhiriev/go-item-transfer/internal/logger"
	"github.com/MKhiriev/go-item-transfer/internal/utils"
	"github.com/MKhiriev/go-item-transfer/models"
)

const (
	tokenHeader = "token"
	redeemPath  = "/get/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a [ServerAdapter] for cfg.BaseURL. A token in
// cfg is used for authenticated requests until Login replaces it.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/registration")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}

	var user models.User
	if _, err = decodeResponse(resp, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}

	e, err := decodeResponse(resp, nil)
	if err != nil {
		return models.Token{}, err
	}
	if e.Token == "" {
		return models.Token{}, fmt.Errorf("%w: login answer carries no token", ErrUnexpectedResponse)
	}

	h.SetToken(e.Token)
	h.logger.Debug().Str("func", "*httpServerAdapter.Login").Str("login", credentials.Login).Msg("session token stored")
	return models.Token{SignedString: e.Token}, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}

	users := []models.User{}
	if _, err = decodeResponse(resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	_, err = decodeResponse(resp, nil)
	return err
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, request models.CreateItemRequest) (models.Item, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Item{}, err
	}

	resp, err := req.SetBody(request).Post("/items/new")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}

	var item models.Item
	if _, err = decodeResponse(resp, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}

	items := []models.Item{}
	if _, err = decodeResponse(resp, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/items/" + strconv.FormatInt(itemID, 10))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	_, err = decodeResponse(resp, nil)
	return err
}

func (h *httpServerAdapter) SendItem(ctx context.Context, request models.SendItemRequest) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	resp, err := req.SetBody(request).Post("/send")
	if err != nil {
		return "", fmt.Errorf("send item request: %w", err)
	}

	e, err := decodeResponse(resp, nil)
	if err != nil {
		return "", err
	}
	return e.URL, nil
}

// ReceiveItem always asks this adapter's server; the host of a full link is
// ignored.
func (h *httpServerAdapter) ReceiveItem(ctx context.Context, link string) (models.Item, error) {
	capability := CapabilityFromLink(link)
	if capability == "" {
		return models.Item{}, fmt.Errorf("%w: empty transfer link", ErrValidation)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Item{}, err
	}

	resp, err := req.Get(redeemPath + url.PathEscape(capability))
	if err != nil {
		return models.Item{}, fmt.Errorf("receive item request: %w", err)
	}

	var item models.Item
	if _, err = decodeResponse(resp, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// CapabilityFromLink returns the capability of a redemption link, or link
// itself when it holds no "/get/" segment.
func CapabilityFromLink(link string) string {
	link = strings.TrimSpace(link)
	if i := strings.LastIndex(link, redeemPath); i >= 0 {
		link = link[i+len(redeemPath):]
	}
	if unescaped, err := url.PathUnescape(link); err == nil {
		link = unescaped
	}
	return strings.Trim(link, "/")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().SetContext(ctx).SetHeader(tokenHeader, token), nil
}
