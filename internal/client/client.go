// Package client is the programmatic counterpart of the web UI: it
// drives the products API, evaluates the same validation rules before a
// request leaves the process, and turns server rejections back into
// per-field messages a form can display.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kruglovma/sklad/internal/core/domain"
	"github.com/kruglovma/sklad/internal/core/serviceerrors"
)

type Product struct {
	ID        int64     `json:"id"`
	Article   string    `json:"article"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProductList struct {
	Data  []Product `json:"data"`
	Total int64     `json:"total"`
}

// ProductInput is the request payload; nil fields are omitted, which on
// update means "leave unchanged".
type ProductInput struct {
	Article  *string  `json:"article,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListProducts(ctx context.Context, page, limit int) (*ProductList, error) {
	url := fmt.Sprintf("%s/products?page=%d&limit=%d", c.baseURL, page, limit)
	var list ProductList
	if err := c.do(ctx, http.MethodGet, url, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/products/%d", c.baseURL, id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/products", &input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/products/%d", c.baseURL, id), &input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/products/%d", c.baseURL, id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type errorBody struct {
	Message json.RawMessage     `json:"message"`
	Errors  []domain.FieldError `json:"errors"`
}

// decodeError rebuilds a ServiceError from the wire. Field attribution
// comes from the structured errors list; a bare conflict or validation
// message without one falls back onto the article field, the way the
// old UI surfaced unattributable server text.
func decodeError(status int, raw []byte) error {
	var body errorBody
	_ = json.Unmarshal(raw, &body)

	var message string
	if len(body.Message) > 0 {
		if body.Message[0] == '[' {
			var messages []string
			_ = json.Unmarshal(body.Message, &messages)
			message = strings.Join(messages, ", ")
		} else {
			_ = json.Unmarshal(body.Message, &message)
		}
	}
	if message == "" {
		message = fmt.Sprintf("unexpected status %d", status)
	}

	kind, ok := kindFromStatus(status)
	if !ok {
		return fmt.Errorf("%s", message)
	}

	fields := body.Errors
	if len(fields) == 0 && (kind == serviceerrors.KindInvalidRequest || kind == serviceerrors.KindConflict) {
		fields = []domain.FieldError{{Field: domain.FieldArticle, Message: message}}
	}

	return &serviceerrors.ServiceError{Kind: kind, Message: message, Fields: fields}
}

func kindFromStatus(status int) (serviceerrors.ErrorKind, bool) {
	switch status {
	case http.StatusBadRequest:
		return serviceerrors.KindInvalidRequest, true
	case http.StatusNotFound:
		return serviceerrors.KindNotFound, true
	case http.StatusConflict:
		return serviceerrors.KindConflict, true
	case http.StatusUnprocessableEntity:
		return serviceerrors.KindUnprocessableEntity, true
	default:
		return 0, false
	}
}
