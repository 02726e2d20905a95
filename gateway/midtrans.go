// Package gateway is the HTTP client for the Midtrans payment gateway. It
// owns the three remote capabilities the rest of the app relies on: creating
// a tokenized Snap session, authenticating and parsing webhook notifications,
// and querying transaction status.
package gateway

import (
	"bytes"
	"context"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ecommerce-backend/apperr"
)

const (
	sandboxSnapURL    = "https://app.sandbox.midtrans.com/snap/v1"
	productionSnapURL = "https://app.midtrans.com/snap/v1"
	sandboxCoreURL    = "https://api.sandbox.midtrans.com/v2"
	productionCoreURL = "https://api.midtrans.com/v2"

	requestTimeout = 15 * time.Second
)

// ItemDetail is one line of the manifest sent with a session request.
type ItemDetail struct {
	ID       string  `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Name     string  `json:"name"`
}

// SessionParams carries everything Midtrans needs to open a payment page.
type SessionParams struct {
	OrderID     string
	GrossAmount float64
	FirstName   string
	Email       string
	Items       []ItemDetail
}

// Session is the tokenized payment session handed back to the client.
type Session struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// Notification is an authenticated, parsed webhook payload.
type Notification struct {
	OrderID           string
	TransactionStatus string
	FraudStatus       string
	GrossAmount       string
	StatusCode        string
}

// TransactionStatus is the Core API status snapshot for one order.
type TransactionStatus struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount"`
}

type Client struct {
	serverKey  string
	snapURL    string
	coreURL    string
	httpClient *http.Client
}

func NewClient(serverKey string, isProduction bool) *Client {
	snapURL, coreURL := sandboxSnapURL, sandboxCoreURL
	if isProduction {
		snapURL, coreURL = productionSnapURL, productionCoreURL
	}
	return &Client{
		serverKey:  serverKey,
		snapURL:    snapURL,
		coreURL:    coreURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// authHeader is the Basic credential Midtrans expects: base64(serverKey + ":").
func (c *Client) authHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.serverKey+":"))
}

// CreateSession opens a Snap transaction and returns its token and redirect
// URL. Failures, including timeouts, come back as gateway errors; nothing is
// persisted here.
func (c *Client) CreateSession(ctx context.Context, params SessionParams) (Session, error) {
	payload := map[string]any{
		"transaction_details": map[string]any{
			"order_id":     params.OrderID,
			"gross_amount": params.GrossAmount,
		},
		"credit_card": map[string]any{
			"secure": true,
		},
		"customer_details": map[string]any{
			"first_name": params.FirstName,
			"email":      params.Email,
		},
		"item_details": params.Items,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Session{}, apperr.Wrap(apperr.KindGateway, "failed to encode session request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.snapURL+"/transactions", bytes.NewBuffer(body))
	if err != nil {
		return Session{}, apperr.Wrap(apperr.KindGateway, "failed to build session request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, apperr.Wrap(apperr.KindGateway, "failed to reach payment gateway", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Session{}, apperr.Newf(apperr.KindGateway,
			"payment gateway error (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return Session{}, apperr.Wrap(apperr.KindGateway, "failed to parse gateway response", err)
	}
	if session.Token == "" || session.RedirectURL == "" {
		return Session{}, apperr.New(apperr.KindGateway, "payment gateway returned an empty session")
	}
	return session, nil
}

type rawNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	GrossAmount       string `json:"gross_amount"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
}

// ParseNotification authenticates a webhook payload before any field is
// trusted. Midtrans signs sha512(order_id + status_code + gross_amount +
// serverKey); a mismatch means a forged or corrupted payload.
func (c *Client) ParseNotification(payload []byte) (Notification, error) {
	var raw rawNotification
	if err := json.Unmarshal(payload, &raw); err != nil {
		return Notification{}, apperr.Wrap(apperr.KindValidation, "malformed notification payload", err)
	}
	if raw.OrderID == "" || raw.SignatureKey == "" {
		return Notification{}, apperr.Validation("notification payload missing order_id or signature")
	}

	expected := signaturePayload(raw.OrderID, raw.StatusCode, raw.GrossAmount, c.serverKey)
	if !strings.EqualFold(expected, raw.SignatureKey) {
		return Notification{}, apperr.Unauthorized("invalid notification signature")
	}

	return Notification{
		OrderID:           raw.OrderID,
		TransactionStatus: raw.TransactionStatus,
		FraudStatus:       raw.FraudStatus,
		GrossAmount:       raw.GrossAmount,
		StatusCode:        raw.StatusCode,
	}, nil
}

func signaturePayload(orderID, statusCode, grossAmount, serverKey string) string {
	h := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(h[:])
}

// Status queries the Core API for the current transaction state. Read-only.
func (c *Client) Status(ctx context.Context, orderID string) (TransactionStatus, error) {
	url := fmt.Sprintf("%s/%s/status", c.coreURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return TransactionStatus{}, apperr.Wrap(apperr.KindGateway, "failed to build status request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TransactionStatus{}, apperr.Wrap(apperr.KindGateway, "failed to reach payment gateway", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return TransactionStatus{}, apperr.NotFound("Transaction not found")
	}
	if resp.StatusCode != http.StatusOK {
		return TransactionStatus{}, apperr.Newf(apperr.KindGateway,
			"payment gateway error (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var status TransactionStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return TransactionStatus{}, apperr.Wrap(apperr.KindGateway, "failed to parse status response", err)
	}
	return status, nil
}
