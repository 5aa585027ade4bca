package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Notifier calls the Slack bot's internal endpoints. Calls carry a short-lived
// HS256 bearer token so the bot can verify they come from this pipeline.
type Notifier struct {
	baseURL string
	issuer  string
	secret  []byte
	client  *http.Client
	log     *zap.Logger
}

func NewNotifier(baseURL, issuer, secret string, log *zap.Logger) *Notifier {
	return &Notifier{
		baseURL: baseURL,
		issuer:  issuer,
		secret:  []byte(secret),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// NotifyPrompt asks the bot to DM the user their daily survey prompt.
func (n *Notifier) NotifyPrompt(ctx context.Context, slackID string) error {
	return n.post(ctx, "/notify", slackID)
}

// NotifySummary tells the bot the weekly report landed in the user's repo.
func (n *Notifier) NotifySummary(ctx context.Context, slackID string) error {
	return n.post(ctx, "/notify-summary", slackID)
}

func (n *Notifier) post(ctx context.Context, path, slackID string) error {
	body, err := json.Marshal(map[string]string{"user_id": slackID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := n.serviceToken()
	if err != nil {
		return fmt.Errorf("failed to sign service token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify call returned status %d", resp.StatusCode)
	}
	n.log.Debug("Notified bot", zap.String("path", path), zap.String("slack_id", slackID))
	return nil
}

func (n *Notifier) serviceToken() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    n.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(5 * time.Minute)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(n.secret)
}
