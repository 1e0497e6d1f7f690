package emails

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const brevoAPI = "https://api.brevo.com/v3/smtp/email"

// defaultClient is shared by clients built without one; Send is called concurrently by the Dispatcher.
var defaultClient = &http.Client{Timeout: 15 * time.Second}

// BrevoSendRequest matches Brevo API v3 send transactional email body.
type BrevoSendRequest struct {
	Sender      BrevoSender   `json:"sender"`
	To          []BrevoTo     `json:"to"`
	Subject     string        `json:"subject"`
	HTMLContent string        `json:"htmlContent"`
	ReplyTo     *BrevoReplyTo `json:"replyTo,omitempty"`
}

type BrevoSender struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type BrevoTo struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type BrevoReplyTo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Message is one transactional email.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// BrevoClient sends emails via the Brevo (Sendinblue) API. Env: SENDINBLUE_API_KEY, MAIL_FROM.
type BrevoClient struct {
	APIKey   string
	MailFrom string
	FromName string
	Endpoint string
	Client   *http.Client
}

func (c *BrevoClient) from() BrevoSender {
	s := BrevoSender{Email: c.MailFrom, Name: c.FromName}
	if s.Email == "" {
		s.Email = "noreply@nvpwelfare.in"
	}
	if s.Name == "" {
		s.Name = orgName
	}
	return s
}

// Send posts one email to Brevo. Non-2xx responses are returned as errors.
func (c *BrevoClient) Send(ctx context.Context, msg Message) error {
	if c.APIKey == "" {
		return ErrNotConfigured
	}
	from := c.from()
	body := BrevoSendRequest{
		Sender:      from,
		To:          []BrevoTo{{Email: msg.To, Name: msg.ToName}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
		ReplyTo:     &BrevoReplyTo{Email: from.Email, Name: from.Name},
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = brevoAPI
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	client := c.Client
	if client == nil {
		client = defaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("brevo send failed: status %d", resp.StatusCode)
	}
	return nil
}
