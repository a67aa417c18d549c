// Package mailer forwards contact-form submissions to a hosted mail relay.
// The relay speaks the EmailJS REST contract: one JSON POST carrying the
// service id, template id, public key and template parameters.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type Sender interface {
	Send(ctx context.Context, params map[string]string) error
}

type Relay struct {
	serviceID  string
	templateID string
	publicKey  string
	endpoint   string
	client     *http.Client
}

func New(serviceID, templateID, publicKey string) *Relay {
	return &Relay{
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		endpoint:   defaultEndpoint,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// WithEndpoint overrides the relay URL. Used by tests.
func (r *Relay) WithEndpoint(url string) *Relay {
	r.endpoint = url
	return r
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (r *Relay) Send(ctx context.Context, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      r.serviceID,
		TemplateID:     r.templateID,
		UserID:         r.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mail relay returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}
