// Package mailer is the transactional email transport. It knows nothing
// about invoices or quotes; it sends a composed message with attachments.
package mailer

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/pkg/errors"
	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/nordbill/backoffice/common"
	"github.com/nordbill/backoffice/logger"
)

const (
	apiKeyEnvVar    = "SENDGRID_API_KEY"
	baseURLEnvVar   = "SENDGRID_BASE_URL"
	fromEmailEnvVar = "MAIL_FROM_EMAIL"
	fromNameEnvVar  = "MAIL_FROM_NAME"

	mailSendPath = "/v3/mail/send"
)

// Attachment is one file carried by a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a fully composed outbound email.
type Message struct {
	To          string
	ToName      string
	Subject     string
	HTML        string
	Attachments []Attachment
}

//go:generate mockery --name Transport --output ./mocks
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

// SendGridConfig holds the transport credentials and sender identity.
type SendGridConfig struct {
	APIKey    string
	BaseURL   string
	FromEmail string
	FromName  string
}

// NewSendGridConfigFromEnv reads the transport configuration from the
// environment.
func NewSendGridConfigFromEnv() SendGridConfig {
	return SendGridConfig{
		APIKey:    common.GetEnv(apiKeyEnvVar, ""),
		BaseURL:   common.GetEnv(baseURLEnvVar, "https://api.sendgrid.com"),
		FromEmail: common.GetEnv(fromEmailEnvVar, "faktura@nordbill.no"),
		FromName:  common.GetEnv(fromNameEnvVar, "Nordbill"),
	}
}

// SendGridTransport sends messages through the SendGrid mail API. It never
// retries on its own; a failed send is reported to the caller, who decides
// whether resending risks a duplicate email.
type SendGridTransport struct {
	loggerProvider logger.Provider
	config         SendGridConfig
}

func NewSendGridTransport(log logger.Provider, config SendGridConfig) *SendGridTransport {
	return &SendGridTransport{log, config}
}

func (t *SendGridTransport) Send(ctx context.Context, msg *Message) error {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(t.config.FromName, t.config.FromEmail))
	m.Subject = msg.Subject

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(msg.ToName, msg.To))
	m.AddPersonalizations(personalization)

	m.AddContent(mail.NewContent("text/html", msg.HTML))

	for _, attachment := range msg.Attachments {
		a := mail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(attachment.Data))
		a.SetType(attachment.ContentType)
		a.SetFilename(attachment.Filename)
		a.SetDisposition("attachment")
		m.AddAttachment(a)
	}

	request := sendgrid.GetRequest(t.config.APIKey, mailSendPath, t.config.BaseURL)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return err
	}

	if response.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}

	t.loggerProvider(ctx).Infof("mail sent to %s (%d)", msg.To, response.StatusCode)

	return nil
}

// LogTransport logs instead of sending. Used on localhost and in
// environments without transport credentials.
type LogTransport struct {
	loggerProvider logger.Provider
}

func NewLogTransport(log logger.Provider) *LogTransport {
	return &LogTransport{log}
}

func (t *LogTransport) Send(ctx context.Context, msg *Message) error {
	t.loggerProvider(ctx).Infof("not sending mail to %s, subject %q, %d attachments",
		msg.To, msg.Subject, len(msg.Attachments))

	return nil
}

// NewTransport picks the SendGrid transport when an API key is configured
// and the logging transport otherwise.
func NewTransport(log logger.Provider) Transport {
	config := NewSendGridConfigFromEnv()
	if config.APIKey == "" {
		return NewLogTransport(log)
	}

	return NewSendGridTransport(log, config)
}
