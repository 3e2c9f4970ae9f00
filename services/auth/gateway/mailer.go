package gateway

import (
	"context"
	"fmt"

	"github.com/cutiepets/admin/internal/pkg/constants"
	"github.com/cutiepets/admin/internal/pkg/logger"
	"github.com/cutiepets/admin/internal/pkg/models"
	"github.com/cutiepets/admin/internal/pkg/nsq"
	"github.com/cutiepets/admin/internal/pkg/retry"
)

// NsqMailer hands outbound email jobs to the notification worker over NSQ.
// Transient publish failures are retried with exponential backoff.
type NsqMailer struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewNsqMailer creates a mail gateway backed by the given NSQ producer
func NewNsqMailer(producer *nsq.Producer) *NsqMailer {
	return &NsqMailer{
		producer: producer,
		retrier:  retry.NewWithDefaults(logger.GetGlobalLogger()),
	}
}

// SendOtpEmail publishes an email job carrying the one-time code
func (g *NsqMailer) SendOtpEmail(ctx context.Context, email, code string) error {
	msg := models.EmailMessage{
		To:      email,
		Subject: "Your verification code",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in a few minutes.", code),
	}

	err := g.retrier.Execute(ctx, func(context.Context) error {
		return g.producer.Publish(constants.TopicEmailNotification, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to publish email job: %w", err)
	}

	return nil
}

// LogMailer writes the code to the application log instead of sending mail.
// Used in development environments without an NSQ daemon.
type LogMailer struct{}

// NewLogMailer creates a log-only mail gateway
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendOtpEmail logs the code
func (g *LogMailer) SendOtpEmail(_ context.Context, email, code string) error {
	logger.Info("OTP email (log transport)",
		logger.String("email", email),
		logger.String("code", code))
	return nil
}
