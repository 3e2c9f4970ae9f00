package auth

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/cutiepets/admin/services/auth MailGW

// MailGW defines the outbound mail gateway interface
type MailGW interface {
	SendOtpEmail(ctx context.Context, email, code string) error
}
