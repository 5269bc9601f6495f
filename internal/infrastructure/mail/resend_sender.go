package mail

import (
	"context"
	"errors"
	"fmt"
	"log"

	"maquininhas_mky/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

const defaultFromAddress = "MKY <onboarding@resend.dev>"

// ResendSender delivers password reset codes by e-mail through Resend.
type ResendSender struct {
	client *resend.Client
	from   string
}

var _ interfaces.ICodeDelivery = (*ResendSender)(nil)

func NewResendSender(apiKey, from string) (*ResendSender, error) {
	if apiKey == "" {
		log.Printf("[reset][mail] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	if from == "" {
		from = defaultFromAddress
	}
	log.Printf("[reset][mail] Resend client initialized from=%s", from)
	return &ResendSender{client: resend.NewClient(apiKey), from: from}, nil
}

func (s *ResendSender) Deliver(ctx context.Context, email, code string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email},
		Subject: "Redefinição de senha - Make Your Bank",
		Text: "Recebemos uma solicitação para redefinir sua senha.\n\n" +
			fmt.Sprintf("Código de verificação: %s\n\n", code) +
			"Se você não solicitou, ignore este e-mail.",
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("[reset][mail] send failed err=%v", err)
		return err
	}
	log.Printf("[reset][mail] send success message_id=%s", sent.Id)
	return nil
}
