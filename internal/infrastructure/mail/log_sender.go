package mail

import (
	"context"
	"log"

	"maquininhas_mky/internal/usecase/interfaces"
)

// LogSender is the fallback delivery used when Resend is not configured
// (local development): the code is only written to the process log.

type LogSender struct{}

var _ interfaces.ICodeDelivery = (*LogSender)(nil)

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Deliver(_ context.Context, email, code string) error {
	log.Printf("[reset][mail] (log sender) email=%s code=%s", email, code)
	return nil
}
