package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCrisisAlert(toEmail, userId, sessionId string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

// SendCrisisAlert notifies the wellbeing team that the dialog engine flagged a
// conversation. The message intentionally carries ids only, never chat content.
func (s *emailService) SendCrisisAlert(toEmail, userId, sessionId string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Flou: crisis protocol activated")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Crisis protocol activated</h2>
			<p>The companion flagged a conversation for follow-up.</p>
			<p><strong>User:</strong> %s</p>
			<p><strong>Session:</strong> %s</p>
			<p>Please review through the support dashboard.</p>
		</div>
	`, userId, sessionId)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send crisis alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Crisis alert sent to %s\n", toEmail)
	return nil
}
