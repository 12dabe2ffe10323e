package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendBookingConfirmation notifies the customer that their repair has been
// booked in under the given job number.
func (s *SMTPEmailService) SendBookingConfirmation(to, firstName string, jobID uint) error {
	subject := fmt.Sprintf("Repair Booking Confirmation - Job #%d", jobID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Booking Confirmed</h2>
			<p>Hi %s,</p>
			<p>Your repair has been booked in. Your job number is <strong>#%d</strong>.</p>
			<p>Please quote this number in any correspondence or when collecting your device.</p>
		</body>
		</html>
	`, firstName, jobID)

	plainBody := fmt.Sprintf(`
Booking Confirmed

Hi %s,

Your repair has been booked in. Your job number is #%d.

Please quote this number in any correspondence or when collecting your device.
	`, firstName, jobID)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendPickupReady notifies the customer that the repair is finished.
func (s *SMTPEmailService) SendPickupReady(to, firstName string, jobID uint, completedAt time.Time) error {
	subject := fmt.Sprintf("Your Device Is Ready - Job #%d", jobID)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ready for Pickup</h2>
			<p>Hi %s,</p>
			<p>Work on job <strong>#%d</strong> was completed on %s.</p>
			<p>Your device is ready for pickup during opening hours.</p>
		</body>
		</html>
	`, firstName, jobID, completedAt.Format("2 January 2006"))

	plainBody := fmt.Sprintf(`
Ready for Pickup

Hi %s,

Work on job #%d was completed on %s.

Your device is ready for pickup during opening hours.
	`, firstName, jobID, completedAt.Format("2 January 2006"))

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
