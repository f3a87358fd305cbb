package email

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Service handles email sending
type Service struct {
	fromEmail   string
	fromName    string
	baseURL     string
	sendGridKey string
	useSendGrid bool
}

// NewService creates a new email service
// If sendGridAPIKey is provided, emails will be sent via SendGrid
// Otherwise, emails will be logged to console (development mode)
func NewService(fromEmail, fromName, baseURL, sendGridAPIKey string) *Service {
	useSendGrid := sendGridAPIKey != ""
	if useSendGrid {
		log.Printf("✅ Email service initialized with SendGrid")
	} else {
		log.Printf("⚠️  Email service in console-only mode (set SENDGRID_API_KEY for production)")
	}

	return &Service{
		fromEmail:   fromEmail,
		fromName:    fromName,
		baseURL:     baseURL,
		sendGridKey: sendGridAPIKey,
		useSendGrid: useSendGrid,
	}
}

// SendLowCreditsEmail warns a user that their SMS credit balance is nearly exhausted
func (s *Service) SendLowCreditsEmail(toEmail, toName string, creditsRemaining int) error {
	subject := "Your LeadRevive SMS credits are running low"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>SMS Credits Running Low</h2>
			<p>Hi %s,</p>
			<p>You have <strong>%d SMS credits</strong> remaining. Active campaigns will pause sending once your balance reaches zero.</p>
			<p><a href="%s/billing" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Top Up Credits</a></p>
			<p>Thanks,<br>The LeadRevive Team</p>
		</body>
		</html>
	`, toName, creditsRemaining, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

You have %d SMS credits remaining. Active campaigns will pause sending once your balance reaches zero.

Top up at: %s/billing

Thanks,
The LeadRevive Team
	`, toName, creditsRemaining, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, fmt.Sprintf("%s/billing", s.baseURL))
}

// SendPaymentFailedEmail notifies a user that their subscription payment failed
func (s *Service) SendPaymentFailedEmail(toEmail, toName string) error {
	subject := "Payment failed for your LeadRevive subscription"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment Failed</h2>
			<p>Hi %s,</p>
			<p>We couldn't process the payment for your LeadRevive subscription. Your campaigns will stop sending until your billing is up to date.</p>
			<p><a href="%s/billing" style="background-color: #2196F3; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Update Payment Method</a></p>
			<p>Thanks,<br>The LeadRevive Team</p>
		</body>
		</html>
	`, toName, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

We couldn't process the payment for your LeadRevive subscription. Your campaigns will stop sending until your billing is up to date.

Update your payment method at: %s/billing

Thanks,
The LeadRevive Team
	`, toName, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, fmt.Sprintf("%s/billing", s.baseURL))
}

// SendA2PApprovedEmail notifies a user that their A2P registration completed
func (s *Service) SendA2PApprovedEmail(toEmail, toName, phoneNumber string) error {
	subject := "Your LeadRevive sending number is ready"
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>You're Ready to Send</h2>
			<p>Hi %s,</p>
			<p>Your A2P 10DLC registration is complete and your dedicated sending number <strong>%s</strong> is active.</p>
			<p><a href="%s/campaigns" style="background-color: #4CAF50; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">Launch a Campaign</a></p>
			<p>Thanks,<br>The LeadRevive Team</p>
		</body>
		</html>
	`, toName, phoneNumber, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your A2P 10DLC registration is complete and your dedicated sending number %s is active.

Launch a campaign at: %s/campaigns

Thanks,
The LeadRevive Team
	`, toName, phoneNumber, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, fmt.Sprintf("%s/campaigns", s.baseURL))
}

// SendCampaignCompletedEmail notifies a user that a campaign finished its sequence
func (s *Service) SendCampaignCompletedEmail(toEmail, toName, campaignName string, replies int) error {
	subject := fmt.Sprintf("Campaign %q has completed", campaignName)
	body := fmt.Sprintf(`
		<html>
		<body>
			<h2>Campaign Completed</h2>
			<p>Hi %s,</p>
			<p>Your campaign <strong>%s</strong> has finished its message sequence and collected <strong>%d replies</strong>.</p>
			<p><a href="%s/campaigns" style="background-color: #4A90E2; color: white; padding: 14px 20px; text-decoration: none; border-radius: 4px; display: inline-block;">View Results</a></p>
			<p>Thanks,<br>The LeadRevive Team</p>
		</body>
		</html>
	`, toName, campaignName, replies, s.baseURL)

	plainText := fmt.Sprintf(`
Hi %s,

Your campaign %q has finished its message sequence and collected %d replies.

View results at: %s/campaigns

Thanks,
The LeadRevive Team
	`, toName, campaignName, replies, s.baseURL)

	if s.useSendGrid {
		return s.sendViaSendGrid(toEmail, toName, subject, body, plainText)
	}

	return s.logEmailToConsole(toEmail, toName, subject, fmt.Sprintf("%s/campaigns", s.baseURL))
}

// sendViaSendGrid sends an email using the SendGrid API
func (s *Service) sendViaSendGrid(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)

	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)

	client := sendgrid.NewSendClient(s.sendGridKey)
	response, err := client.Send(message)

	if err != nil {
		log.Printf("❌ SendGrid error: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid returned error status %d: %s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	log.Printf("✅ Email sent successfully to %s (SendGrid status: %d)", toEmail, response.StatusCode)
	return nil
}

// logEmailToConsole logs email details to console (development mode)
func (s *Service) logEmailToConsole(toEmail, toName, subject, actionURL string) error {
	log.Printf("📧 [EMAIL] %s", subject)
	log.Printf("   To: %s <%s>", toName, toEmail)
	log.Printf("   From: %s <%s>", s.fromName, s.fromEmail)
	log.Printf("   Action URL: %s", actionURL)
	log.Printf("   ---")
	log.Printf("   ⚠️  Email NOT sent (development mode)")
	log.Printf("   Set SENDGRID_API_KEY environment variable to enable email sending")
	log.Printf("   ---")
	return nil
}
