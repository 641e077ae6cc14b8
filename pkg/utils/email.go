package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"
)

var (
	emailFrom     = os.Getenv("EMAIL_FROM")
	emailPassword = os.Getenv("EMAIL_PASSWORD")
	smtpHost      = os.Getenv("SMTP_HOST")
	smtpPort      = os.Getenv("SMTP_PORT")
	companyName   = "SkyCar Transfers"
	baseURL       = os.Getenv("BASE_URL")
)

// Common header template for all emails
const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #f9f9f9; padding: 20px;">
			<h2 style="color: #1a73e8; margin: 0;">SkyCar</h2>
		</div>
`

// Common footer template for all emails
const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
			<p>© 2026 SkyCar Transfers. All rights reserved.</p>
		</div>
	</div>
</body>
</html>
`

func sendEmail(to []string, subject, body string) error {
	if emailFrom == "" || emailPassword == "" || smtpHost == "" || smtpPort == "" {
		return fmt.Errorf("email configuration not set")
	}

	// Headers
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", companyName, emailFrom)
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"
	headers["X-Mailer"] = "SkyCar-Mailer"

	// Build message
	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	// Authentication
	auth := smtp.PlainAuth("", emailFrom, emailPassword, smtpHost)

	// Send email
	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, emailFrom, to, []byte(message))
	if err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}

	log.Printf("Successfully sent email to recipients: %v", to)
	return nil
}

// SendOrderConfirmationEmail tells the passenger their booking was created.
func SendOrderConfirmationEmail(passengerEmail, orderNo, pickupAddr, dropoffAddr string, pickupTime time.Time, total int64) error {
	subject := fmt.Sprintf("Booking Received - %s", orderNo)
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Booking Received</h1>
					<p>Hello,</p>
					<p>We have received your booking <strong>%s</strong>.</p>
					<p>Pickup: <strong>%s</strong><br>
					Drop-off: <strong>%s</strong><br>
					Scheduled: <strong>%s</strong><br>
					Total: <strong>%d</strong></p>
					<p>We will let you know as soon as a driver is assigned.</p>
					<div style="text-align: center; margin: 30px 0;">
						<a href="%s/orders" style="background-color: #1a73e8; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">View Your Booking</a>
					</div>
					<p>Best regards,<br>The SkyCar Team</p>
				</div>`+emailFooter,
		orderNo, pickupAddr, dropoffAddr, pickupTime.Format("Mon, 02 Jan 2006 15:04"), total, baseURL)

	return sendEmail([]string{passengerEmail}, subject, body)
}

// SendDriverAssignedEmail tells the passenger their order was dispatched.
func SendDriverAssignedEmail(passengerEmail, orderNo, driverName, carPlate string) error {
	subject := fmt.Sprintf("Driver Assigned - %s", orderNo)
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Driver Assigned</h1>
					<p>Hello,</p>
					<p>Your booking <strong>%s</strong> has been confirmed. Driver <strong>%s</strong> (Car: <strong>%s</strong>) will pick you up.</p>
					<div style="text-align: center; margin: 30px 0;">
						<a href="%s/orders" style="background-color: #1a73e8; color: white; padding: 12px 25px; text-decoration: none; border-radius: 5px;">View Your Booking</a>
					</div>
					<p>Best regards,<br>The SkyCar Team</p>
				</div>`+emailFooter,
		orderNo, driverName, carPlate, baseURL)

	return sendEmail([]string{passengerEmail}, subject, body)
}
