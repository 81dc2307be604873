package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail, customerName string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Pedido #%d confirmado - Frutti Market", order.ID))

	itemRows := ""
	for _, item := range order.Items {
		itemRows += fmt.Sprintf(
			`<tr><td>%s</td><td>%.2f %s</td><td>%.2f</td><td>%.2f</td></tr>`,
			item.ProductName, item.Quantity, item.Unit, item.UnitPrice, item.Quantity*item.UnitPrice)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #16a34a; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        td, th { padding: 8px; border-bottom: 1px solid #e5e7eb; text-align: left; }
        .total { font-size: 18px; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Frutti Market</div>
        <p>Hola %s,</p>
        <p>Hemos recibido tu pedido #%d. Este es el resumen:</p>
        <table>
            <tr><th>Producto</th><th>Cantidad</th><th>Precio</th><th>Subtotal</th></tr>
            %s
        </table>
        <p class="total">Total: %.2f</p>
        <p>Gracias por tu compra.</p>
    </div>
</body>
</html>`, customerName, order.ID, itemRows, order.Total)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
