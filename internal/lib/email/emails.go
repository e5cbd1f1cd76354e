package email

import "fmt"

// SendWelcomeEmail greets a newly registered user.
func (c *Client) SendWelcomeEmail(to, name string) error {
	if name == "" {
		name = "there"
	}

	data := map[string]string{
		"UserName": name,
	}

	return c.SendEmail(
		to,
		"Welcome to Maria Parlour!",
		TemplateWelcome,
		data,
	)
}

// SendReceiptEmail confirms a recorded payment to the payer.
func (c *Client) SendReceiptEmail(to, serviceName string, amount float64, status string) error {
	data := map[string]string{
		"UserEmail":   to,
		"ServiceName": serviceName,
		"Amount":      fmt.Sprintf("%.2f", amount),
		"Status":      status,
	}

	return c.SendEmail(
		to,
		"Your Maria Parlour payment receipt",
		TemplateReceipt,
		data,
	)
}
