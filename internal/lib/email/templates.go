package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateWelcome corresponds to templates/emails/welcome.html
	TemplateWelcome Template = "welcome"

	// TemplateReceipt corresponds to templates/emails/receipt.html
	TemplateReceipt Template = "receipt"
)

// PreviewData contains sample template data for local preview/testing.
var PreviewData = map[string]map[string]string{
	"welcome": {
		"UserName": "Maria",
	},
	"receipt": {
		"UserEmail":   "maria@example.com",
		"ServiceName": "Hair Styling",
		"Amount":      "19.99",
		"Status":      "pending",
	},
}
