package export

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultRecipient receives theme discussion emails.
	DefaultRecipient = "support@mpro.app"
	// Subject is the fixed subject line of the contact email.
	Subject = "mpro5 Saturn colour profile"
)

const bodyTemplate = "To whom it may concern\n\n" +
	"My name is %s and I am from %s. I have generated a theme I would like to discuss with you for use in our mpro5 Saturn mobile app.\n\n" +
	"I look forward to hearing from you"

// Contact is who is sending the theme.
type Contact struct {
	Name         string
	Organization string
}

// Body renders the email body. Names are inserted as typed.
func (c Contact) Body() string {
	return fmt.Sprintf(bodyTemplate, c.Name, c.Organization)
}

// MailtoURL builds a mailto link with subject and body prefilled.
func (c Contact) MailtoURL(recipient string) string {
	if recipient == "" {
		recipient = DefaultRecipient
	}
	return "mailto:" + recipient +
		"?subject=" + escapeComponent(Subject) +
		"&body=" + escapeComponent(c.Body())
}

// escapeComponent escapes like a browser's encodeURIComponent, which mail
// clients expect: spaces become %20, not '+'.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
