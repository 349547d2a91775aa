package app

import (
	"context"
	"strings"

	"cairo_tours/internal/domain"
)

// ContactSubmission is the public contact form payload.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Content string `json:"content"`
}

func (s ContactSubmission) Validate() error {
	if err := required("name", s.Name); err != nil {
		return err
	}
	if e := strings.TrimSpace(s.Email); e == "" || !strings.Contains(e, "@") {
		return invalidf("a valid email is required")
	}
	return required("content", s.Content)
}

// SubmitContact files a contact-form message. Subject and source are
// fixed; the phone number is optional.
func (c *Catalog) SubmitContact(ctx context.Context, s ContactSubmission) (domain.Message, error) {
	if err := s.Validate(); err != nil {
		return domain.Message{}, err
	}
	msg := domain.Message{
		SenderName:  s.Name,
		SenderEmail: s.Email,
		Subject:     domain.ContactSubject,
		Content:     s.Content,
		Source:      domain.ContactSource,
		Status:      "new",
	}
	if p := strings.TrimSpace(s.Phone); p != "" {
		msg.SenderPhone = &p
	}
	return c.Messages.Add(ctx, msg)
}
