package domain

import "time"

// Message is a contact-form submission. "content" is the canonical
// body column; the legacy "message" column was migrated.
type Message struct {
	ID          int64      `json:"id,omitempty"`
	SenderName  string     `json:"sender_name"`
	SenderEmail string     `json:"sender_email"`
	SenderPhone *string    `json:"sender_phone,omitempty"`
	Subject     string     `json:"subject"`
	Content     string     `json:"content"`
	Source      string     `json:"source"`
	Status      string     `json:"status,omitempty"`
	IsRead      bool       `json:"is_read"`
	IsImportant bool       `json:"is_important"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

func (m Message) RowID() int64 { return m.ID }

const (
	ContactSubject = "Contact Form Submission"
	ContactSource  = "contact_form"
)
