package model

import "encoding/json"

// PayloadShape identifies which inbound webhook contract a delivery follows.
// Pancake changed the contract at least twice; both live shapes are accepted.
type PayloadShape string

const (
	// ShapeStructured is the customer-activity contract: a page_customer
	// object carrying psid, captured phone numbers and per-post activities.
	ShapeStructured PayloadShape = "structured"
	// ShapeLegacy is the original flat comment contract: message, page and
	// time at the top level, phone embedded in free text.
	ShapeLegacy PayloadShape = "legacy"
)

// WebhookPayload is the union of both accepted webhook bodies.
type WebhookPayload struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Page    string `json:"page"`
	Time    string `json:"time"`

	PageCustomer *PageCustomer `json:"page_customer"`
}

// Shape reports which contract the delivery follows. A body carrying
// page_customer is structured regardless of what else is present.
func (p *WebhookPayload) Shape() PayloadShape {
	if p.PageCustomer != nil {
		return ShapeStructured
	}
	return ShapeLegacy
}

// PageCustomer is the structured-shape customer object.
type PageCustomer struct {
	PSID               string       `json:"psid"`
	Name               string       `json:"name"`
	RecentPhoneNumbers []PhoneEntry `json:"recent_phone_numbers"`
	Activities         []Activity   `json:"activities"`
}

// PhoneEntry is one captured phone number. Older structured deliveries used
// "captured" instead of "phone_number".
type PhoneEntry struct {
	PhoneNumber string `json:"phone_number"`
	Captured    string `json:"captured"`
}

// Value returns the entry's phone text, whichever field carries it.
func (e PhoneEntry) Value() string {
	if e.PhoneNumber != "" {
		return e.PhoneNumber
	}
	return e.Captured
}

// Activity is one comment event tied to a specific post.
type Activity struct {
	PostID      string         `json:"post_id"`
	InsertedAt  string         `json:"inserted_at"`
	Attachments AttachmentList `json:"attachments"`
}

// Attachment describes a post attachment; only the title is recorded.
type Attachment struct {
	Title string `json:"title"`
}

// AttachmentList decodes both attachment encodings Pancake has shipped:
// a wrapper object {"data": [...]} and a bare array [...].
type AttachmentList struct {
	Data []Attachment
}

func (l *AttachmentList) UnmarshalJSON(b []byte) error {
	var wrapped struct {
		Data []Attachment `json:"data"`
	}
	if err := json.Unmarshal(b, &wrapped); err == nil {
		l.Data = wrapped.Data
		return nil
	}

	var bare []Attachment
	if err := json.Unmarshal(b, &bare); err != nil {
		// Unrecognized encoding. The title is optional everywhere it is
		// used, so drop it rather than failing the whole delivery.
		l.Data = nil
		return nil
	}
	l.Data = bare
	return nil
}

// FirstTitle returns the first attachment title, or "".
func (l AttachmentList) FirstTitle() string {
	if len(l.Data) == 0 {
		return ""
	}
	return l.Data[0].Title
}
