package model

import "time"

// Placeholders written when a structured payload omits the field.
const (
	UnknownPost = "UnknownPost"
	UnknownPage = "UnknownPage"
)

// Partition row layout, columns A-F. The first IdentityColumns columns form
// the dedup key and are the only columns the existence scan reads.
const (
	ColumnCount     = 6
	IdentityColumns = 2
)

// LeadRecord is one customer interaction worth recording: a comment tied to a
// phone number, produced once per inbound activity and never mutated after
// construction. It is either appended to its monthly partition once or
// discarded as a duplicate.
type LeadRecord struct {
	CustomerID         string    `json:"customer_id"`
	PostID             string    `json:"post_id"`
	PageTitle          string    `json:"page_title"`
	CustomerName       string    `json:"customer_name"`
	Phone              string    `json:"phone"`
	CommentTime        time.Time `json:"comment_time"`
	CommentTimeDisplay string    `json:"comment_time_display"`
}

// Row renders the record in the fixed partition column order:
// customerId, postId, pageTitle, customerName, phone, commentTimeDisplay.
func (r LeadRecord) Row() []string {
	return []string{
		r.CustomerID,
		r.PostID,
		r.PageTitle,
		r.CustomerName,
		r.Phone,
		r.CommentTimeDisplay,
	}
}
