package pipeline

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/pancake-labs/lead-ingest/internal/model"
)

// Normalize maps an inbound webhook body onto zero or more LeadRecords.
// Missing phones, timestamps or activities are validation gaps, not errors:
// they are logged and simply produce no records, and the caller answers the
// delivery with success either way.
func Normalize(p *model.WebhookPayload) []model.LeadRecord {
	if p == nil {
		return nil
	}
	if p.Shape() == model.ShapeStructured {
		return normalizeStructured(p)
	}
	return normalizeLegacy(p)
}

// normalizeStructured handles the page_customer contract: one record per
// activity carrying a parseable inserted_at.
func normalizeStructured(p *model.WebhookPayload) []model.LeadRecord {
	pc := p.PageCustomer

	phone := ""
	if len(pc.RecentPhoneNumbers) > 0 {
		phone = ExtractPhone(pc.RecentPhoneNumbers[0].Value())
	}
	if phone == "" {
		zap.L().Debug("normalize: structured payload without usable phone",
			zap.String("psid", pc.PSID))
		return nil
	}

	name := cleanText(p.Name)
	if name == "" {
		name = cleanText(pc.Name)
	}
	if name == "" {
		name = "Unknown"
	}

	records := make([]model.LeadRecord, 0, len(pc.Activities))
	for _, act := range pc.Activities {
		t, err := ParseTimestamp(act.InsertedAt)
		if err != nil {
			// Activities without a timestamp cannot be partitioned; skip
			// them and keep processing the rest.
			zap.L().Debug("normalize: activity without usable inserted_at",
				zap.String("psid", pc.PSID),
				zap.String("post_id", act.PostID))
			continue
		}

		postID := act.PostID
		if postID == "" {
			postID = model.UnknownPost
		}

		title := cleanText(act.Attachments.FirstTitle())
		if title == "" {
			title = cleanText(p.Page)
		}
		if title == "" {
			title = model.UnknownPage
		}

		records = append(records, model.LeadRecord{
			CustomerID:         pc.PSID,
			PostID:             postID,
			PageTitle:          title,
			CustomerName:       name,
			Phone:              phone,
			CommentTime:        t,
			CommentTimeDisplay: FormatDisplay(t),
		})
	}
	return records
}

// normalizeLegacy handles the flat comment contract. Legacy deliveries carry
// no stable customer identifier, so the lead is identified by its phone
// number and deduplicated on (phone, page).
func normalizeLegacy(p *model.WebhookPayload) []model.LeadRecord {
	phone := ExtractPhone(p.Message)
	if phone == "" {
		zap.L().Debug("normalize: no phone in legacy comment",
			zap.String("name", p.Name))
		return nil
	}

	t, err := ParseTimestamp(p.Time)
	if err != nil {
		zap.L().Debug("normalize: legacy comment without usable time",
			zap.String("name", p.Name))
		return nil
	}

	name := cleanText(p.Name)
	if name == "" {
		name = "Unknown"
	}

	page := cleanText(p.Page)
	if page == "" {
		page = model.UnknownPage
	}

	return []model.LeadRecord{{
		CustomerID:         phone,
		PostID:             page,
		PageTitle:          page,
		CustomerName:       name,
		Phone:              phone,
		CommentTime:        t,
		CommentTimeDisplay: FormatDisplay(t),
	}}
}

// cleanText trims whitespace and NFC-normalizes the string. Vietnamese names
// and titles arrive in mixed Unicode normalization forms depending on the
// commenter's keyboard; NFC keeps the written rows byte-comparable.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
