// internal/crm/model.go
//
// Lead and partner-inquiry records.
//
// Context
// -------
// Both entities are inbox-style rows written by the public contact and
// partner forms and worked through the CRM dashboard.  They share one
// pipeline vocabulary; a partner inquiry is structurally a lead without a
// subject line, and it has no update route.
//
// Status is a closed enumeration, validated on write.  The legacy
// backend accepted arbitrary strings and matched them client-side; the
// reimplementation rejects unknown values with a 400.

package crm

import "time"

//
// Status enumeration
//

// Status is a pipeline stage.  The display strings double as wire
// values, so they must never change without a data migration.
type Status string

const (
	StatusNewInquiry  Status = "New Inquiry"
	StatusQuoting     Status = "Quoting"
	StatusNegotiation Status = "Negotiation"
	StatusClosedWon   Status = "Closed/Won"
	StatusClosedLost  Status = "Closed/Lost"
)

// Statuses lists every stage in pipeline order.
func Statuses() []Status {
	return []Status{
		StatusNewInquiry,
		StatusQuoting,
		StatusNegotiation,
		StatusClosedWon,
		StatusClosedLost,
	}
}

// Valid reports whether s is one of the closed stages.
func (s Status) Valid() bool {
	switch s {
	case StatusNewInquiry, StatusQuoting, StatusNegotiation,
		StatusClosedWon, StatusClosedLost:
		return true
	}
	return false
}

//
// Records
//

// Lead mirrors one row in the `leads` table.
type Lead struct {
	ID        uint64    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Company   string    `db:"company"    json:"company"`
	Email     string    `db:"email"      json:"email"`
	Phone     string    `db:"phone"      json:"phone"`
	Subject   string    `db:"subject"    json:"subject"`
	Message   string    `db:"message"    json:"message"`
	Status    Status    `db:"status"     json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Partner mirrors one row in the `partners` table.
type Partner struct {
	ID        uint64    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Company   string    `db:"company"    json:"company"`
	Email     string    `db:"email"      json:"email"`
	Phone     string    `db:"phone"      json:"phone"`
	Message   string    `db:"message"    json:"message"`
	Status    Status    `db:"status"     json:"status"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

//
// Write payloads
//

// LeadSubmission is the public contact-form payload.  Status is absent on
// purpose: every new lead starts at "New Inquiry" regardless of what the
// form sends.
type LeadSubmission struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// PartnerSubmission is the public partner-form payload.
type PartnerSubmission struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// LeadPatch is the CRM update payload.  Pointer fields distinguish
// "absent" from "set to zero"; only submitted fields overwrite.
type LeadPatch struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	Status  *Status `json:"status"`
}

// Apply merges the submitted fields over l.  The caller stamps UpdatedAt.
func (p *LeadPatch) Apply(l *Lead) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Company != nil {
		l.Company = *p.Company
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Subject != nil {
		l.Subject = *p.Subject
	}
	if p.Message != nil {
		l.Message = *p.Message
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
}
