package domain

type Status string

const (
	StatusSent    Status = "sent"
	StatusNotSent Status = "not_sent"
)

// Reminder is one normalized reminder event.
type Reminder struct {
	UserID      string
	CreatedDate string // YYYY-MM-DD
	SentDate    string // YYYY-MM-DD, empty when never delivered
	Status      Status
}

func (r Reminder) IsSent() bool {
	return r.Status == StatusSent
}

type Dataset []Reminder

func (d Dataset) Empty() bool {
	return len(d) == 0
}

// DatePrefix keeps the first 10 characters of a stored timestamp.
func DatePrefix(ts string) string {
	if len(ts) <= 10 {
		return ts
	}
	return ts[:10]
}

// NormalizeStatus maps a missing status to not_sent.
func NormalizeStatus(s string) Status {
	if s == "" {
		return StatusNotSent
	}
	return Status(s)
}

// Normalize applies the projection rules to a row that was read raw
// (or already projected; the operation is idempotent).
func Normalize(r Reminder) Reminder {
	return Reminder{
		UserID:      r.UserID,
		CreatedDate: DatePrefix(r.CreatedDate),
		SentDate:    DatePrefix(r.SentDate),
		Status:      NormalizeStatus(string(r.Status)),
	}
}
