package inquiry

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"twoloom/internal/domain/inquiry/valueobjects"
)

const (
	// MessageMinLength and MessageMaxLength bound the free-text message,
	// counted in runes.
	MessageMinLength = 10
	MessageMaxLength = 1000

	// Defaults for the per-email submission throttle. The window and cap
	// can be overridden via configuration.
	DefaultRateLimitWindow      = 5 * time.Minute
	DefaultRateLimitMaxRequests = 3
)

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s is a known status. Any valid status may be
// assigned regardless of the current one; there is no ordering between them.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

type Inquiry struct {
	id         uint
	name       string
	email      *valueobjects.Email
	company    string
	phone      string
	message    string
	status     Status
	adminNotes string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewInquiry(name, email, company, phone, message string) (*Inquiry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	if length := utf8.RuneCountInString(message); length < MessageMinLength || length > MessageMaxLength {
		return nil, fmt.Errorf("message must be between %d and %d characters", MessageMinLength, MessageMaxLength)
	}

	now := time.Now()

	return &Inquiry{
		name:      name,
		email:     emailVO,
		company:   strings.TrimSpace(company),
		phone:     strings.TrimSpace(phone),
		message:   message,
		status:    StatusNew,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructInquiry(
	id uint,
	name, email, company, phone, message string,
	status Status,
	adminNotes string,
	createdAt, updatedAt time.Time,
) (*Inquiry, error) {
	if id == 0 {
		return nil, fmt.Errorf("inquiry ID cannot be zero")
	}

	emailVO, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Inquiry{
		id:         id,
		name:       name,
		email:      emailVO,
		company:    company,
		phone:      phone,
		message:    message,
		status:     status,
		adminNotes: adminNotes,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (i *Inquiry) ID() uint                   { return i.id }
func (i *Inquiry) Name() string               { return i.name }
func (i *Inquiry) Email() *valueobjects.Email { return i.email }
func (i *Inquiry) Company() string            { return i.company }
func (i *Inquiry) Phone() string              { return i.phone }
func (i *Inquiry) Message() string            { return i.message }
func (i *Inquiry) Status() Status             { return i.status }
func (i *Inquiry) AdminNotes() string         { return i.adminNotes }
func (i *Inquiry) CreatedAt() time.Time       { return i.createdAt }
func (i *Inquiry) UpdatedAt() time.Time       { return i.updatedAt }

func (i *Inquiry) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("inquiry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("inquiry ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Inquiry) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	i.status = status
	i.updatedAt = time.Now()
	return nil
}

func (i *Inquiry) SetAdminNotes(notes string) {
	i.adminNotes = notes
	i.updatedAt = time.Now()
}
