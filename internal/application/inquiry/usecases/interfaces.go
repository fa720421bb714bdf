package usecases

import "context"

// InquiryNotification carries the fields the mailer needs. Both messages are
// best effort; failures never affect the stored inquiry.
type InquiryNotification struct {
	InquiryID uint
	Name      string
	Email     string
	Company   string
	Phone     string
	Message   string
}

type InquiryNotifier interface {
	// NotifyOperator informs the studio inbox about a new inquiry.
	NotifyOperator(ctx context.Context, n InquiryNotification) error
	// AcknowledgeRequester sends a receipt to the person who wrote in.
	AcknowledgeRequester(ctx context.Context, n InquiryNotification) error
}
