package usecases

// InquiryDTO is the admin view of a stored inquiry.
type InquiryDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Company    string `json:"company"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}
