package model

import "time"

// RequestRecord is the local storage row backing one service request when the
// client runs with the local backend instead of the remote API. All kinds
// share one table; Kind selects which nullable columns are meaningful,
// mirroring the tagged-union shape of ServiceRequest.
type RequestRecord struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Kind      string `gorm:"size:20;index:idx_requests_kind_student;not null"`
	StudentID int64  `gorm:"index:idx_requests_kind_student;not null"`
	Status    string `gorm:"size:20;not null"`

	OutingDate       *time.Time
	ReturnDate       *time.Time
	Reason           string `gorm:"size:50"`
	Details          string
	EmergencyContact string `gorm:"size:20"`

	ServiceType      string `gorm:"size:50"`
	Pages            int
	DeliveryLocation string `gorm:"size:50"`

	MealType        string `gorm:"size:20"`
	MealDate        *time.Time
	SpecialRequests string

	Category       string `gorm:"size:50"`
	Item           string `gorm:"size:100"`
	Size           string `gorm:"size:20"`
	DeliveryOption string `gorm:"size:50"`

	Quantity      int
	Instructions  string
	ContactNumber string `gorm:"size:20"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

// StatusLog is the audit trail of status transitions for local requests.
type StatusLog struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Kind      string `gorm:"size:20;not null;index:idx_status_log_request"`
	RequestID int64  `gorm:"not null;index:idx_status_log_request"`
	Status    string `gorm:"size:20;not null"`
	UpdatedBy string `gorm:"size:100"`
	Notes     string
	CreatedAt time.Time `gorm:"not null"`
}
