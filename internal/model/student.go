package model

// Student is the authenticated identity snapshot returned by the backend.
// The backend is authoritative; the client never edits these fields.
type Student struct {
	ID               int64  `json:"id"`
	StudentID        string `json:"student_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	HostelRoom       string `json:"hostel_room"`
	BloodGroup       string `json:"blood_group"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

// SignupProfile is the registration payload sent to POST /api/signup.
// ConfirmPassword is checked locally and never leaves the client.
type SignupProfile struct {
	StudentID        string `json:"student_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Password         string `json:"password"`
	ConfirmPassword  string `json:"-"`
	EmergencyContact string `json:"emergency_contact"`
	HostelRoom       string `json:"hostel_room"`
	BloodGroup       string `json:"blood_group"`
}
