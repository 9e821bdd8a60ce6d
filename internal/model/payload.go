package model

// Payload is a typed submission form for one service kind. The UI layer
// builds a payload wholesale and hands it to the submission pipeline; the
// pipeline stamps the student id from the current session before dispatch.
type Payload interface {
	Kind() ServiceKind
	SetStudent(id int64)
}

// OutingPayload requests permission to leave the hostel.
type OutingPayload struct {
	StudentID        int64  `json:"student_id"`
	OutingDate       string `json:"outing_date"`
	ReturnDate       string `json:"return_date"`
	Reason           string `json:"reason"`
	Details          string `json:"details,omitempty"`
	EmergencyContact string `json:"emergency_contact"`
}

func (p *OutingPayload) Kind() ServiceKind   { return KindOuting }
func (p *OutingPayload) SetStudent(id int64) { p.StudentID = id }

// XeroxPayload orders printing or copying.
type XeroxPayload struct {
	StudentID        int64  `json:"student_id"`
	ServiceType      string `json:"service_type"`
	Pages            int    `json:"pages"`
	DeliveryLocation string `json:"delivery_location"`
	Instructions     string `json:"instructions,omitempty"`
	ContactNumber    string `json:"contact_number"`
}

func (p *XeroxPayload) Kind() ServiceKind   { return KindXerox }
func (p *XeroxPayload) SetStudent(id int64) { p.StudentID = id }

// MessPayload books a mess meal.
type MessPayload struct {
	StudentID       int64  `json:"student_id"`
	MealType        string `json:"meal_type"`
	MealDate        string `json:"meal_date"`
	Quantity        int    `json:"quantity"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

func (p *MessPayload) Kind() ServiceKind   { return KindMess }
func (p *MessPayload) SetStudent(id int64) { p.StudentID = id }

// FivestarPayload orders from the Five Star restaurant.
type FivestarPayload struct {
	StudentID      int64  `json:"student_id"`
	Category       string `json:"category"`
	Item           string `json:"item"`
	Quantity       int    `json:"quantity"`
	DeliveryOption string `json:"delivery_option"`
	Instructions   string `json:"instructions,omitempty"`
	ContactNumber  string `json:"contact_number"`
}

func (p *FivestarPayload) Kind() ServiceKind   { return KindFivestar }
func (p *FivestarPayload) SetStudent(id int64) { p.StudentID = id }

// CCDPayload orders from the campus Cafe Coffee Day.
type CCDPayload struct {
	StudentID     int64  `json:"student_id"`
	Category      string `json:"category"`
	Item          string `json:"item"`
	Quantity      int    `json:"quantity"`
	Size          string `json:"size"`
	Instructions  string `json:"instructions,omitempty"`
	ContactNumber string `json:"contact_number"`
}

func (p *CCDPayload) Kind() ServiceKind   { return KindCCD }
func (p *CCDPayload) SetStudent(id int64) { p.StudentID = id }

// StationaryPayload orders from the stationary shop. The original portal
// spells it "stationary" on the wire, so the client keeps that spelling.
type StationaryPayload struct {
	StudentID      int64  `json:"student_id"`
	Category       string `json:"category"`
	Item           string `json:"item"`
	Quantity       int    `json:"quantity"`
	DeliveryOption string `json:"delivery_option"`
	Instructions   string `json:"instructions,omitempty"`
	ContactNumber  string `json:"contact_number"`
}

func (p *StationaryPayload) Kind() ServiceKind   { return KindStationary }
func (p *StationaryPayload) SetStudent(id int64) { p.StudentID = id }
