package model

// ServiceRequest is one submitted request of any kind. It is a tagged union:
// Kind determines which of the optional field groups is populated, and fields
// from different kinds are never mixed. The backend does not tag list items
// with their kind, so Kind is attached client-side and kept off the wire.
type ServiceRequest struct {
	Kind ServiceKind `json:"-"`

	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   Timestamp `json:"created_at"`

	// Outing
	OutingDate       Timestamp `json:"outing_date,omitzero"`
	ReturnDate       Timestamp `json:"return_date,omitzero"`
	Reason           string    `json:"reason,omitempty"`
	Details          string    `json:"details,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	ParentNotified   bool      `json:"parent_notified,omitempty"`
	SecurityNotified bool      `json:"security_notified,omitempty"`

	// Xerox
	ServiceType      string `json:"service_type,omitempty"`
	Pages            int    `json:"pages,omitempty"`
	DeliveryLocation string `json:"delivery_location,omitempty"`

	// Mess
	MealType        string    `json:"meal_type,omitempty"`
	MealDate        Timestamp `json:"meal_date,omitzero"`
	SpecialRequests string    `json:"special_requests,omitempty"`

	// Fivestar / CCD / Stationary
	Category       string `json:"category,omitempty"`
	Item           string `json:"item,omitempty"`
	Size           string `json:"size,omitempty"`
	DeliveryOption string `json:"delivery_option,omitempty"`

	// Shared by several order kinds
	Quantity      int    `json:"quantity,omitempty"`
	Instructions  string `json:"instructions,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
}

// Feed is the merged, created_at-descending, optionally kind-filtered list of
// a student's requests. It is always rebuilt wholesale, never patched.
type Feed []ServiceRequest

// FilterAll selects every kind in Filter.
const FilterAll = "all"

// Filter returns the subset of the feed whose kind matches. "all" returns the
// feed unchanged. Filtering is pure post-processing over an already-loaded
// feed; it never touches the network.
func (f Feed) Filter(filter string) Feed {
	if filter == FilterAll || filter == "" {
		return f
	}
	out := make(Feed, 0, len(f))
	for _, r := range f {
		if string(r.Kind) == filter {
			out = append(out, r)
		}
	}
	return out
}
