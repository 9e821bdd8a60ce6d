package relay

import (
	"fmt"

	"college-portal-client/internal/model"
)

// orNone substitutes the literal "None" for absent optional fields, matching
// the portal's notification wording.
func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func date(t model.Timestamp) string {
	if t.IsZero() {
		return "None"
	}
	return t.Format("2006-01-02")
}

// Message renders the fixed human-readable summary for a just-created
// request. One template per kind; unknown kinds fall back to a generic line.
func Message(kind model.ServiceKind, req *model.ServiceRequest) string {
	switch kind {
	case model.KindOuting:
		return fmt.Sprintf("*Outing Request*\n\nDate: %s\nReturn: %s\nReason: %s\nDetails: %s\nEmergency Contact: %s",
			date(req.OutingDate), date(req.ReturnDate), req.Reason, orNone(req.Details), req.EmergencyContact)
	case model.KindXerox:
		return fmt.Sprintf("*Xerox Order*\n\nService: %s\nPages: %d\nDelivery: %s\nInstructions: %s\nContact: %s",
			req.ServiceType, req.Pages, req.DeliveryLocation, orNone(req.Instructions), req.ContactNumber)
	case model.KindMess:
		return fmt.Sprintf("*Mess Order*\n\nMeal: %s\nDate: %s\nQuantity: %d\nSpecial Requests: %s",
			req.MealType, date(req.MealDate), req.Quantity, orNone(req.SpecialRequests))
	case model.KindFivestar:
		return fmt.Sprintf("*Five Star Order*\n\nCategory: %s\nItem: %s\nQuantity: %d\nDelivery: %s\nInstructions: %s\nContact: %s",
			req.Category, req.Item, req.Quantity, req.DeliveryOption, orNone(req.Instructions), req.ContactNumber)
	case model.KindCCD:
		return fmt.Sprintf("*CCD Order*\n\nCategory: %s\nItem: %s\nQuantity: %d\nSize: %s\nInstructions: %s\nContact: %s",
			req.Category, req.Item, req.Quantity, req.Size, orNone(req.Instructions), req.ContactNumber)
	case model.KindStationary:
		return fmt.Sprintf("*Stationary Order*\n\nCategory: %s\nItem: %s\nQuantity: %d\nDelivery: %s\nInstructions: %s\nContact: %s",
			req.Category, req.Item, req.Quantity, req.DeliveryOption, orNone(req.Instructions), req.ContactNumber)
	}
	return fmt.Sprintf("*%s Request*\n\nOrder ID: %d", kind, req.ID)
}
