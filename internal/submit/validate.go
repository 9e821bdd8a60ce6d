package submit

import (
	"fmt"

	"college-portal-client/internal/model"
	"college-portal-client/internal/portal"
)

func required(field, value string) error {
	if value == "" {
		return &portal.ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
	}
	return nil
}

func positive(field string, value int) error {
	if value < 1 {
		return &portal.ValidationError{Field: field, Message: fmt.Sprintf("%s must be at least 1", field)}
	}
	return nil
}

// validate enforces the kind-specific required-field constraints. A violation
// means the submission never reaches the network.
func validate(payload model.Payload) error {
	switch p := payload.(type) {
	case *model.OutingPayload:
		for field, value := range map[string]string{
			"outing_date":       p.OutingDate,
			"return_date":       p.ReturnDate,
			"reason":            p.Reason,
			"emergency_contact": p.EmergencyContact,
		} {
			if err := required(field, value); err != nil {
				return err
			}
		}
		// ISO-8601 date strings compare chronologically.
		if p.ReturnDate < p.OutingDate {
			return &portal.ValidationError{Field: "return_date", Message: "Return date cannot be before the outing date"}
		}
	case *model.XeroxPayload:
		if err := required("service_type", p.ServiceType); err != nil {
			return err
		}
		if err := positive("pages", p.Pages); err != nil {
			return err
		}
		if err := required("delivery_location", p.DeliveryLocation); err != nil {
			return err
		}
		return required("contact_number", p.ContactNumber)
	case *model.MessPayload:
		if err := required("meal_type", p.MealType); err != nil {
			return err
		}
		if err := required("meal_date", p.MealDate); err != nil {
			return err
		}
		return positive("quantity", p.Quantity)
	case *model.FivestarPayload:
		if err := validateOrder(p.Category, p.Item, p.Quantity, p.ContactNumber); err != nil {
			return err
		}
		return required("delivery_option", p.DeliveryOption)
	case *model.CCDPayload:
		if err := validateOrder(p.Category, p.Item, p.Quantity, p.ContactNumber); err != nil {
			return err
		}
		return required("size", p.Size)
	case *model.StationaryPayload:
		if err := validateOrder(p.Category, p.Item, p.Quantity, p.ContactNumber); err != nil {
			return err
		}
		return required("delivery_option", p.DeliveryOption)
	default:
		return &portal.ValidationError{Message: fmt.Sprintf("unsupported payload type %T", payload)}
	}
	return nil
}

// validateOrder covers the fields the three shop order kinds share.
func validateOrder(category, item string, quantity int, contact string) error {
	if err := required("category", category); err != nil {
		return err
	}
	if err := required("item", item); err != nil {
		return err
	}
	if err := positive("quantity", quantity); err != nil {
		return err
	}
	return required("contact_number", contact)
}
