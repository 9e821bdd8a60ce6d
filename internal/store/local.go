package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"college-portal-client/internal/model"
	"college-portal-client/internal/portal"
)

// Local is the Backend keeping requests in a database owned by the client,
// for running the portal workflow without the remote API. It assigns ids and
// the initial "pending" status itself and keeps a status audit log.
type Local struct {
	db *gorm.DB
}

// NewLocal creates a database-backed storage backend.
func NewLocal(db *gorm.DB) *Local {
	return &Local{db: db}
}

// DB exposes the underlying handle for status administration commands.
func (l *Local) DB() *gorm.DB {
	return l.db
}

func (l *Local) Create(ctx context.Context, payload model.Payload) (*model.ServiceRequest, error) {
	record, err := recordFromPayload(payload)
	if err != nil {
		return nil, err
	}
	record.Status = "pending"

	err = l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create request record: %w", err)
		}
		entry := model.StatusLog{
			Kind:      record.Kind,
			RequestID: record.ID,
			Status:    record.Status,
			Notes:     payload.Kind().DisplayName() + " submitted",
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to log request status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, &portal.ServerError{Status: 500, Message: "Failed to save request"}
	}

	created := requestFromRecord(record)
	return &created, nil
}

func (l *Local) List(ctx context.Context, kind model.ServiceKind, studentID int64) ([]model.ServiceRequest, error) {
	var records []model.RequestRecord
	err := l.db.WithContext(ctx).
		Where("kind = ? AND student_id = ?", string(kind), studentID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, &portal.ServerError{Status: 500, Message: "Failed to retrieve requests"}
	}

	requests := make([]model.ServiceRequest, 0, len(records))
	for i := range records {
		requests = append(requests, requestFromRecord(&records[i]))
	}
	return requests, nil
}

func (l *Local) Stats(ctx context.Context) (*model.DashboardStats, error) {
	stats := &model.DashboardStats{}
	counts := map[model.ServiceKind]*int64{
		model.KindOuting:     &stats.PendingOutings,
		model.KindXerox:      &stats.PendingXerox,
		model.KindMess:       &stats.PendingMess,
		model.KindFivestar:   &stats.PendingFivestar,
		model.KindCCD:        &stats.PendingCCD,
		model.KindStationary: &stats.PendingStationary,
	}
	for kind, dest := range counts {
		err := l.db.WithContext(ctx).
			Model(&model.RequestRecord{}).
			Where("kind = ? AND status = ?", string(kind), "pending").
			Count(dest).Error
		if err != nil {
			return nil, &portal.ServerError{Status: 500, Message: "Failed to aggregate stats"}
		}
	}
	return stats, nil
}

// UpdateStatus transitions a stored request and appends to the audit log.
func (l *Local) UpdateStatus(ctx context.Context, kind model.ServiceKind, requestID int64, status, updatedBy, notes string) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record model.RequestRecord
		err := tx.Where("kind = ? AND id = ?", string(kind), requestID).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("request %s/%d not found", kind, requestID)
		}
		if err != nil {
			return err
		}
		if err := tx.Model(&record).Update("status", status).Error; err != nil {
			return fmt.Errorf("failed to update status for request %d: %w", requestID, err)
		}
		entry := model.StatusLog{
			Kind:      string(kind),
			RequestID: requestID,
			Status:    status,
			UpdatedBy: updatedBy,
			Notes:     notes,
		}
		return tx.Create(&entry).Error
	})
}

// StatusHistory returns the audit trail for one request, newest first.
func (l *Local) StatusHistory(ctx context.Context, kind model.ServiceKind, requestID int64) ([]model.StatusLog, error) {
	var entries []model.StatusLog
	err := l.db.WithContext(ctx).
		Where("kind = ? AND request_id = ?", string(kind), requestID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// dateLayouts are the formats payload date strings arrive in.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}

// recordFromPayload maps a typed payload onto the shared request row. Only
// the columns belonging to the payload's kind are populated.
func recordFromPayload(payload model.Payload) (*model.RequestRecord, error) {
	record := &model.RequestRecord{Kind: string(payload.Kind())}

	switch p := payload.(type) {
	case *model.OutingPayload:
		outing, err := parseDate(p.OutingDate)
		if err != nil {
			return nil, err
		}
		ret, err := parseDate(p.ReturnDate)
		if err != nil {
			return nil, err
		}
		record.StudentID = p.StudentID
		record.OutingDate = outing
		record.ReturnDate = ret
		record.Reason = p.Reason
		record.Details = p.Details
		record.EmergencyContact = p.EmergencyContact
	case *model.XeroxPayload:
		record.StudentID = p.StudentID
		record.ServiceType = p.ServiceType
		record.Pages = p.Pages
		record.DeliveryLocation = p.DeliveryLocation
		record.Instructions = p.Instructions
		record.ContactNumber = p.ContactNumber
	case *model.MessPayload:
		meal, err := parseDate(p.MealDate)
		if err != nil {
			return nil, err
		}
		record.StudentID = p.StudentID
		record.MealType = p.MealType
		record.MealDate = meal
		record.Quantity = p.Quantity
		record.SpecialRequests = p.SpecialRequests
	case *model.FivestarPayload:
		record.StudentID = p.StudentID
		record.Category = p.Category
		record.Item = p.Item
		record.Quantity = p.Quantity
		record.DeliveryOption = p.DeliveryOption
		record.Instructions = p.Instructions
		record.ContactNumber = p.ContactNumber
	case *model.CCDPayload:
		record.StudentID = p.StudentID
		record.Category = p.Category
		record.Item = p.Item
		record.Quantity = p.Quantity
		record.Size = p.Size
		record.Instructions = p.Instructions
		record.ContactNumber = p.ContactNumber
	case *model.StationaryPayload:
		record.StudentID = p.StudentID
		record.Category = p.Category
		record.Item = p.Item
		record.Quantity = p.Quantity
		record.DeliveryOption = p.DeliveryOption
		record.Instructions = p.Instructions
		record.ContactNumber = p.ContactNumber
	default:
		return nil, fmt.Errorf("unsupported payload type %T", payload)
	}
	return record, nil
}

// requestFromRecord converts a stored row back into the wire-shaped request.
func requestFromRecord(record *model.RequestRecord) model.ServiceRequest {
	req := model.ServiceRequest{
		Kind:             model.ServiceKind(record.Kind),
		ID:               record.ID,
		StudentID:        record.StudentID,
		Status:           record.Status,
		CreatedAt:        model.NewTimestamp(record.CreatedAt),
		Reason:           record.Reason,
		Details:          record.Details,
		EmergencyContact: record.EmergencyContact,
		ServiceType:      record.ServiceType,
		Pages:            record.Pages,
		DeliveryLocation: record.DeliveryLocation,
		MealType:         record.MealType,
		SpecialRequests:  record.SpecialRequests,
		Category:         record.Category,
		Item:             record.Item,
		Size:             record.Size,
		DeliveryOption:   record.DeliveryOption,
		Quantity:         record.Quantity,
		Instructions:     record.Instructions,
		ContactNumber:    record.ContactNumber,
	}
	if record.OutingDate != nil {
		req.OutingDate = model.NewTimestamp(*record.OutingDate)
	}
	if record.ReturnDate != nil {
		req.ReturnDate = model.NewTimestamp(*record.ReturnDate)
	}
	if record.MealDate != nil {
		req.MealDate = model.NewTimestamp(*record.MealDate)
	}
	return req
}
