package repositories

import (
	"context"

	"gorm.io/gorm"

	"hexadigitall/internal/models"
	"hexadigitall/internal/services/wizard"
)

// RequestRepository persists quote requests and enrollment records.
// Implements wizard.QuoteRecorder and enrollment.Recorder.
type RequestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a request repository.
func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) RecordQuote(ctx context.Context, record wizard.QuoteRecord) error {
	status := models.RequestStatusSubmitted
	if record.PaymentStarted {
		status = models.RequestStatusPaid
	}
	meta := models.JSON{}
	for k, v := range record.Metadata {
		meta[k] = v
	}
	row := &models.QuoteRequest{
		Reference:       record.Reference,
		Email:           record.Selection.Contact.Email,
		Company:         record.Selection.Contact.Company,
		Phone:           record.Selection.Contact.Phone,
		PlatformID:      record.Selection.PlatformID,
		FeatureIDs:      models.StringList(record.Selection.FeatureIDs),
		AddonIDs:        models.StringList(record.Selection.AddonIDs),
		Currency:        record.Currency,
		TotalUSD:        record.TotalUSD,
		TotalDisplay:    record.TotalDisplay,
		DiscountApplied: record.DiscountApplied,
		Metadata:        meta,
		Status:          status,
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *RequestRepository) RecordEnrollment(ctx context.Context, record *models.EnrollmentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}
