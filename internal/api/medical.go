package api

import (
	"context"
	"fmt"
	"io"

	"github.com/ameziane/coachctl/internal/models"
)

// MedicalService maps medical-record operations onto gateway calls.
// Records are keyed by athlete, not by their own id.
type MedicalService struct {
	client *Client
}

// NewMedicalService creates a MedicalService over the given gateway client.
func NewMedicalService(client *Client) *MedicalService {
	return &MedicalService{client: client}
}

// Get retrieves an athlete's medical record.
func (s *MedicalService) Get(ctx context.Context, athleteID int) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	if err := s.client.Get(ctx, fmt.Sprintf("/api/medical-records/%d", athleteID), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert creates or replaces an athlete's medical record.
func (s *MedicalService) Upsert(ctx context.Context, athleteID int, record *models.MedicalRecord) (*models.MedicalRecord, error) {
	var stored models.MedicalRecord
	if err := s.client.Put(ctx, fmt.Sprintf("/api/medical-records/%d", athleteID), record, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// UploadCertificate attaches a medical certificate PDF via multipart form-data.
func (s *MedicalService) UploadCertificate(ctx context.Context, athleteID int, filename string, certificate io.Reader) (*models.MedicalRecord, error) {
	var updated models.MedicalRecord
	endpoint := fmt.Sprintf("/api/medical-records/%d/certificate", athleteID)
	if err := s.client.PostForm(ctx, endpoint, nil, "certificat", filename, certificate, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
