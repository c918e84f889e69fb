package reportRepo

import "fixify/models"

// ReportRepository defines methods for report data access.
type ReportRepository interface {
	// Create inserts a new report document.
	Create(report *models.Report) error
	// GetByID retrieves a report by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Report, error)
	// GetByReporterAndBooking retrieves the report a user filed for a booking.
	// Returns (nil, nil) when none exists.
	GetByReporterAndBooking(reporterID models.UserID, bookingID string) (*models.Report, error)
	// GetAll retrieves all reports, newest first.
	GetAll() ([]models.Report, error)
	// Resolve moves a report to the resolved state.
	Resolve(id string) error
}
