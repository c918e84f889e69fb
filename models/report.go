package models

import "time"

// Report resolution states.
const (
	ReportPending  = "pending"
	ReportResolved = "resolved"
)

// Report is filed by one booking party against the other. At most one report
// exists per (reporter, booking) pair.
type Report struct {
	ID             string    `bson:"id" json:"id"`
	ReporterID     UserID    `bson:"reporterId" json:"reporterId"`
	ReportedUserID UserID    `bson:"reportedUserId" json:"reportedUserId"`
	BookingID      string    `bson:"bookingId" json:"bookingId"`
	Reason         string    `bson:"reason" json:"reason"`
	ReporterRole   string    `bson:"reporterRole" json:"reporterRole"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}
