package absence

import "time"

type AbsenceType string

const (
	TypeVacation  AbsenceType = "VACATION"
	TypeSickLeave AbsenceType = "SICK_LEAVE"
	TypePersonal  AbsenceType = "PERSONAL"
	TypeOther     AbsenceType = "OTHER"
)

type AbsenceStatus string

const (
	StatusPending  AbsenceStatus = "PENDING"
	StatusApproved AbsenceStatus = "APPROVED"
	StatusRejected AbsenceStatus = "REJECTED"
)

type AbsenceReport struct {
	ID          string
	UserID      string
	TenantID    string
	Type        AbsenceType
	StartDate   time.Time
	EndDate     time.Time
	Description *string
	Status      AbsenceStatus
	ReviewedBy  *string
	ReviewedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	UserName *string
}
