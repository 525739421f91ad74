package tenant

import "time"

// DefaultOfficeRadiusMeters applies when a tenant has an office location
// configured without an explicit radius.
const DefaultOfficeRadiusMeters = 300

type Tenant struct {
	ID                 string
	Name               string
	PlanType           string
	OfficeLat          *float64
	OfficeLng          *float64
	OfficeAddress      *string
	OfficeRadiusMeters *int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasOfficeLocation reports whether the office geofence is configured.
func (t *Tenant) HasOfficeLocation() bool {
	return t.OfficeLat != nil && t.OfficeLng != nil
}

// OfficeRadius returns the configured radius or the default.
func (t *Tenant) OfficeRadius() int {
	if t.OfficeRadiusMeters != nil && *t.OfficeRadiusMeters > 0 {
		return *t.OfficeRadiusMeters
	}
	return DefaultOfficeRadiusMeters
}
