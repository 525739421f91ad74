package timeentry

import (
	"fmt"

	"github.com/horaria-hr/horaria-backend-go/internal/domain/tenant"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/timeentry"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/user"
	"github.com/horaria-hr/horaria-backend-go/internal/pkg/geo"
)

// homeRadiusMeters is the tolerance around a registered home office before a
// REMOTE entry gets flagged. More permissive than the office radius on
// purpose: remote work is a soft signal, not a gate.
const homeRadiusMeters = 500

// evaluateTrustPolicy decides whether a clock event is verified and, when it
// is not, why.
//
// PRESENTIAL is a hard gate: coordinates are mandatory and an event
// definitively outside the office radius is rejected. The one exception is a
// tenant with no office configured, which records the event unverified so
// staff are not blocked until an admin fixes the configuration.
//
// REMOTE never rejects: missing coordinates are fine, and a mismatch with the
// registered home office only flags the entry for admin review.
func evaluateTrustPolicy(mode timeentry.WorkMode, location *timeentry.Location, t tenant.Tenant, u user.User) (isVerified bool, note string, err error) {
	switch mode {
	case timeentry.ModePresential:
		if location == nil {
			return false, "", timeentry.ErrLocationRequired
		}

		if !t.HasOfficeLocation() {
			return false, "Ubicación de Oficina no configurada en el sistema.", nil
		}

		radius := t.OfficeRadius()
		distance := geo.DistanceMeters(location.Lat, location.Lng, *t.OfficeLat, *t.OfficeLng)
		if distance > float64(radius) {
			return false, "", &timeentry.OutOfGeofenceError{
				DistanceMeters: distance,
				LimitMeters:    radius,
			}
		}

		return true, "", nil

	case timeentry.ModeRemote:
		if location == nil || !u.HasHomeLocation() {
			return true, "", nil
		}

		distance := geo.DistanceMeters(location.Lat, location.Lng, *u.HomeLat, *u.HomeLng)
		if distance > homeRadiusMeters {
			return false, fmt.Sprintf("Ubicación difiere de Home Office registrado (%.0fm)", distance), nil
		}

		return true, "", nil
	}

	// DTO validation rejects unknown modes before we get here.
	return true, "", nil
}
