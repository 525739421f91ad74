package validator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("admin@acme.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.org"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@acme.com"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0190163d-8694-7d3b-a10c-3b9a04b6b339"))
	// v4 UUID is rejected
	assert.False(t, IsValidUUID("9f8b3c42-1b2a-4c5d-8e9f-0a1b2c3d4e5f"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-08-31")
	assert.True(t, ok)
	_, ok = IsValidDate("31-08-2026")
	assert.False(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
}

func TestIsFiniteCoordinate(t *testing.T) {
	assert.True(t, IsFiniteCoordinate(-34.6037, -58.3816))
	assert.True(t, IsFiniteCoordinate(0, 0))
	assert.False(t, IsFiniteCoordinate(math.NaN(), 0))
	assert.False(t, IsFiniteCoordinate(0, math.NaN()))
	assert.False(t, IsFiniteCoordinate(math.Inf(1), 0))
	assert.False(t, IsFiniteCoordinate(0, math.Inf(-1)))
}

func TestLatitudeLongitudeRanges(t *testing.T) {
	assert.True(t, IsValidLatitude(90))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.0001))
	assert.True(t, IsValidLongitude(180))
	assert.True(t, IsValidLongitude(-180))
	assert.False(t, IsValidLongitude(-180.0001))
}
