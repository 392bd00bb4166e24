package company

import "time"

// DefaultRegisterRangeMeters is the geofence radius applied when a company
// has no explicit register_range_meters configured.
const DefaultRegisterRangeMeters = 300

type Company struct {
	ID                  string
	Name                string
	Email               *string
	Latitude            *string
	Longitude           *string
	AllowEntryOutRange  bool
	RegisterRangeMeters *int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasGeofence reports whether a geofence center is fully configured.
func (c *Company) HasGeofence() bool {
	return c.Latitude != nil && *c.Latitude != "" && c.Longitude != nil && *c.Longitude != ""
}

// RangeMeters returns the configured geofence radius, falling back to the
// default when unset.
func (c *Company) RangeMeters() float64 {
	if c.RegisterRangeMeters != nil {
		return float64(*c.RegisterRangeMeters)
	}
	return DefaultRegisterRangeMeters
}
