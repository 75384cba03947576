// Package geofence decides whether a presence fix is inside a named
// location. Everything here is pure: the same inputs always produce the
// same verdict.
package geofence

import (
	"math"
	"strings"

	Location "github.com/aleator1o/anunciosloc/internal/location/model"
	"github.com/aleator1o/anunciosloc/internal/presence"
)

const (
	// EarthRadiusMeters is the sphere radius used by the Haversine formula.
	EarthRadiusMeters = 6_371_000.0

	// ProximityFallbackMeters is the "same place" tolerance between two raw
	// fixes. Only the mule relay path uses it, when the named-location test
	// is inconclusive; the visibility resolver never does.
	ProximityFallbackMeters = 500.0
)

// Distance returns the great-circle distance in meters between two
// coordinates, via the Haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// IsInside reports whether the fix is inside the location. GEO fences
// are boundary-inclusive (distance <= radius); a missing coordinate on
// either side means false, never an error. NETWORK fences match on a
// non-empty case-insensitive identifier intersection.
func IsInside(fix *presence.PresenceRecord, loc *Location.Location) bool {
	if fix == nil || loc == nil {
		return false
	}

	switch loc.Kind {
	case Location.KindGeo:
		if !fix.HasCoordinates() || loc.Latitude == nil || loc.Longitude == nil || loc.RadiusMeters == nil {
			return false
		}
		d := Distance(*fix.Latitude, *fix.Longitude, *loc.Latitude, *loc.Longitude)
		return d <= *loc.RadiusMeters
	case Location.KindNetwork:
		return identifiersIntersect(fix.Identifiers, loc.Identifiers)
	default:
		return false
	}
}

// NearbyFixes reports whether two fixes are within the 500 m proximity
// tolerance. False whenever either side lacks coordinates.
func NearbyFixes(a, b *presence.PresenceRecord) bool {
	if !a.HasCoordinates() || !b.HasCoordinates() {
		return false
	}
	return Distance(*a.Latitude, *a.Longitude, *b.Latitude, *b.Longitude) <= ProximityFallbackMeters
}

func identifiersIntersect(fixIDs, locIDs []string) bool {
	if len(fixIDs) == 0 || len(locIDs) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(fixIDs))
	for _, id := range fixIDs {
		seen[strings.ToLower(id)] = struct{}{}
	}
	for _, id := range locIDs {
		if _, ok := seen[strings.ToLower(id)]; ok {
			return true
		}
	}
	return false
}
