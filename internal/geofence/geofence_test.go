package geofence

import (
	"math"
	"testing"

	Location "github.com/aleator1o/anunciosloc/internal/location/model"
	"github.com/aleator1o/anunciosloc/internal/presence"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func fixAt(lat, lon float64) *presence.PresenceRecord {
	return &presence.PresenceRecord{Latitude: ptr(lat), Longitude: ptr(lon)}
}

func geoLocation(lat, lon, radius float64) *Location.Location {
	return &Location.Location{
		Kind:         Location.KindGeo,
		Latitude:     ptr(lat),
		Longitude:    ptr(lon),
		RadiusMeters: ptr(radius),
	}
}

func TestDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(-8.8139, 13.2319, -8.8139, 13.2319))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := Distance(-8.8139, 13.2319, -8.8147, 13.2301)
		d2 := Distance(-8.8147, 13.2301, -8.8139, 13.2319)
		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("known city pair within one percent", func(t *testing.T) {
		// Luanda to Benguela, roughly 416 km great-circle.
		d := Distance(-8.8390, 13.2894, -12.5763, 13.4055)
		assert.InDelta(t, 415_700, d, 5_000)
	})
}

func TestIsInside_Geo(t *testing.T) {
	// 50 m radius fence in central Luanda.
	loc := geoLocation(-8.8139, 13.2319, 50)

	t.Run("center is inside", func(t *testing.T) {
		assert.True(t, IsInside(fixAt(-8.8139, 13.2319), loc))
	})

	t.Run("boundary at exactly the radius is inside", func(t *testing.T) {
		// Fence whose radius equals the exact distance to the fix.
		fix := fixAt(-8.8143, 13.2319)
		d := Distance(*fix.Latitude, *fix.Longitude, -8.8139, 13.2319)
		exact := geoLocation(-8.8139, 13.2319, d)
		assert.True(t, IsInside(fix, exact))
	})

	t.Run("one meter past the boundary is outside", func(t *testing.T) {
		dLat := 51.0 / EarthRadiusMeters * 180 / math.Pi
		assert.False(t, IsInside(fixAt(-8.8139+dLat, 13.2319), loc))
	})

	t.Run("missing fix coordinates is outside, not an error", func(t *testing.T) {
		assert.False(t, IsInside(&presence.PresenceRecord{}, loc))
		assert.False(t, IsInside(&presence.PresenceRecord{Identifiers: []string{"campus-wifi"}}, loc))
	})

	t.Run("missing fence coordinates is outside", func(t *testing.T) {
		broken := &Location.Location{Kind: Location.KindGeo, RadiusMeters: ptr(50)}
		assert.False(t, IsInside(fixAt(-8.8139, 13.2319), broken))
	})

	t.Run("nil fix or location is outside", func(t *testing.T) {
		assert.False(t, IsInside(nil, loc))
		assert.False(t, IsInside(fixAt(-8.8139, 13.2319), nil))
	})
}

func TestIsInside_Network(t *testing.T) {
	loc := &Location.Location{
		Kind:        Location.KindNetwork,
		Identifiers: []string{"Campus-WiFi", "library-ble"},
	}

	t.Run("intersection matches", func(t *testing.T) {
		fix := &presence.PresenceRecord{Identifiers: []string{"home-net", "library-ble"}}
		assert.True(t, IsInside(fix, loc))
	})

	t.Run("case-insensitive", func(t *testing.T) {
		fix := &presence.PresenceRecord{Identifiers: []string{"CAMPUS-WIFI"}}
		assert.True(t, IsInside(fix, loc))
	})

	t.Run("no overlap", func(t *testing.T) {
		fix := &presence.PresenceRecord{Identifiers: []string{"cafe-net"}}
		assert.False(t, IsInside(fix, loc))
	})

	t.Run("empty identifier sets never match", func(t *testing.T) {
		assert.False(t, IsInside(&presence.PresenceRecord{}, loc))
		empty := &Location.Location{Kind: Location.KindNetwork}
		assert.False(t, IsInside(&presence.PresenceRecord{Identifiers: []string{"x"}}, empty))
	})

	t.Run("GPS coordinates are irrelevant for network fences", func(t *testing.T) {
		fix := fixAt(-8.8139, 13.2319)
		fix.Identifiers = []string{"campus-wifi"}
		assert.True(t, IsInside(fix, loc))
	})
}

func TestNearbyFixes(t *testing.T) {
	t.Run("within 500 m", func(t *testing.T) {
		// ~300 m apart.
		assert.True(t, NearbyFixes(fixAt(-8.8139, 13.2319), fixAt(-8.8166, 13.2319)))
	})

	t.Run("beyond 500 m", func(t *testing.T) {
		// ~1.1 km apart.
		assert.False(t, NearbyFixes(fixAt(-8.8139, 13.2319), fixAt(-8.8239, 13.2319)))
	})

	t.Run("missing coordinates on either side", func(t *testing.T) {
		withIDs := &presence.PresenceRecord{Identifiers: []string{"campus-wifi"}}
		assert.False(t, NearbyFixes(withIDs, fixAt(-8.8139, 13.2319)))
		assert.False(t, NearbyFixes(fixAt(-8.8139, 13.2319), withIDs))
	})
}
