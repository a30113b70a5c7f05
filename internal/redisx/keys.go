package redisx

import "time"

const (
	// Per-device view of the storefront storage: device:{device_id}:{key}
	KeyDevicePrefix = "device:%s:"

	// Dedup of consumed events: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var TTLDedup = 48 * time.Hour
