package components

import "github.com/yohamta/donburi"

// SyncStats counts one pose sync pass.
type SyncStats struct {
	Synced  int
	Skipped int // non-dynamic bodies and the camera-driven player
	Stale   int // handles the physics world no longer knows
}

// DiagnosticsData aggregates per-tick event counts.
type DiagnosticsData struct {
	Tick          uint64
	Contacts      int
	Intersections int
	Spawned       int
	Despawned     int
	Fallen        int
	LastSync      SyncStats

	// totals since start
	TotalContacts int
	TotalSpawned  int
}

var Diagnostics = donburi.NewComponentType[DiagnosticsData]()
