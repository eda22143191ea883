package service

// Service is an optional infrastructure subsystem with a start/stop lifecycle
// The simulation never depends on one running: audio devices and listen
// addresses may be unavailable and the program continues without them
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire devices or sockets, launch goroutines
//  3. [runtime operation]
//  4. Stop() - release resources, must be idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins operation; an error leaves the service unstarted
	Start() error

	// Stop halts operation and releases resources
	Stop() error
}
