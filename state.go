package ticker

// State is where a controller is in its lifecycle.
//
//	Idle -> Running -> Expired | Stopped
//
// Stop on an Idle controller moves it straight to Stopped.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StateExpired
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StateExpired:
		return "EXPIRED"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether s is Expired or Stopped.
func (s State) Terminal() bool {
	return s == StateExpired || s == StateStopped
}
