package inbound

// SessionRegistryPort tracks which sessions have a generation in flight.
// Begin returns domain.ErrSessionBusy when the session is already
// generating; End must be called once the terminal event is out.
type SessionRegistryPort interface {
	Begin(sessionID string) error
	End(sessionID string)
}
