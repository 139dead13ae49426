package partner

// Status represents the lifecycle status of a partner record
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is a valid partner Status
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}
