package models

// GateStatus represents the outcome of a single toolchain gate
type GateStatus interface {
	isGateStatus()
}

type gateStatusPassed struct{}
type gateStatusSkipped struct{ Reason string }
type gateStatusFailed struct{ Output string }

func (gateStatusPassed) isGateStatus()  {}
func (gateStatusSkipped) isGateStatus() {}
func (gateStatusFailed) isGateStatus()  {}

// GatePassed indicates the gate ran and found no issues
var GatePassed GateStatus = gateStatusPassed{}

// GateSkipped creates a GateStatus for a skipped gate with a reason
func GateSkipped(reason string) GateStatus {
	return gateStatusSkipped{Reason: reason}
}

// GateFailed creates a GateStatus for a failed gate with the tool output
func GateFailed(output string) GateStatus {
	return gateStatusFailed{Output: output}
}

// GateResult represents the result of running a single toolchain gate
type GateResult struct {
	// Gate is the tool name (e.g., "ruff")
	Gate string
	// FriendlyName is the human-readable gate description
	FriendlyName string
	// Status of the gate run
	Status GateStatus
	// Files the gate actually examined after filtering
	Files []string
}

// IsGatePassed returns true if status is GatePassed
func IsGatePassed(s GateStatus) bool {
	_, ok := s.(gateStatusPassed)
	return ok
}

// IsGateSkipped returns true if status is a skip
func IsGateSkipped(s GateStatus) bool {
	_, ok := s.(gateStatusSkipped)
	return ok
}

// IsGateFailed returns true if status is a failure
func IsGateFailed(s GateStatus) bool {
	_, ok := s.(gateStatusFailed)
	return ok
}

// GateStatusDetail returns the reason or output string for skip/failure statuses
func GateStatusDetail(s GateStatus) string {
	if skipped, ok := s.(gateStatusSkipped); ok {
		return skipped.Reason
	}
	if failed, ok := s.(gateStatusFailed); ok {
		return failed.Output
	}
	return ""
}
