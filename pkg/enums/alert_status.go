package enums

import (
	"fmt"
	"strings"
)

// AlertStatus tracks whether a low-stock alert awaits operator action.
type AlertStatus string

const (
	AlertStatusPending  AlertStatus = "Pending"
	AlertStatusResolved AlertStatus = "Resolved"
)

var validAlertStatuses = []AlertStatus{
	AlertStatusPending,
	AlertStatusResolved,
}

// String implements fmt.Stringer.
func (s AlertStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known AlertStatus.
func (s AlertStatus) IsValid() bool {
	for _, candidate := range validAlertStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseAlertStatus normalizes raw input into an AlertStatus.
func ParseAlertStatus(value string) (AlertStatus, error) {
	trimmed := strings.TrimSpace(value)
	for _, candidate := range validAlertStatuses {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid alert status %q", value)
}
