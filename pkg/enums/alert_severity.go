package enums

import "fmt"

// AlertSeverity grades how urgent an alert is.
type AlertSeverity string

const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityLow      AlertSeverity = "low"
	AlertSeverityWarning  AlertSeverity = "warning"
)

var validAlertSeverities = []AlertSeverity{
	AlertSeverityCritical,
	AlertSeverityLow,
	AlertSeverityWarning,
}

// IsValid reports whether the value is a known AlertSeverity.
func (a AlertSeverity) IsValid() bool {
	for _, candidate := range validAlertSeverities {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAlertSeverity converts raw input into an AlertSeverity.
func ParseAlertSeverity(value string) (AlertSeverity, error) {
	for _, candidate := range validAlertSeverities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid alert severity %q", value)
}
