package enums

import "fmt"

// AlertKind discriminates the alert variants: low stock, warehouse issue,
// or reported stock mismatch.
type AlertKind string

const (
	AlertKindStock     AlertKind = "stock"
	AlertKindWarehouse AlertKind = "warehouse"
	AlertKindMismatch  AlertKind = "mismatch"
)

var validAlertKinds = []AlertKind{
	AlertKindStock,
	AlertKindWarehouse,
	AlertKindMismatch,
}

// IsValid reports whether the value is a known AlertKind.
func (a AlertKind) IsValid() bool {
	for _, candidate := range validAlertKinds {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAlertKind converts raw input into an AlertKind.
func ParseAlertKind(value string) (AlertKind, error) {
	for _, candidate := range validAlertKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid alert kind %q", value)
}
