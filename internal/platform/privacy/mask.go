// Package privacy provides utilities for keeping personally identifiable
// information (PII) out of logs.
package privacy

import "strings"

// MaskMobile hides the subscriber digits of a normalized mobile number,
// keeping the "02" prefix and the last two digits
// (e.g., "0211234567" -> "02******67").
//
// Returns "unknown" for empty input and fully masks values too short to keep
// both ends.
func MaskMobile(digits string) string {
	if digits == "" {
		return "unknown"
	}
	if len(digits) <= 4 {
		return strings.Repeat("*", len(digits))
	}
	return digits[:2] + strings.Repeat("*", len(digits)-4) + digits[len(digits)-2:]
}
