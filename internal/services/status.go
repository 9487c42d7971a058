package services

import "strings"

// validStatus accepts the two-valued status flag used across entities,
// case-insensitively: "S" (active) or "N" (inactive).
func validStatus(status string) bool {
	switch strings.ToLower(status) {
	case "s", "n":
		return true
	}
	return false
}
