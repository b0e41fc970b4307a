// Package matching partitions candidate profiles by target location.
package matching

import (
	"strings"

	"github.com/jonathan/recruiter-agent/internal/types"
)

// defaultCountry is the sole supported country: with no explicit targets,
// candidates anywhere in India are accepted.
const defaultCountry = "india"

// Partition splits profiles into matched and unmatched against the target
// locations. Order is preserved and every profile lands in exactly one list.
//
// A profile with no address is unmatched: location cannot be verified, so
// matching fails closed. Otherwise the address is split on commas and a
// profile is eligible only if some part contains "india" (the country gate).
// Past the gate, matching requires exact equality between a normalized
// address part and a target - substring overlap is not enough.
func Partition(targets []string, profiles []types.ProfileRecord) (matched, unmatched []types.ProfileRecord) {
	normalized := normalizeTargets(targets)

	for _, profile := range profiles {
		address := strings.TrimSpace(profile.AddressWithCountry)
		if address == "" {
			unmatched = append(unmatched, profile)
			continue
		}

		parts := splitAddress(address)
		if !passesCountryGate(parts) {
			unmatched = append(unmatched, profile)
			continue
		}

		if matchesTarget(parts, normalized) {
			matched = append(matched, profile)
		} else {
			unmatched = append(unmatched, profile)
		}
	}

	return matched, unmatched
}

// normalizeTargets lowercases and trims targets, defaulting to the supported
// country when none are given.
func normalizeTargets(targets []string) map[string]bool {
	set := make(map[string]bool)
	for _, target := range targets {
		target = strings.ToLower(strings.TrimSpace(target))
		if target != "" {
			set[target] = true
		}
	}
	if len(set) == 0 {
		set[defaultCountry] = true
	}
	return set
}

// splitAddress breaks a free-text "City, State, Country" address into
// lowercase trimmed parts.
func splitAddress(address string) []string {
	raw := strings.Split(address, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		parts = append(parts, strings.ToLower(strings.TrimSpace(part)))
	}
	return parts
}

// passesCountryGate reports whether some address part mentions the supported
// country.
func passesCountryGate(parts []string) bool {
	for _, part := range parts {
		if strings.Contains(part, defaultCountry) {
			return true
		}
	}
	return false
}

// matchesTarget reports whether some address part exactly equals a target.
func matchesTarget(parts []string, targets map[string]bool) bool {
	for _, part := range parts {
		if targets[part] {
			return true
		}
	}
	return false
}
