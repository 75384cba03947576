// Package policy evaluates whitelist/blacklist profile-attribute rules.
// Pure functions, no storage.
package policy

import "strings"

type Type string

const (
	TypeWhitelist Type = "WHITELIST"
	TypeBlacklist Type = "BLACKLIST"
)

// Restriction is one required (whitelist) or excluded (blacklist)
// profile pair.
type Restriction struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Matches reports whether every restriction pair is present in the
// profile with an equal value. Keys and values compare
// case-insensitively on both sides.
func Matches(profile map[string]string, restrictions []Restriction) bool {
	if len(restrictions) == 0 {
		return true
	}

	normalized := make(map[string]string, len(profile))
	for k, v := range profile {
		normalized[strings.ToLower(k)] = strings.ToLower(v)
	}

	for _, r := range restrictions {
		v, ok := normalized[strings.ToLower(r.Key)]
		if !ok || v != strings.ToLower(r.Value) {
			return false
		}
	}
	return true
}

// Evaluate decides visibility for one profile against one policy.
//
// An empty restriction list allows everyone under both policy types.
// For WHITELIST this is a deliberate product decision, encoded here
// rather than inherited from the vacuous truth of Matches: the shipped
// data layer always treated "no restrictions" as "no gate".
func Evaluate(policyType Type, profile map[string]string, restrictions []Restriction) bool {
	if len(restrictions) == 0 {
		return true
	}

	matched := Matches(profile, restrictions)
	switch policyType {
	case TypeBlacklist:
		return !matched
	default:
		// WHITELIST, and the safe reading of anything unrecognised.
		return matched
	}
}

// ValidateRestrictions rejects malformed pairs at the boundary so the
// engine never stores or evaluates them.
func ValidateRestrictions(restrictions []Restriction) bool {
	for _, r := range restrictions {
		if strings.TrimSpace(r.Key) == "" {
			return false
		}
	}
	return true
}
