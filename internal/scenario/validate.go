package scenario

import "fmt"

// ValidationResult contains the result of scenario validation.
type ValidationResult struct {
	Valid  bool
	Issues []string
}

// Validate checks the cross-record invariants of a scenario: agreeing
// object counts between trajectory and metadata, agreeing time windows
// between trajectory and traffic lights, a non-negative remaining-
// timestep counter, and exactly one self-driven object. Sentinel checks
// on invalid entries are advisory only; Valid masks stay authoritative.
func Validate(s *Scenario) ValidationResult {
	result := ValidationResult{Issues: make([]string, 0)}

	if s.LogTrajectory == nil || s.RoadgraphPoints == nil || s.LogTrafficLight == nil || s.ObjectMetadata == nil {
		result.Issues = append(result.Issues, "scenario has nil sub-records")
		return result
	}

	if got, want := s.ObjectMetadata.NumObjects(), s.LogTrajectory.NumObjects(); got != want {
		result.Issues = append(result.Issues,
			fmt.Sprintf("object_metadata has %d objects, log_trajectory has %d", got, want))
	}
	if got, want := s.LogTrafficLight.NumTimesteps(), s.LogTrajectory.NumTimesteps(); got != want {
		result.Issues = append(result.Issues,
			fmt.Sprintf("log_traffic_light has %d timesteps, log_trajectory has %d", got, want))
	}
	if s.RemainingTimesteps < 0 {
		result.Issues = append(result.Issues,
			fmt.Sprintf("remaining_timesteps is negative (%d)", s.RemainingTimesteps))
	}

	switch n := s.ObjectMetadata.IsSDC.CountTrue(); n {
	case 1:
		// exactly one ego object, as expected
	case 0:
		result.Issues = append(result.Issues, "no object flagged is_sdc")
	default:
		result.Issues = append(result.Issues, fmt.Sprintf("%d objects flagged is_sdc, want 1", n))
	}

	result.Valid = len(result.Issues) == 0
	return result
}
