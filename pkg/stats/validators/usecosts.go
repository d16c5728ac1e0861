package validators

import (
	"fmt"
	"strconv"
	"strings"
)

// validateUseCosts checks a use-cost list: `Res:Amount[*Mult][:Level[:Level2]]`
// items joined by `;`. Success is reported only after every item passes.
//
// Empty input returns early without marking the result successful. This is
// deliberately different from the scalar validators (which treat empty as a
// successful default): downstream tooling distinguishes empty use-cost
// fields as unvalidated.
func (v *Validator) validateUseCosts(value string) Result {
	if value == "" {
		return Result{}
	}

	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if result := v.validateUseCost(item); !result.OK {
			return result
		}
	}
	return success(value)
}

// validateUseCost checks a single cost item.
func (v *Validator) validateUseCost(item string) Result {
	parts := strings.Split(item, ":")
	if len(parts) < 2 || len(parts) > 4 {
		return failure("Malformed use costs")
	}

	resource := parts[0]
	if !v.refs.IsValidGuidResource(resource, "ActionResource") &&
		!v.refs.IsValidGuidResource(resource, "ActionResourceGroup") {
		return failure(fmt.Sprintf("Nonexistent action resource or action resource group: %s", resource))
	}

	amount := parts[1]
	if distance, isDistance := strings.CutPrefix(amount, "Distance"); isDistance {
		if multiplier, hasMultiplier := strings.CutPrefix(distance, "*"); hasMultiplier {
			if _, err := strconv.ParseFloat(multiplier, 32); err != nil {
				return failure(fmt.Sprintf("Malformed distance multiplier: %s", multiplier))
			}
		} else if distance != "" {
			return failure(fmt.Sprintf("Malformed resource amount: %s", amount))
		}
	} else if _, err := strconv.ParseFloat(amount, 32); err != nil {
		return failure(fmt.Sprintf("Malformed resource amount: %s", amount))
	}

	for _, level := range parts[2:] {
		if _, err := strconv.ParseInt(level, 10, 32); err != nil {
			return failure(fmt.Sprintf("Malformed level: %s", level))
		}
	}

	return success(item)
}
