package synth

import (
	"fmt"
	"time"

	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/models/domain"
)

// InvalidConfigurationError reports an unsupported provider/resource-type
// combination. Raised before any generation work begins.
type InvalidConfigurationError struct {
	Provider     domain.Provider
	ResourceType domain.ResourceType
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: provider %q has no template for resource type %q",
		e.Provider, e.ResourceType)
}

// InvalidRangeError reports an inverted date window or a non-positive
// sampling interval. Interval is zero when the window itself is at fault.
type InvalidRangeError struct {
	Start    time.Time
	End      time.Time
	Interval time.Duration
}

func (e *InvalidRangeError) Error() string {
	if e.End.Before(e.Start) {
		return fmt.Sprintf("invalid range: end date %s is before start date %s",
			e.End.Format(time.DateOnly), e.Start.Format(time.DateOnly))
	}
	return fmt.Sprintf("invalid range: interval %s is not positive", e.Interval)
}

// UnknownScenarioError reports an unrecognized scenario name.
type UnknownScenarioError struct {
	Name string
}

func (e *UnknownScenarioError) Error() string {
	return fmt.Sprintf("unknown scenario %q, supported scenarios: %v", e.Name, KnownScenarios())
}
