package domain

import "time"

// Service identifiers of the built-in catalog
const (
	ServiceBridalMakeup = "bridal-makeup"
	ServiceLashLift     = "lash-lift"
	ServiceBrowLift     = "brow-lift"
	ServiceThreading    = "threading"
	ServiceMakeup       = "makeup"
	ServiceMehendi      = "mehendi"
)

// RuleKind selects how a service occupies the schedule
type RuleKind string

const (
	// RuleWholeDay blocks every operating hour of the day regardless of start time
	RuleWholeDay RuleKind = "whole_day"
	// RuleFixed blocks BlockHours consecutive hours from the start hour
	RuleFixed RuleKind = "fixed"
	// RuleVariable blocks the requested duration (at least one hour) from the start hour
	RuleVariable RuleKind = "variable"
)

// IsValid reports whether k is a known rule kind
func (k RuleKind) IsValid() bool {
	switch k {
	case RuleWholeDay, RuleFixed, RuleVariable:
		return true
	default:
		return false
	}
}

// ServiceRule describes how a single service identifier blocks hours
type ServiceRule struct {
	ServiceID  string
	Kind       RuleKind
	BlockHours int // Used by RuleFixed only

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultServiceRules returns the built-in blocking rules.
// A fresh slice is returned on every call so callers may modify it.
func DefaultServiceRules() []ServiceRule {
	return []ServiceRule{
		{ServiceID: ServiceBridalMakeup, Kind: RuleWholeDay},
		{ServiceID: ServiceLashLift, Kind: RuleFixed, BlockHours: 1},
		{ServiceID: ServiceBrowLift, Kind: RuleFixed, BlockHours: 1},
		{ServiceID: ServiceThreading, Kind: RuleFixed, BlockHours: 1},
		{ServiceID: ServiceMakeup, Kind: RuleFixed, BlockHours: 3},
		{ServiceID: ServiceMehendi, Kind: RuleVariable},
	}
}
