package orchestrator

import (
	"context"
	"fmt"
	"time"

	"spcli/internal/device"
	"spcli/internal/formatting"
)

// Metadata describes the request that produced a Response.
type Metadata struct {
	StatusCode int
	Method     string
	URL        string
	Elapsed    time.Duration
}

// Response is the result of one read operation.
type Response struct {
	Payload  formatting.Payload
	Metadata Metadata
}

// AlarmView filters alarms by lifecycle state.
type AlarmView string

const (
	AlarmViewAll    AlarmView = "all"
	AlarmViewActive AlarmView = "active"
	AlarmViewClosed AlarmView = "closed"
)

// ParseAlarmView validates an alarm view name.
func ParseAlarmView(s string) (AlarmView, error) {
	switch AlarmView(s) {
	case AlarmViewAll, AlarmViewActive, AlarmViewClosed:
		return AlarmView(s), nil
	default:
		return "", fmt.Errorf("invalid alarm view %q: must be one of 'all', 'active' or 'closed'", s)
	}
}

// AlarmType selects the alarm source for summaries.
type AlarmType string

const (
	AlarmTypeGMS       AlarmType = "gms"
	AlarmTypeAppliance AlarmType = "appliance"
)

// ParseAlarmType validates an alarm type name.
func ParseAlarmType(s string) (AlarmType, error) {
	switch AlarmType(s) {
	case AlarmTypeGMS, AlarmTypeAppliance:
		return AlarmType(s), nil
	default:
		return "", fmt.Errorf("invalid alarm type %q: must be one of 'gms' or 'appliance'", s)
	}
}

// AlarmQuery holds the optional filters of GetAlarms.
type AlarmQuery struct {
	View AlarmView
	// Severity is forwarded as-is when not empty.
	Severity string
}

// Querier is the set of read operations available on one orchestrator.
type Querier interface {
	// GetAppliances lists all managed appliances.
	GetAppliances(ctx context.Context) (*Response, error)
	// GetAppliance returns one appliance by its nePk identifier.
	GetAppliance(ctx context.Context, neID string) (*Response, error)
	// GetReachApp returns reachability of an appliance as seen from the appliance.
	GetReachApp(ctx context.Context, neID string) (*Response, error)
	// GetReachGMS returns reachability of an appliance as seen from the orchestrator.
	GetReachGMS(ctx context.Context, neID string) (*Response, error)
	// GetGroups lists all groups.
	GetGroups(ctx context.Context) (*Response, error)
	// GetGroup returns one group.
	GetGroup(ctx context.Context, groupID string) (*Response, error)
	// GetGroupRoot returns the root group.
	GetGroupRoot(ctx context.Context) (*Response, error)
	// GetGRNodes lists the graphical nodes of the topology.
	GetGRNodes(ctx context.Context) (*Response, error)
	// GetDiscovered lists discovered, not yet approved appliances.
	GetDiscovered(ctx context.Context) (*Response, error)
	// GetApproved lists approved appliances.
	GetApproved(ctx context.Context) (*Response, error)
	// GetInterfaces returns the interface state of an appliance.
	GetInterfaces(ctx context.Context, neID string, cached bool) (*Response, error)
	// GetAlarms lists orchestrator alarms.
	GetAlarms(ctx context.Context, query AlarmQuery) (*Response, error)
	// GetAlarmSummary returns alarm counts.
	GetAlarmSummary(ctx context.Context) (*Response, error)
	// GetAlarmSummaryType returns alarm counts for one alarm source.
	GetAlarmSummaryType(ctx context.Context, alarmType AlarmType) (*Response, error)
}

// Factory creates a logged-in Querier for an endpoint.
type Factory func(ctx context.Context, endpoint device.Endpoint) (Querier, error)

// NewFactory returns a Factory creating a fresh Client per call and logging
// it in.
func NewFactory(opts Options) Factory {
	return func(ctx context.Context, endpoint device.Endpoint) (Querier, error) {
		client, err := NewClient(endpoint, opts)
		if err != nil {
			return nil, err
		}
		if err := client.Login(ctx); err != nil {
			return nil, err
		}
		return client, nil
	}
}
