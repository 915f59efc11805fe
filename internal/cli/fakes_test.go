package cli

import (
	"context"
	"errors"
	"sync"
	"testing"

	"spcli/internal/device"
	"spcli/internal/formatting"
	"spcli/internal/orchestrator"

	"github.com/stretchr/testify/require"
)

// fakeQuerier answers every operation with the same payload or error and
// records which operations were called.
type fakeQuerier struct {
	endpoint device.Endpoint
	payload  formatting.Payload
	err      error
	closeErr error

	mu     sync.Mutex
	calls  []string
	closed bool
}

func (q *fakeQuerier) answer(op string) (*orchestrator.Response, error) {
	q.mu.Lock()
	q.calls = append(q.calls, op)
	q.mu.Unlock()
	if q.err != nil {
		return nil, q.err
	}
	return &orchestrator.Response{
		Payload:  q.payload,
		Metadata: orchestrator.Metadata{StatusCode: 200, Method: "GET", URL: q.endpoint.BaseURL()},
	}, nil
}

func (q *fakeQuerier) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	return q.closeErr
}

func (q *fakeQuerier) GetAppliances(ctx context.Context) (*orchestrator.Response, error) {
	return q.answer("GetAppliances")
}

func (q *fakeQuerier) GetAppliance(ctx context.Context, neID string) (*orchestrator.Response, error) {
	return q.answer("GetAppliance " + neID)
}

func (q *fakeQuerier) GetReachApp(ctx context.Context, neID string) (*orchestrator.Response, error) {
	return q.answer("GetReachApp " + neID)
}

func (q *fakeQuerier) GetReachGMS(ctx context.Context, neID string) (*orchestrator.Response, error) {
	return q.answer("GetReachGMS " + neID)
}

func (q *fakeQuerier) GetGroups(ctx context.Context) (*orchestrator.Response, error) {
	return q.answer("GetGroups")
}

func (q *fakeQuerier) GetGroup(ctx context.Context, groupID string) (*orchestrator.Response, error) {
	return q.answer("GetGroup " + groupID)
}

func (q *fakeQuerier) GetGroupRoot(ctx context.Context) (*orchestrator.Response, error) {
	return q.answer("GetGroupRoot")
}

func (q *fakeQuerier) GetGRNodes(ctx context.Context) (*orchestrator.Response, error) {
	return q.answer("GetGRNodes")
}

func (q *fakeQuerier) GetDiscovered(ctx context.Context) (*orchestrator.Response, error) {
	return q.answer("GetDiscovered")
}

func (q *fakeQuerier) GetApproved(ctx context.Context) (*orchestrator.Response, error) {
	return q.answer("GetApproved")
}

func (q *fakeQuerier) GetInterfaces(ctx context.Context, neID string, cached bool) (*orchestrator.Response, error) {
	return q.answer("GetInterfaces " + neID)
}

func (q *fakeQuerier) GetAlarms(ctx context.Context, query orchestrator.AlarmQuery) (*orchestrator.Response, error) {
	return q.answer("GetAlarms " + string(query.View))
}

func (q *fakeQuerier) GetAlarmSummary(ctx context.Context) (*orchestrator.Response, error) {
	return q.answer("GetAlarmSummary")
}

func (q *fakeQuerier) GetAlarmSummaryType(ctx context.Context, alarmType orchestrator.AlarmType) (*orchestrator.Response, error) {
	return q.answer("GetAlarmSummaryType " + string(alarmType))
}

// fakeFleet builds one fakeQuerier per endpoint address on demand.
type fakeFleet struct {
	t        *testing.T
	payloads map[string]string
	errs     map[string]error
	loginErr map[string]error

	requested []string
	queriers  map[string]*fakeQuerier
}

func newFakeFleet(t *testing.T) *fakeFleet {
	return &fakeFleet{
		t:        t,
		payloads: map[string]string{},
		errs:     map[string]error{},
		loginErr: map[string]error{},
		queriers: map[string]*fakeQuerier{},
	}
}

func (f *fakeFleet) factory(ctx context.Context, ep device.Endpoint) (orchestrator.Querier, error) {
	f.requested = append(f.requested, ep.Address)
	if err := f.loginErr[ep.Address]; err != nil {
		return nil, err
	}

	q := &fakeQuerier{endpoint: ep, err: f.errs[ep.Address]}
	if raw, ok := f.payloads[ep.Address]; ok {
		p, err := formatting.DecodePayload([]byte(raw))
		require.NoError(f.t, err)
		q.payload = p
	}
	f.queriers[ep.Address] = q
	return q, nil
}

var errBoom = errors.New("boom")
