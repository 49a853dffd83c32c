// Package pdg implements PDG task-graph cooking (spec.md §4.6): TOP
// network/graph-context discovery, cook/pause/cancel, the event-poll
// loop, work-item inspection, and the custom-scheduler work-item calls.
package pdg

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sidefxlabs/hapi-go/info"
	"github.com/sidefxlabs/hapi-go/internal/ffi"
	"github.com/sidefxlabs/hapi-go/node"
	"github.com/sidefxlabs/hapi-go/session"
)

//msgp:tag json
//go:generate msgp -d clearomitted -d "timezone utc" $GOFILE

// Event is the wire/log shape of one PDG event, msgp-tagged the same way
// internal/elog.Event is so a host can ship PDG cook telemetry through
// the same binary event pipe it uses for other structured logs.
type Event struct {
	GraphContext int32     `json:"graphContext" msg:"graphContext"`
	NodeID       int32     `json:"nodeId" msg:"nodeId"`
	WorkItemID   int32     `json:"workItemId" msg:"workItemId"`
	DependencyID int32     `json:"dependencyId" msg:"dependencyId"`
	CurrentState int32     `json:"currentState" msg:"currentState"`
	LastState    int32     `json:"lastState" msg:"lastState"`
	EventType    int32     `json:"eventType" msg:"eventType"`
	Time         time.Time `json:"time" msg:"time"`
}

// GraphContext identifies one TOP network's cook context.
type GraphContext struct {
	ID   ffi.PDGGraphContextID
	Name string
}

// GraphContexts enumerates every TOP network currently registered with
// the session (§4.6).
func GraphContexts(sess *session.Session) ([]GraphContext, error) {
	names, ids, err := ffi.GetPDGGraphContexts(sess.Handle())
	if err != nil {
		return nil, err
	}
	out := make([]GraphContext, len(ids))
	for i := range ids {
		out[i] = GraphContext{ID: ids[i], Name: names[i]}
	}
	return out, nil
}

// Metrics holds the prometheus collectors for a PDG cook — a host scrapes
// these to watch a cook's progress without polling the engine itself.
// Events increments EventsProcessed as it drains PDG events; it does not
// set WorkItemsByState, which stays empty unless the host fills it.
type Metrics struct {
	WorkItemsByState *prometheus.GaugeVec
	EventsProcessed   prometheus.Counter
}

// NewMetrics registers a Metrics set against reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		WorkItemsByState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "hapi",
			Subsystem: "pdg",
			Name:      "workitems_by_state",
			Help:      "Current PDG work items grouped by their last-reported state.",
		}, []string{"node", "state"}),
		EventsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hapi",
			Subsystem: "pdg",
			Name:      "events_processed_total",
			Help:      "Total PDG events drained from the engine's event queue.",
		}),
	}
	if err := reg.Register(m.WorkItemsByState); err != nil {
		return nil, err
	}
	if err := reg.Register(m.EventsProcessed); err != nil {
		return nil, err
	}
	return m, nil
}

// TopNode is a TOP network's graph context plus the node driving it,
// bundled for the common cook/pause/cancel/poll operations.
type TopNode struct {
	sess    *session.Session
	node    node.Node
	context ffi.PDGGraphContextID
	metrics *Metrics
}

// NewTopNode binds n (a TOP network node) to its graph context.
func NewTopNode(sess *session.Session, n node.Node, context ffi.PDGGraphContextID, metrics *Metrics) TopNode {
	return TopNode{sess: sess, node: n, context: context, metrics: metrics}
}

// Cook starts a PDG cook (§4.6). With blocking false it returns at once
// and progress is observed via Events; with blocking true it returns once
// the cook is done. generateOnly stages work items without executing
// them — used to preview a graph's shape.
func (t TopNode) Cook(generateOnly, blocking bool) error {
	return ffi.CookPDG(t.sess.Handle(), t.node.ID(), generateOnly, blocking)
}

// CookAllOutputs cooks every terminal TOP node feeding into t.
func (t TopNode) CookAllOutputs(generateOnly, blocking bool) error {
	return ffi.CookPDGAllOutputs(t.sess.Handle(), t.node.ID(), generateOnly, blocking)
}

func (t TopNode) Pause() error  { return ffi.PauseCookPDG(t.sess.Handle(), t.context) }
func (t TopNode) Cancel() error { return ffi.CancelCookPDG(t.sess.Handle(), t.context) }

// State returns the TOP network's coarse cook state.
func (t TopNode) State() (int32, error) {
	return ffi.GetPDGState(t.sess.Handle(), t.context)
}

// ControlFlow is a poll-loop callback's verdict for one event, mirroring
// Rust's std::ops::ControlFlow as used by the cook loop this package is
// grounded on: keep draining, or stop — optionally cancelling the cook
// that's still in flight rather than just walking away from it.
type ControlFlow int

const (
	// Continue keeps the event loop running.
	Continue ControlFlow = iota
	// BreakCancel stops the loop and cancels the graph context's cook
	// before returning, so the engine doesn't keep cooking work the
	// caller has already stopped listening to.
	BreakCancel
	// BreakNoCancel stops the loop and leaves the cook running.
	BreakNoCancel
)

// Events drains and yields every available PDG event for as long as ctx
// is alive, sleeping pollInterval between empty polls. It increments
// t.metrics.EventsProcessed (if t.metrics is non-nil) for each drained
// event. The loop always
// terminates on an EventCookComplete event, independent of what yield
// returns, since no further work-item events follow it.
func (t TopNode) Events(ctx context.Context, pollInterval time.Duration, yield func(info.PDGEvent) ControlFlow) error {
	if pollInterval <= 0 {
		pollInterval = 20 * time.Millisecond
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		raw, hasMore, err := ffi.GetPDGEvents(t.sess.Handle(), t.context, 64)
		if err != nil {
			return err
		}
		for _, e := range raw {
			if t.metrics != nil {
				t.metrics.EventsProcessed.Inc()
			}
			event := info.NewPDGEvent(e)
			if event.IsCookComplete() {
				return nil
			}
			switch yield(event) {
			case Continue:
			case BreakCancel:
				return t.Cancel()
			case BreakNoCancel:
				return nil
			}
		}
		if !hasMore && len(raw) == 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(pollInterval):
			}
		}
	}
}

// WorkItem fetches a single work item's static info.
func (t TopNode) WorkItem(id ffi.PDGWorkItemID) (info.PDGWorkItem, error) {
	raw, err := ffi.GetWorkItemInfo(t.sess.Handle(), t.context, id)
	if err != nil {
		return info.PDGWorkItem{}, err
	}
	return info.NewPDGWorkItem(raw), nil
}

// WorkItemOutputFiles fetches a work item's result files.
func (t TopNode) WorkItemOutputFiles(id ffi.PDGWorkItemID, resultCount int32) ([]info.PDGWorkItemOutputFile, error) {
	raw, err := ffi.GetWorkItemResultInfo(t.sess.Handle(), t.context, id, resultCount)
	if err != nil {
		return nil, err
	}
	out := make([]info.PDGWorkItemOutputFile, len(raw))
	for i, r := range raw {
		out[i] = info.NewPDGWorkItemOutputFile(r)
	}
	return out, nil
}

// CreateWorkItem / CommitWorkItems / SetIntAttribute support a custom
// scheduler or generator: Go code injects work items directly instead of
// letting a generator TOP node produce them (§4.6 supplemented).
func (t TopNode) CreateWorkItem(name string, index int32) (ffi.PDGWorkItemID, error) {
	return ffi.CreateWorkItem(t.sess.Handle(), t.node.ID(), name, index)
}

func (t TopNode) CommitWorkItems() error {
	return ffi.CommitWorkItems(t.sess.Handle(), t.node.ID())
}

func (t TopNode) SetIntAttribute(id ffi.PDGWorkItemID, name string, values []int32) error {
	return ffi.SetWorkItemIntAttribute(t.sess.Handle(), t.node.ID(), id, name, values)
}

// Dirty invalidates every cooked work item on this TOP node, forcing
// regeneration on the next cook. cleanResults additionally deletes their
// output files.
func (t TopNode) Dirty(cleanResults bool) error {
	return ffi.DirtyPDGNode(t.sess.Handle(), t.node.ID(), cleanResults)
}
