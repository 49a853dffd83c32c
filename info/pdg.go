package info

import "github.com/sidefxlabs/hapi-go/internal/ffi"

// PDGEvent is one entry of a TOP graph context's event queue, polled by
// the pdg package's event loop (§5 supplemented: PDG task-graph cooking).
type PDGEvent struct {
	raw ffi.PDGEventInfo
}

func NewPDGEvent(raw ffi.PDGEventInfo) PDGEvent { return PDGEvent{raw: raw} }

func (e PDGEvent) NodeID() ffi.NodeHandle         { return e.raw.NodeID }
func (e PDGEvent) WorkItemID() ffi.PDGWorkItemID  { return e.raw.WorkItemID }
func (e PDGEvent) DependencyID() int32            { return e.raw.DependencyID }
func (e PDGEvent) CurrentState() int32            { return e.raw.CurrentState }
func (e PDGEvent) LastState() int32               { return e.raw.LastState }
func (e PDGEvent) EventType() int32               { return e.raw.EventType }

// PDGEventCookComplete is HAPI_PDG_EVENT_COOK_COMPLETE — the engine emits
// this once a TOP network's cook has fully drained, with no further
// per-work-item events to follow. A poll loop uses it as the definitive
// end-of-cook signal rather than inferring completion from State().
const PDGEventCookComplete int32 = 6

// IsCookComplete reports whether this event is the terminal
// end-of-cook marker for its graph context.
func (e PDGEvent) IsCookComplete() bool { return e.raw.EventType == PDGEventCookComplete }

// PDGWorkItem describes one scheduled unit of work within a TOP node's
// partition, plus however many result files it has produced so far.
type PDGWorkItem struct {
	raw ffi.PDGWorkItemInfo
}

func NewPDGWorkItem(raw ffi.PDGWorkItemInfo) PDGWorkItem { return PDGWorkItem{raw: raw} }

func (w PDGWorkItem) Index() int32      { return w.raw.Index }
func (w PDGWorkItem) NumResults() int32 { return w.raw.NumResults }

// PDGWorkItemOutputFile is one output produced by a completed work item —
// a path/tag pair plus whether the engine considers it a temp file safe
// to discard once consumed.
type PDGWorkItemOutputFile struct {
	raw ffi.PDGWorkItemResultInfo
}

func NewPDGWorkItemOutputFile(raw ffi.PDGWorkItemResultInfo) PDGWorkItemOutputFile {
	return PDGWorkItemOutputFile{raw: raw}
}

func (f PDGWorkItemOutputFile) IsTempFile() bool { return f.raw.TempFile }
func (f PDGWorkItemOutputFile) Hash() int64      { return f.raw.Hash }
func (f PDGWorkItemOutputFile) Raw() ffi.PDGWorkItemResultInfo { return f.raw }
