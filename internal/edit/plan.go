package edit

import (
	"time"

	"voxedit.dev/internal/block"
)

// Plan is a validated, fully snapshotted write batch. Planning reads
// through a Reader on any goroutine; Apply performs the writes and must
// run on the host's designated writer (see Dispatcher). A plan is
// single-use and owned by the session that produced it.
type Plan struct {
	op      string
	writes  []Write
	prior   *block.Volume // nil when the op consumed the undo slot
	origin  block.Pos
	dims    block.Pos
	session *Session
}

// Op names the operation that produced the plan ("fill", "paste", ...).
func (p *Plan) Op() string { return p.op }

// Count is the number of cells the plan will change.
func (p *Plan) Count() int { return len(p.writes) }

// Apply performs the batch through w, installs the undo snapshot (or
// clears it, for an undo plan), and reports the changed-cell count.
func (p *Plan) Apply(w Writer) int {
	for _, wr := range p.writes {
		w.WriteBlock(wr.Pos, wr.State)
	}
	p.session.finishApply(p)
	return len(p.writes)
}

// Applier runs plans on the host's designated write context.
type Applier interface {
	ApplyBatch(p *Plan) int
}

// Direct applies plans inline, for hosts that already invoke commands
// on the writer goroutine.
type Direct struct {
	W Writer
}

func (d Direct) ApplyBatch(p *Plan) int { return p.Apply(d.W) }

type applyReq struct {
	plan *Plan
	done chan int
}

// Dispatcher funnels plans from many sessions onto one goroutine, so
// world writes land as a single serialized handoff per batch.
type Dispatcher struct {
	ch   chan applyReq
	stop chan struct{}
}

func NewDispatcher(w Writer) *Dispatcher {
	d := &Dispatcher{
		ch:   make(chan applyReq),
		stop: make(chan struct{}),
	}
	go d.run(w)
	return d
}

func (d *Dispatcher) run(w Writer) {
	for {
		select {
		case req := <-d.ch:
			req.done <- req.plan.Apply(w)
		case <-d.stop:
			return
		}
	}
}

// ApplyBatch hands the plan to the writer goroutine and waits for the
// changed-cell count. Blocks for the duration of the batch; callers
// needing admission control layer it above this. After Close the plan
// is discarded and ApplyBatch returns 0.
func (d *Dispatcher) ApplyBatch(p *Plan) int {
	req := applyReq{plan: p, done: make(chan int, 1)}
	select {
	case d.ch <- req:
		return <-req.done
	case <-d.stop:
		return 0
	}
}

func (d *Dispatcher) Close() {
	close(d.stop)
}

func (s *Session) newPlan(op string, writes []Write, prior *block.Volume) *Plan {
	p := &Plan{op: op, writes: writes, prior: prior, session: s}
	if prior != nil {
		w, h, l := prior.Dims()
		p.origin, p.dims = prior.Origin(), block.Pos{X: w, Y: h, Z: l}
	}
	return p
}

// finishApply runs on the apply goroutine after the batch lands.
func (s *Session) finishApply(p *Plan) {
	s.mu.Lock()
	s.undo = p.prior
	audit := s.audit
	s.mu.Unlock()
	if audit != nil {
		audit.Record(AuditEntry{
			Time:   time.Now().UTC(),
			Player: s.id.String(),
			Op:     p.op,
			Cells:  len(p.writes),
			Origin: [3]int{p.origin.X, p.origin.Y, p.origin.Z},
			Dims:   [3]int{p.dims.X, p.dims.Y, p.dims.Z},
		})
	}
}
