package audit

import "github.com/northlightstudio/studio-booking/pkg/logging"

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	sink   Sink
	queue  chan Event
	logger *logging.Logger
}

func NewDispatcher(sink Sink, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}

	d := &Dispatcher{
		sink:   sink,
		queue:  make(chan Event, 100),
		logger: logger,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.logger.Error("audit write failed", "action", ev.Action, "error", err)
		}
	}
}

// Dispatch enqueues an event without blocking; a full queue drops the
// event rather than stalling a request. A nil dispatcher discards events.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}
