package audit

import "github.com/sirupsen/logrus"

const (
	ActionBookingCreated  = "booking_created"
	ActionBookingConflict = "booking_conflict"
	ActionBookingDeleted  = "booking_deleted"
	ActionServiceCreated  = "service_created"
	ActionServiceDeleted  = "service_deleted"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logrus.WithError(err).Warn("audit write failed")
		}
	}
}

// Dispatch is nil-safe so callers without an audit trail wired can pass a
// nil dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// full queue never blocks a request; the event is dropped
		logrus.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}
