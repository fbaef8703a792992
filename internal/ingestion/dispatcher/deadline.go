package dispatcher

import (
	"fmt"
	"time"
)

// deadline tracks a job against the broker's ack-wait window. Overrunning
// it means the broker already considers the message failed, so finishing
// the work would race a redelivery.
type deadline struct {
	start   time.Time
	ackWait time.Duration
}

func newDeadline(ackWait time.Duration) *deadline {
	return &deadline{start: time.Now(), ackWait: ackWait}
}

func (d *deadline) elapsed() time.Duration {
	return time.Since(d.start)
}

func (d *deadline) check() error {
	if elapsed := d.elapsed(); elapsed >= d.ackWait {
		return fmt.Errorf("deadline exceeded: elapsed %s >= ack_wait %s", elapsed.Round(time.Second), d.ackWait)
	}
	return nil
}
