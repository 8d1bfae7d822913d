package service

import (
	"sync"

	"github.com/segmentio/kafka-go"
)

type partKey struct {
	topic     string
	partition int
}

// partOffsets holds one partition's fetched offsets in fetch order and the finished ones
type partOffsets struct {
	queue []int64
	done  map[int64]kafka.Message
}

// offsets lets messages finish in any order but only releases the contiguous finished
// prefix of each partition for commit. A message that never finishes holds back every
// later offset of its partition
type offsets struct {
	mu    sync.Mutex
	parts map[partKey]*partOffsets
}

func newOffsets() *offsets {
	return &offsets{parts: make(map[partKey]*partOffsets)}
}

// track registers a fetched message. Call it in fetch order
func (o *offsets) track(msg kafka.Message) {
	o.mu.Lock()
	defer o.mu.Unlock()
	k := partKey{topic: msg.Topic, partition: msg.Partition}
	p := o.parts[k]
	if p == nil {
		p = &partOffsets{done: make(map[int64]kafka.Message)}
		o.parts[k] = p
	}
	p.queue = append(p.queue, msg.Offset)
}

// finish marks msg handled and returns the highest message now safe to commit, if any
func (o *offsets) finish(msg kafka.Message) (kafka.Message, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	p := o.parts[partKey{topic: msg.Topic, partition: msg.Partition}]
	if p == nil {
		return kafka.Message{}, false
	}
	p.done[msg.Offset] = msg

	var (
		last kafka.Message
		ok   bool
	)
	for len(p.queue) > 0 {
		m, fin := p.done[p.queue[0]]
		if !fin {
			break
		}
		delete(p.done, p.queue[0])
		p.queue = p.queue[1:]
		last, ok = m, true
	}
	return last, ok
}

// pending is the number of tracked messages not yet released
func (o *offsets) pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, p := range o.parts {
		n += len(p.queue)
	}
	return n
}
