// Package bus is a small in-process pubsub used to decouple the power
// services. Topics are plain string paths; messages published as retained
// are replayed to late subscribers (device config, last wakeup status).
package bus

import (
	"sync"
)

// Topic is a sequence of path segments, e.g. T("power", "wakeup").
type Topic []string

// T builds a topic from its segments.
func T(segs ...string) Topic { return Topic(segs) }

type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

type node struct {
	children map[string]*node
	subs     []*Subscription
	retained *Message
}

type Bus struct {
	mu   sync.RWMutex
	root *node
	qLen int
}

// NewBus creates a bus whose subscriptions buffer queueLen messages.
func NewBus(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8
	}
	return &Bus{root: &node{}, qLen: queueLen}
}

// walk descends to the node for topic, creating intermediate nodes when
// create is set. Caller holds b.mu.
func (b *Bus) walk(topic Topic, create bool) *node {
	n := b.root
	for _, seg := range topic {
		if n.children == nil {
			if !create {
				return nil
			}
			n.children = make(map[string]*node)
		}
		child, ok := n.children[seg]
		if !ok {
			if !create {
				return nil
			}
			child = &node{}
			n.children[seg] = child
		}
		n = child
	}
	return n
}

// Publish delivers msg to every subscriber of its exact topic. A full
// subscriber queue drops the oldest entry rather than blocking the
// publisher; foreground paths must never stall behind a slow consumer.
func (b *Bus) Publish(msg *Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.walk(msg.Topic, msg.Retained)
	if n == nil {
		return
	}
	for _, sub := range n.subs {
		select {
		case sub.ch <- msg:
		default:
			<-sub.ch
			sub.ch <- msg
		}
	}
	if msg.Retained {
		if msg.Payload == nil {
			n.retained = nil
		} else {
			n.retained = msg
		}
	}
}

func (b *Bus) addSubscription(topic Topic, sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.walk(topic, true)
	n.subs = append(n.subs, sub)
	if n.retained != nil {
		select {
		case sub.ch <- n.retained:
		default:
		}
	}
}

func (b *Bus) unsubscribe(topic Topic, sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.root
	var path []*node
	for _, seg := range topic {
		if n.children == nil {
			return
		}
		child, ok := n.children[seg]
		if !ok {
			return
		}
		path = append(path, n)
		n = child
	}
	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}
	// Prune now-empty branches so retained-only nodes stay findable.
	for i := len(topic) - 1; i >= 0; i-- {
		parent, seg := path[i], topic[i]
		child := parent.children[seg]
		if len(child.subs) == 0 && len(child.children) == 0 && child.retained == nil {
			delete(parent.children, seg)
		} else {
			break
		}
	}
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

// Connection groups subscriptions belonging to one service so they can be
// torn down together.
type Connection struct {
	bus  *Bus
	mu   sync.Mutex
	subs []*Subscription
	name string
}

func (b *Bus) NewConnection(name string) *Connection {
	return &Connection{bus: b, name: name}
}

func (c *Connection) Publish(msg *Message) { c.bus.Publish(msg) }

func (c *Connection) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, c.bus.qLen),
		conn:  c,
	}
	c.bus.addSubscription(topic, sub)
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return sub
}

func (c *Connection) Unsubscribe(sub *Subscription) {
	c.bus.unsubscribe(sub.topic, sub)
	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	close(sub.ch)
}

// Disconnect closes every subscription owned by this connection.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()
	for _, sub := range subs {
		c.bus.unsubscribe(sub.topic, sub)
		close(sub.ch)
	}
}
