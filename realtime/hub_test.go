package realtime

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fixify/models"

	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	mu     sync.Mutex
	frames []Event
	fail   bool
}

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("connection gone")
	}
	c.frames = append(c.frames, v.(Event))
	return nil
}

func (c *fakeConn) received() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.frames...)
}

func TestPublishReachesRoomMembersOnly(t *testing.T) {
	h := NewHub()
	a, b, outsider := &fakeConn{}, &fakeConn{}, &fakeConn{}

	h.Join("chat-1", a)
	h.Join("chat-1", b)
	h.Join("chat-2", outsider)

	h.Publish("chat-1", "newMessage", "hello")

	assert.Len(t, a.received(), 1)
	assert.Len(t, b.received(), 1)
	assert.Empty(t, outsider.received())
	assert.Equal(t, Event{Event: "newMessage", Data: "hello"}, a.received()[0])
}

func TestPublishEmptyRoomIsNoop(t *testing.T) {
	h := NewHub()
	h.Publish("nobody-here", "newMessage", "hello")
}

func TestLeave(t *testing.T) {
	h := NewHub()
	c := &fakeConn{}

	h.Join("chat-1", c)
	h.Leave("chat-1", c)
	h.Publish("chat-1", "newMessage", "hello")

	assert.Empty(t, c.received())
}

func TestLeaveAll(t *testing.T) {
	h := NewHub()
	c := &fakeConn{}

	h.Join(UserRoom("user-1"), c)
	h.Join("chat-1", c)
	h.Join("chat-2", c)
	h.LeaveAll(c)

	h.Publish(UserRoom("user-1"), "notificationReceived", nil)
	h.Publish("chat-1", "newMessage", nil)
	h.Publish("chat-2", "newMessage", nil)

	assert.Empty(t, c.received())
}

func TestPublishSurvivesFailedWrite(t *testing.T) {
	h := NewHub()
	broken := &fakeConn{fail: true}
	healthy := &fakeConn{}

	h.Join("chat-1", broken)
	h.Join("chat-1", healthy)

	h.Publish("chat-1", "newMessage", "still delivered")
	assert.Len(t, healthy.received(), 1)
}

func TestUserRoom(t *testing.T) {
	assert.Equal(t, "user_abc", UserRoom(models.UserID("abc")))
}

func TestConcurrentJoinPublish(t *testing.T) {
	h := NewHub()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c := &fakeConn{}
			h.Join("chat-1", c)
			h.Leave("chat-1", c)
		}()
		go func() {
			defer wg.Done()
			h.Publish("chat-1", "newMessage", "x")
		}()
	}
	wg.Wait()
}

// rawConn mimics a gorilla connection, which tolerates no concurrent writers.
type rawConn struct {
	writers int32
	overlap int32
}

func (c *rawConn) WriteJSON(v any) error {
	if atomic.AddInt32(&c.writers, 1) > 1 {
		atomic.StoreInt32(&c.overlap, 1)
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&c.writers, -1)
	return nil
}

func TestLockedConnSerializesWrites(t *testing.T) {
	h := NewHub()
	raw := &rawConn{}
	sub := &lockedConn{c: raw}

	// One session subscribed to its user room and a chat room, the way a
	// websocket session is registered.
	h.Join(UserRoom("user-1"), sub)
	h.Join("chat-1", sub)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h.Publish(UserRoom("user-1"), "notificationReceived", nil)
		}()
		go func() {
			defer wg.Done()
			h.Publish("chat-1", "newMessage", nil)
		}()
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&raw.overlap), "publishes to rooms sharing a connection must not write concurrently")
}
