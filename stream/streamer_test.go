package stream

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"strings"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/sprite"
)

type fakeToken struct {
	mqtt.Token
	err error
}

func (t *fakeToken) Wait() bool   { return true }
func (t *fakeToken) Error() error { return t.err }

type fakeMessage struct {
	mqtt.Message
	topic   string
	payload []byte
}

func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }

type fakeClient struct {
	mu        sync.Mutex
	published map[string][][]byte
	handlers  map[string]mqtt.MessageHandler
	subErr    error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		published: make(map[string][][]byte),
		handlers:  make(map[string]mqtt.MessageHandler),
	}
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published[topic] = append(c.published[topic], payload.([]byte))
	return &fakeToken{}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[topic] = callback
	return &fakeToken{err: c.subErr}
}

func (c *fakeClient) frames(topic string) [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]byte(nil), c.published[topic]...)
}

func (c *fakeClient) send(topic, payload string) {
	c.mu.Lock()
	h := c.handlers[topic]
	c.mu.Unlock()
	h(nil, &fakeMessage{topic: topic, payload: []byte(payload)})
}

func testConfig() Config {
	c := DefaultConfig()
	c.Frame.Width = 4
	c.Frame.Height = 1
	c.Frame.Background = "#000010"
	return c
}

func newManualAnimation() (*anim.Animation, *anim.ManualClock) {
	clock := anim.NewManualClock(time.Unix(0, 0))
	a := anim.NewAnimation(0)
	a.SetClock(clock)
	return a, clock
}

// TestSendFrameOnRedraw verifies a tick leads to one published frame
func TestSendFrameOnRedraw(t *testing.T) {
	a, _ := newManualAnimation()
	client := newFakeClient()
	s, err := NewStreamer(testConfig(), client, a)
	if err != nil {
		t.Fatalf("NewStreamer failed: %v", err)
	}
	if got := a.Bounds(); got != image.Rect(0, 0, 4, 1) {
		t.Errorf("Expected animation sized to the frame, got %v", got)
	}

	red := sprite.NewShape(image.Rect(0, 0, 2, 1), color.NRGBA{R: 0xff, A: 0xff})
	if err := a.Add(0, red); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	go s.Run()
	defer s.Close()

	a.Start()
	a.Tick()

	topic := testConfig().Mqtt.Topics.Stream
	deadline := time.Now().Add(2 * time.Second)
	for len(client.frames(topic)) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for a frame")
		}
		time.Sleep(time.Millisecond)
	}

	data := client.frames(topic)[0]
	if n := binary.LittleEndian.Uint16(data); n != 4 {
		t.Fatalf("Expected 4 pixels, got %d", n)
	}
	pixels := data[2:]
	if pixels[0] != 0xff || pixels[1] != 0 || pixels[2] != 0 {
		t.Errorf("Expected red first pixel, got %v", pixels[0:3])
	}
	if pixels[9] != 0 || pixels[10] != 0 || pixels[11] != 0x10 {
		t.Errorf("Expected background last pixel, got %v", pixels[9:12])
	}
}

func TestControlMessages(t *testing.T) {
	a, _ := newManualAnimation()
	a.Add(0, sprite.NewShape(image.Rect(0, 0, 1, 1), color.White))
	client := newFakeClient()
	s, err := NewStreamer(testConfig(), client, a)
	if err != nil {
		t.Fatalf("NewStreamer failed: %v", err)
	}
	if err := s.Subscribe(); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	control := testConfig().Mqtt.Topics.Control
	client.send(control, `{"type":"start"}`)
	if !a.Running() {
		t.Fatal("Expected start command to start the animation")
	}
	client.send(control, `{"type":"pause"}`)
	if !a.Paused() {
		t.Error("Expected pause command to pause")
	}
	client.send(control, `not json`)
	client.send(control, `{"type":"explode"}`)
	if !a.Running() || !a.Paused() {
		t.Error("Expected bad commands to change nothing")
	}
	client.send(control, `{"type":"unpause"}`)
	if a.Paused() {
		t.Error("Expected unpause command to resume")
	}
	client.send(control, `{"type":"stop"}`)
	if a.Running() {
		t.Error("Expected stop command to stop")
	}
}

func TestSubscribeError(t *testing.T) {
	a, _ := newManualAnimation()
	client := newFakeClient()
	client.subErr = errors.New("not authorised")
	s, _ := NewStreamer(testConfig(), client, a)
	if err := s.Subscribe(); err == nil || !strings.Contains(err.Error(), "not authorised") {
		t.Errorf("Expected wrapped subscribe error, got %v", err)
	}
}

func TestCloseStopsAnimation(t *testing.T) {
	a, _ := newManualAnimation()
	a.Add(0, sprite.NewShape(image.Rect(0, 0, 1, 1), color.White))
	s, _ := NewStreamer(testConfig(), newFakeClient(), a)

	done := make(chan struct{})
	go func() {
		s.Run()
		close(done)
	}()

	a.Start()
	s.Close()
	s.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to return after Close")
	}
	if a.Running() {
		t.Error("Expected Close to stop the animation")
	}
}

func TestBadBackground(t *testing.T) {
	c := testConfig()
	c.Frame.Background = "purple"
	if _, err := NewStreamer(c, newFakeClient(), anim.NewAnimation(0)); err == nil {
		t.Error("Expected error for a bad background colour")
	}
}

func TestSmoothing(t *testing.T) {
	a, _ := newManualAnimation()
	c := testConfig()
	c.Frame.Background = "#000000"
	c.Frame.Smoothing = 0.5
	client := newFakeClient()
	s, _ := NewStreamer(c, client, a)

	shape := sprite.NewShape(image.Rect(0, 0, 4, 1), color.White)
	a.Add(0, shape)
	a.Start()
	a.Tick()

	if err := s.SendFrame(); err != nil {
		t.Fatalf("SendFrame failed: %v", err)
	}
	shape.SetOpacity(0)
	if err := s.SendFrame(); err != nil {
		t.Fatalf("SendFrame failed: %v", err)
	}

	frames := client.frames(c.Mqtt.Topics.Stream)
	if len(frames) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(frames))
	}
	if frames[0][2] != 0xff {
		t.Errorf("Expected first frame white, got %v", frames[0][2:5])
	}
	if v := frames[1][2]; v == 0 || v == 0xff {
		t.Errorf("Expected second frame between black and white, got %v", frames[1][2:5])
	}
}

func TestReadConfig(t *testing.T) {
	c, err := ReadConfig(strings.NewReader(`
mqtt:
  url: tcp://broker:1883
  topics:
    stream: tree/stream
frame:
  width: 50
`))
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if c.Mqtt.URL != "tcp://broker:1883" || c.Mqtt.Topics.Stream != "tree/stream" {
		t.Errorf("Expected values from the file, got %+v", c.Mqtt)
	}
	if c.Mqtt.Topics.Control != "home/xmastree/control" || c.Frame.Height != 1 || c.Api.Address != ":3000" {
		t.Errorf("Expected defaults kept, got %+v", c)
	}
	if c.Frame.Width != 50 {
		t.Errorf("Expected width 50, got %d", c.Frame.Width)
	}

	if _, err := ReadConfig(strings.NewReader("")); err != nil {
		t.Errorf("Expected empty config to use defaults, got %v", err)
	}
	if _, err := ReadConfig(strings.NewReader("frame:\n  width: 0\n")); err == nil {
		t.Error("Expected error for an empty frame")
	}
	if _, err := ReadConfig(strings.NewReader("frame: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestReplace(t *testing.T) {
	old, _ := newManualAnimation()
	client := newFakeClient()
	c := testConfig()
	c.Frame.Background = "#000000"
	s, _ := NewStreamer(c, client, old)
	old.Add(0, sprite.NewShape(image.Rect(0, 0, 1, 1), color.White))
	old.Start()

	next, _ := newManualAnimation()
	next.Add(0, sprite.NewShape(image.Rect(3, 0, 4, 1), color.White))
	s.Replace(next)

	if got := next.Bounds(); got != image.Rect(0, 0, 4, 1) {
		t.Errorf("Expected replacement sized to the frame, got %v", got)
	}
	if old.Running() || !next.Running() {
		t.Fatal("Expected the replacement to take over")
	}
	if s.Controller().Animation() != next {
		t.Error("Expected commands to go to the replacement")
	}

	next.Tick()
	if err := s.SendFrame(); err != nil {
		t.Fatalf("SendFrame failed: %v", err)
	}
	frames := client.frames(c.Mqtt.Topics.Stream)
	f := frames[len(frames)-1]
	if f[2] != 0 || f[2+9] != 0xff {
		t.Errorf("Expected only the replacement drawn, got %v", f[2:])
	}
}
