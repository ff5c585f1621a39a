// Package stream shows an animation on an LED device by publishing rendered
// frames over MQTT, and takes control commands from MQTT.
package stream

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"sync"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/control"
	"github.com/matt-g-everett/sparkle/frame"
)

// Client is the part of an MQTT client the Streamer uses.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Streamer that streams RGB data frames of an animation to an ledrx device.
type Streamer struct {
	config     Config
	client     Client
	controller *control.Controller
	background colorful.Color

	redraw    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	previous  *frame.Frame
}

// NewStreamer creates an instance of a Streamer. The animation is sized to the
// configured frame.
func NewStreamer(config Config, client Client, a *anim.Animation) (*Streamer, error) {
	background, err := colorful.Hex(config.Frame.Background)
	if err != nil {
		return nil, fmt.Errorf("frame background: %w", err)
	}

	s := new(Streamer)
	s.config = config
	s.client = client
	s.background = background
	s.redraw = make(chan struct{}, 1)
	s.done = make(chan struct{})

	s.attach(a)
	s.controller = control.NewController(a)
	return s, nil
}

// Controller exposes the controller that MQTT commands go through.
func (s *Streamer) Controller() *control.Controller {
	return s.controller
}

// Replace streams a instead of the current animation, which is stopped.
func (s *Streamer) Replace(a *anim.Animation) {
	s.attach(a)
	s.controller.Replace(a)
	s.requestFrame()
}

func (s *Streamer) attach(a *anim.Animation) {
	a.SetBounds(image.Rect(0, 0, s.config.Frame.Width, s.config.Frame.Height))
	a.OnRedraw(s.requestFrame)
}

func (s *Streamer) requestFrame() {
	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

// SendFrame draws the animation and sends the frame as binary over MQTT to an
// ledrx device.
func (s *Streamer) SendFrame() error {
	f := frame.NewFrame(s.config.Frame.Width, s.config.Frame.Height)
	f.Fill(s.background)
	s.controller.Animation().Draw(f)

	if s.previous != nil && s.config.Frame.Smoothing > 0 {
		f = f.InterpolateFrame(s.previous, s.config.Frame.Smoothing)
	}
	s.previous = f

	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, s.config.Mqtt.Qos, false, b)
	token.Wait()
	return token.Error()
}

// Run sends a frame every time the animation asks to be redrawn, until Close.
func (s *Streamer) Run() {
	for {
		select {
		case <-s.redraw:
			if err := s.SendFrame(); err != nil {
				log.Printf("Unable to send frame: %v", err)
			}
		case <-s.done:
			return
		}
	}
}

// Close stops the animation and ends Run.
func (s *Streamer) Close() {
	s.closeOnce.Do(func() {
		s.controller.Animation().Stop()
		close(s.done)
	})
}

// Subscribe listens for control commands.
func (s *Streamer) Subscribe() error {
	token := s.client.Subscribe(s.config.Mqtt.Topics.Control, s.config.Mqtt.Qos, s.handleControlMessages)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", s.config.Mqtt.Topics.Control, token.Error())
	}
	return nil
}

func (s *Streamer) handleControlMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())

	var cmd control.Command
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Printf("Ignoring malformed command: %v", err)
		return
	}
	if err := s.controller.Apply(cmd); err != nil {
		log.Printf("Ignoring command: %v", err)
	}
}
