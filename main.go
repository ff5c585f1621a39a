package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gdamore/tcell/v2"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/api"
	"github.com/matt-g-everett/sparkle/audio"
	"github.com/matt-g-everett/sparkle/control"
	"github.com/matt-g-everett/sparkle/scene"
	"github.com/matt-g-everett/sparkle/stream"
	"github.com/matt-g-everett/sparkle/termhost"
)

// host shows an animation somewhere.
type host interface {
	Controller() *control.Controller
	Replace(a *anim.Animation)
}

type app struct {
	Config   stream.Config
	Scene    *scene.Scene
	Player   audio.Player
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(); err != nil {
		log.Printf("Unable to subscribe: %v", err)
	}
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		panic(err)
	}
}

func (a *app) readScene() {
	s, err := scene.LoadFile(a.Config.Scene)
	if err != nil {
		panic(err)
	}
	a.Scene = s
	if s.Background != "" {
		a.Config.Frame.Background = s.Background
	}
}

func (a *app) initAudio() {
	if !a.Config.Audio {
		return
	}
	if err := audio.InitSpeaker(); err != nil {
		log.Printf("No audio: %v", err)
		return
	}
	a.Player = audio.SpeakerPlayer{}
}

func (a *app) build(s *scene.Scene) (*anim.Animation, error) {
	return s.Build(a.Player)
}

func (a *app) runMqtt(animation *anim.Animation) {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	var err error
	a.Streamer, err = stream.NewStreamer(a.Config, a.Client, animation)
	if err != nil {
		panic(err)
	}
	a.serve(a.Streamer)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	animation.Start()
	a.Streamer.Run()
}

func (a *app) runTerminal(animation *anim.Animation) {
	background, err := a.Scene.BackgroundColour()
	if err != nil {
		panic(err)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		panic(err)
	}

	// The terminal belongs to the screen
	log.SetOutput(io.Discard)

	h := termhost.NewHost(screen, animation, background)
	a.serve(h)
	animation.Start()
	if err := h.Run(); err != nil {
		panic(err)
	}
}

// serve starts the HTTP API and, when asked for, the scene watcher.
func (a *app) serve(h host) {
	server := api.NewApi(a.Config.Api.Address, a.Config.Api.Static, h.Controller())
	go func() {
		if err := server.Serve(); err != nil {
			log.Printf("API stopped: %v", err)
		}
	}()

	if a.Config.Watch {
		w, err := scene.Watch(a.Config.Scene)
		if err != nil {
			log.Printf("Unable to watch %s: %v", a.Config.Scene, err)
			return
		}
		go a.reload(w, h)
	}
}

func (a *app) reload(w *scene.Watcher, h host) {
	for {
		select {
		case s, ok := <-w.Scenes:
			if !ok {
				return
			}
			animation, err := a.build(s)
			if err != nil {
				log.Printf("Keeping the current scene: %v", err)
				continue
			}
			log.Printf("Reloaded %s", a.Config.Scene)
			h.Replace(animation)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("Keeping the current scene: %v", err)
		}
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	hostName := flag.String("host", "", "Where to show the animation, mqtt or terminal. Overrides the config.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	if *hostName != "" {
		a.Config.Host = *hostName
	}
	log.Printf("Config: %+v", a.Config)

	a.readScene()
	a.initAudio()
	animation, err := a.build(a.Scene)
	if err != nil {
		panic(err)
	}

	switch a.Config.Host {
	case "mqtt":
		a.runMqtt(animation)
	case "terminal":
		a.runTerminal(animation)
	default:
		log.Fatalf("Unknown host %q", a.Config.Host)
	}
}
