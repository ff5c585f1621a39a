package stream

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Config of the sparkle service, read from YAML.
type Config struct {
	// Host is where the animation is shown: "mqtt" or "terminal".
	Host  string `yaml:"host"`
	Scene string `yaml:"scene"`
	// Watch reloads the scene whenever its file changes.
	Watch bool `yaml:"watch"`
	Audio bool `yaml:"audio"`

	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Qos      byte   `yaml:"qos"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	Frame struct {
		Width      int    `yaml:"width"`
		Height     int    `yaml:"height"`
		Background string `yaml:"background"`
		// Smoothing blends each frame with the last one sent. 0 sends frames as drawn.
		Smoothing float64 `yaml:"smoothing"`
	} `yaml:"frame"`

	Api struct {
		Address string `yaml:"address"`
		// Static is a directory of files served alongside the API.
		Static string `yaml:"static"`
	} `yaml:"api"`
}

// DefaultConfig is used for anything a config file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Host = "mqtt"
	c.Scene = "scenes/demo.yaml"
	c.Mqtt.ClientID = "sparkle"
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Mqtt.Topics.Control = "home/xmastree/control"
	c.Frame.Width = 500
	c.Frame.Height = 1
	c.Frame.Background = "#000000"
	c.Api.Address = ":3000"
	return c
}

// ReadConfig decodes YAML from r over the defaults.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return c, fmt.Errorf("invalid frame size %dx%d", c.Frame.Width, c.Frame.Height)
	}
	if c.Frame.Smoothing < 0 || c.Frame.Smoothing >= 1 {
		return c, fmt.Errorf("smoothing %v outside [0, 1)", c.Frame.Smoothing)
	}
	return c, nil
}
