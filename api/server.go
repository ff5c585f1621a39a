// Package api serves a small HTTP interface to control a running animation.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/matt-g-everett/sparkle/control"
)

// Api is the HTTP server. GET /status describes the animation, POST
// /start, /stop, /pause, /unpause and /restart control it, and POST /command
// takes the same JSON as the MQTT control topic.
type Api struct {
	address    string
	static     string
	controller *control.Controller
}

// NewApi creates an Api on address. When static is not empty the files in it
// are served from the root.
func NewApi(address, static string, controller *control.Controller) *Api {
	a := new(Api)
	a.address = address
	a.static = static
	a.controller = controller
	return a
}

// Handler routes the API.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", a.handleStatus)
	mux.HandleFunc("POST /command", a.handleCommand)
	mux.HandleFunc("POST /{command}", a.handleNamedCommand)
	if a.static != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(a.static)))
	}
	return mux
}

// Serve listens until the server fails.
func (a *Api) Serve() error {
	log.Printf("Listening on %s...", a.address)
	return http.ListenAndServe(a.address, a.Handler())
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	a.writeStatus(w)
}

func (a *Api) handleCommand(w http.ResponseWriter, r *http.Request) {
	var cmd control.Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		http.Error(w, "malformed command", http.StatusBadRequest)
		return
	}
	a.apply(w, cmd)
}

func (a *Api) handleNamedCommand(w http.ResponseWriter, r *http.Request) {
	a.apply(w, control.Command{Type: r.PathValue("command")})
}

func (a *Api) apply(w http.ResponseWriter, cmd control.Command) {
	if err := a.controller.Apply(cmd); err != nil {
		if errors.Is(err, control.ErrUnknownCommand) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	a.writeStatus(w)
}

func (a *Api) writeStatus(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.controller.Status()); err != nil {
		log.Printf("Unable to write status: %v", err)
	}
}
