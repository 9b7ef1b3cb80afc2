package notify

import (
	"log/slog"

	"peerchat/contract"
)

// DefaultTag collapses push payloads that carry no tag of their own.
const DefaultTag = "default-tag"

// PushPayload is the background delivery shape: {title, message, tag}.
type PushPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// Receiver handles push payloads delivered while the client is not running
// in the foreground. Payloads sharing a tag replace each other instead of
// stacking; a click focuses an existing window or opens a new one.
type Receiver struct {
	log     *slog.Logger
	shower  contract.INotifier
	windows contract.IWindowManager
	active  map[string]PushPayload
}

func NewReceiver(log *slog.Logger, shower contract.INotifier, windows contract.IWindowManager) *Receiver {
	return &Receiver{
		log:     log,
		shower:  shower,
		windows: windows,
		active:  make(map[string]PushPayload),
	}
}

// Receive displays the payload as a notification, deduplicated by tag.
// An empty payload is logged and dropped.
func (r *Receiver) Receive(payload PushPayload) {
	if payload.Title == "" && payload.Message == "" {
		r.log.Error("Push event but no data")
		return
	}
	if payload.Tag == "" {
		payload.Tag = DefaultTag
	}
	r.active[payload.Tag] = payload
	if err := r.shower.Show(payload.Title, payload.Message); err != nil {
		r.log.Warn("Background notification display failed", "err", err)
	}
}

// Active returns the currently displayed payload for a tag.
func (r *Receiver) Active(tag string) (PushPayload, bool) {
	payload, ok := r.active[tag]
	return payload, ok
}

// Click closes the notification and brings a client window to the front,
// opening a fresh one when none exists.
func (r *Receiver) Click(tag string) {
	if tag == "" {
		tag = DefaultTag
	}
	delete(r.active, tag)

	if r.windows.FocusExisting() {
		return
	}
	if err := r.windows.OpenNew(); err != nil {
		r.log.Warn("Could not open a client window", "err", err)
	}
}
