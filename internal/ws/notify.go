package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type JobPostedEvent struct {
	Type        string `json:"type"`
	JobID       string `json:"jobId"`
	Position    string `json:"position"`
	CompanyName string `json:"companyName"`
	Timestamp   string `json:"timestamp"`
}

const EventTypeJobPosted = "job_posted"

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyJobPosted broadcasts a posting event to every connected listing
// page. A no-op when no hub is installed.
func NotifyJobPosted(jobID uuid.UUID, position, companyName string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := JobPostedEvent{
		Type:        EventTypeJobPosted,
		JobID:       jobID.String(),
		Position:    position,
		CompanyName: companyName,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
