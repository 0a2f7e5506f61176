package ws

import (
	"encoding/json"
	"strings"
	"time"
)

type AnalysisCompletedEvent struct {
	Type       string `json:"type"`
	TargetRole string `json:"target_role"`
	Source     string `json:"source"`
	Timestamp  string `json:"timestamp"`
}

// Notifier adapts the hub to the skill-gap usecase. Events carry no user
// identity; connected dashboards only learn that fresh analysis data exists
// for a role.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) AnalysisCompleted(targetRole, source string) {
	if n == nil || n.hub == nil {
		return
	}

	targetRole = strings.ToLower(strings.TrimSpace(targetRole))
	if targetRole == "" {
		return
	}

	evt := AnalysisCompletedEvent{
		Type:       "analysis_completed",
		TargetRole: targetRole,
		Source:     source,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
