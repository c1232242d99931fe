package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MatchDismissedEvent struct {
	Type      string    `json:"type"`
	MatchID   uuid.UUID `json:"match_id"`
	SkillName string    `json:"skill_name"`
	Timestamp string    `json:"timestamp"`
}

// MatchDismissed implements the match usecase's notifier: the party who
// did not dismiss learns the match is gone.
func (h *Hub) MatchDismissed(counterpartID uuid.UUID, matchID uuid.UUID, skillName string) {
	if h == nil {
		return
	}

	evt := MatchDismissedEvent{
		Type:      "match_dismissed",
		MatchID:   matchID,
		SkillName: skillName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.SendToUser(counterpartID, b)
}
