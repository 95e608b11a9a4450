package entities

import (
	"strings"
	"time"
)

type ParticipantRole string

const (
	ParticipantRoleStudent   ParticipantRole = "student"
	ParticipantRoleCorporate ParticipantRole = "corporate"
	ParticipantRoleSystem    ParticipantRole = "system"
)

type MessageType string

const (
	MessageTypeText      MessageType = "text"
	MessageTypeFile      MessageType = "file"
	MessageTypeMilestone MessageType = "milestone"
)

func (t MessageType) Valid() bool {
	return t == MessageTypeText || t == MessageTypeFile || t == MessageTypeMilestone
}

// SystemSenderID is the sender of messages the coordinator writes itself.
const SystemSenderID = "system"

type Attachment struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// RoomMessage is one immutable unit of communication inside a room.
//
// Storage model (DynamoDB):
//   - PK: room_id
//   - SK: seq (fixed-width created_at + "#" + id)
//   - a guard item under SK "id#<id>" keeps the id unique per room
//
// Messages are totally ordered inside a room by (CreatedAt, ID); Seq encodes
// that order as a lexicographically sortable string.
type RoomMessage struct {
	ID         string          `json:"id"`
	RoomID     string          `json:"room_id"`
	SenderID   string          `json:"sender_id"`
	SenderRole ParticipantRole `json:"sender_role"`
	Type       MessageType     `json:"type"`
	Content    string          `json:"content"`
	Attachment *Attachment     `json:"attachment,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// SeqTimeLayout is RFC3339 with fixed nanosecond width so that string order
// equals time order.
const SeqTimeLayout = "2006-01-02T15:04:05.000000000Z"

func MessageSeq(createdAt time.Time, id string) string {
	return createdAt.UTC().Format(SeqTimeLayout) + "#" + id
}

func (m RoomMessage) Seq() string {
	return MessageSeq(m.CreatedAt, m.ID)
}

// Less orders messages by (CreatedAt, ID).
func (m RoomMessage) Less(other RoomMessage) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.Before(other.CreatedAt)
	}
	return strings.Compare(m.ID, other.ID) < 0
}
