package archive

import (
	"time"
)

// ArchivedMessage is one chat message persisted off the bridge stream.
type ArchivedMessage struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	PeerID    string `gorm:"index"`
	SenderID  string `gorm:"index"`
	Content   string
	SentAt    time.Time
	CreatedAt time.Time
}

func (ArchivedMessage) TableName() string {
	return "archived_messages"
}

// ArchivedEvent is any non-message hub event, kept raw.
type ArchivedEvent struct {
	ID        uint   `gorm:"primaryKey"`
	Kind      string `gorm:"index"`
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
}

func (ArchivedEvent) TableName() string {
	return "archived_events"
}
