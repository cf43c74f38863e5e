package archive

import (
	"context"

	"gorm.io/gorm/clause"
)

type Repository struct {
	DB *DB
}

var _ Sink = (*Repository)(nil)

// InsertMessages writes a batch of messages, ignoring ids already
// archived. The bridge can redeliver, so inserts stay idempotent.
func (r *Repository) InsertMessages(ctx context.Context, messages ...ArchivedMessage) error {
	if len(messages) == 0 {
		return nil
	}
	return r.DB.Model(&ArchivedMessage{}).
		WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&messages).Error
}

func (r *Repository) InsertEvents(ctx context.Context, events ...ArchivedEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.DB.Model(&ArchivedEvent{}).
		WithContext(ctx).
		Create(&events).Error
}

// CountMessages reports how many messages one peer pair has archived.
func (r *Repository) CountMessages(ctx context.Context, peerID string) (int64, error) {
	var count int64
	err := r.DB.Model(&ArchivedMessage{}).
		WithContext(ctx).
		Where("peer_id = ?", peerID).
		Count(&count).Error
	return count, err
}
