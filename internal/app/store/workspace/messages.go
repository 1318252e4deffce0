// internal/app/store/workspace/messages.go
package workspacestore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devflowhq/devflow/internal/app/system/activity"
	"github.com/devflowhq/devflow/internal/app/system/apperr"
	"github.com/devflowhq/devflow/internal/app/system/normalize"
	"github.com/devflowhq/devflow/internal/domain/models"
)

// messageDetailLimit caps how much of a chat message is echoed into the
// activity log details.
const messageDetailLimit = 30

// AddMessage appends a chat message. Unlike the other mutators it returns
// only the updated message collection, not the whole aggregate; the chat
// feed polls frequently and never needs the rest of the document.
func (s *Store) AddMessage(ctx context.Context, actor, author, text string) ([]models.Message, error) {
	author = normalize.Name(author)
	text = normalize.Name(text)
	if author == "" || text == "" {
		return nil, apperr.Validation("User and text are required")
	}

	ws, err := s.LoadOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	ws.Messages = append(ws.Messages, models.Message{
		ID:        primitive.NewObjectID().Hex(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})

	detail := text
	if len(detail) > messageDetailLimit {
		detail = detail[:messageDetailLimit]
	}
	activity.Record(ws, actor, activity.ActionMessageSent, activity.TargetMessage, "",
		fmt.Sprintf("%s: %s", author, detail))

	if err := s.save(ctx, ws); err != nil {
		return nil, err
	}
	return ws.Messages, nil
}
