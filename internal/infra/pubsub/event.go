package pubsub

import (
	"encoding/json"

	"tankwatch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// encodeEvent assigns an event id when missing and returns the JSON payload with
// the message attributes used for filtering and tracing.
func encodeEvent(event *service.ChangeEvent) ([]byte, map[string]string, error) {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_id": event.EventID,
		"type":     event.Type,
	}
	if event.UID != "" {
		attributes["uid"] = event.UID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
