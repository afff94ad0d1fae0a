package validation

import (
	"bytes"
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidPayload = errors.New("invalid payload")

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func parseObjectID(value string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(value)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidPayload
	}
	return id, nil
}

func parseObjectIDs(values []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(values))
	for _, value := range values {
		id, err := parseObjectID(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
