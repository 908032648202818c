package implementation

import (
	"context"
	"testing"

	"flou-backend/pkg/sessionstate"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRejectsNonSerializableState(t *testing.T) {
	// Marshalling happens before any query, so no connection is needed.
	store := NewSessionStateStore(nil)

	state := sessionstate.New()
	state["callback"] = func() {}

	err := store.Save(context.Background(), uuid.New(), state)
	require.Error(t, err)

	var validationErr *sessionstate.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "state is not serializable to JSON", validationErr.Reason)
	assert.Error(t, validationErr.Unwrap())
}
