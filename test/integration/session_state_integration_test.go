package integration

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"
	"testing"

	"flou-backend/internal/model"
	"flou-backend/internal/repository/implementation"
	"flou-backend/pkg/database"
	"flou-backend/pkg/sessionstate"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err, "Failed to connect to DB")
	return gormDB
}

func createSession(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	session := model.ChatSession{
		Id:           uuid.New(),
		UserId:       uuid.New(),
		Title:        "integration test session",
		IsActive:     true,
		CurrentState: datatypes.JSON([]byte(`{}`)),
	}
	require.NoError(t, db.Create(&session).Error)
	t.Cleanup(func() {
		db.Unscoped().Delete(&model.ChatSession{}, "id = ?", session.Id)
	})
	return session.Id
}

func TestSessionStateStore(t *testing.T) {
	db := openTestDB(t)
	store := implementation.NewSessionStateStore(db)
	ctx := context.Background()

	t.Run("load fresh session returns empty state", func(t *testing.T) {
		sessionID := createSession(t, db)

		state, err := store.Load(ctx, sessionID)
		assert.NoError(t, err)
		assert.NotNil(t, state)
		assert.True(t, state.IsEmpty())
	})

	t.Run("save then load round trips the document", func(t *testing.T) {
		sessionID := createSession(t, db)

		state := sessionstate.New()
		state.SetIteration(3)
		state.SetPhase("exploration")
		state.SetSlot("sentimiento", "frustracion")
		state["custom_key"] = map[string]any{"nested": true}

		require.NoError(t, store.Save(ctx, sessionID, state))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.Iteration())
		assert.Equal(t, "exploration", loaded.Phase())
		assert.Equal(t, "frustracion", loaded.Slots()["sentimiento"])
		assert.Contains(t, loaded, "custom_key")
	})

	t.Run("save overwrites the whole document", func(t *testing.T) {
		sessionID := createSession(t, db)

		first := sessionstate.New()
		first.SetSlot("sentimiento", "ansiedad")
		first.SetSlot("tipo_tarea", "ensayo")
		require.NoError(t, store.Save(ctx, sessionID, first))

		second := sessionstate.New()
		second.SetSlot("sentimiento", "calma")
		require.NoError(t, store.Save(ctx, sessionID, second))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "calma", loaded.Slots()["sentimiento"])
		assert.NotContains(t, loaded.Slots(), "tipo_tarea")
	})

	t.Run("unknown session id", func(t *testing.T) {
		_, err := store.Load(ctx, uuid.New())
		assert.ErrorIs(t, err, sessionstate.ErrSessionNotFound)

		err = store.Save(ctx, uuid.New(), sessionstate.New())
		assert.ErrorIs(t, err, sessionstate.ErrSessionNotFound)
	})

	t.Run("concurrent saves leave one full document", func(t *testing.T) {
		sessionID := createSession(t, db)

		stateA := sessionstate.New()
		stateA.SetIteration(1)
		stateA.SetSlot("sentimiento", "frustracion")
		stateA["writer"] = "a"

		stateB := sessionstate.New()
		stateB.SetIteration(2)
		stateB.SetSlot("tipo_tarea", "ensayo")
		stateB["writer"] = "b"

		var wg sync.WaitGroup
		errs := make(chan error, 2)
		for _, state := range []sessionstate.State{stateA, stateB} {
			wg.Add(1)
			go func(s sessionstate.State) {
				defer wg.Done()
				errs <- store.Save(ctx, sessionID, s)
			}(state)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)

		// Last write wins; the stored document is one of the two inputs,
		// never a mix.
		want := stateA
		if loaded["writer"] == "b" {
			want = stateB
		}
		require.Contains(t, []any{"a", "b"}, loaded["writer"], "stored document matches neither writer")
		wantJSON, err := json.Marshal(want)
		require.NoError(t, err)
		gotJSON, err := json.Marshal(loaded)
		require.NoError(t, err)
		assert.JSONEq(t, string(wantJSON), string(gotJSON))
	})

	t.Run("nil state saves as empty document", func(t *testing.T) {
		sessionID := createSession(t, db)

		require.NoError(t, store.Save(ctx, sessionID, nil))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.True(t, loaded.IsEmpty())
	})
}