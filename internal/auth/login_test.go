package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediexplain/internal/models"
	"mediexplain/internal/storage"
)

func newSessions(t *testing.T) *storage.SessionStore {
	store := storage.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	return storage.NewSessionStore(store)
}

func TestCredentialsValidate(t *testing.T) {
	assert.ErrorIs(t, Credentials{Email: "a@b.c"}.Validate(false), ErrMissingFields)
	assert.ErrorIs(t, Credentials{Password: "x"}.Validate(false), ErrMissingFields)
	assert.NoError(t, Credentials{Email: "a@b.c", Password: "x"}.Validate(false))
	assert.ErrorIs(t, Credentials{Email: "a@b.c", Password: "x"}.Validate(true), ErrMissingName)

	var fErr *FormError
	require.True(t, errors.As(Credentials{}.Validate(false), &fErr))
	assert.Equal(t, "Please fill in all fields.", fErr.Msg)
	require.True(t, errors.As(Credentials{Email: "a@b.c", Password: "x"}.Validate(true), &fErr))
	assert.Equal(t, "Please enter your name.", fErr.Msg)
}

func TestCredentialsUser(t *testing.T) {
	assert.Equal(t, models.User{Name: "asha", Email: "asha@example.com"},
		Credentials{Email: "asha@example.com", Password: "x"}.User())
	assert.Equal(t, models.User{Name: "Asha K", Email: "asha@example.com"},
		Credentials{Name: "Asha K", Email: "asha@example.com"}.User())
	assert.Equal(t, "nobody", Credentials{Email: "nobody"}.User().Name)
}

func TestLoginOverwritesSlot(t *testing.T) {
	ctx := context.Background()
	sessions := newSessions(t)

	_, err := Login(ctx, sessions, Credentials{Email: "first@example.com", Password: "x"}, false, 0)
	require.NoError(t, err)
	user, err := Login(ctx, sessions, Credentials{Name: "Second", Email: "second@example.com", Password: "y"}, true, 0)
	require.NoError(t, err)

	got, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestLoginValidationLeavesSlotUntouched(t *testing.T) {
	ctx := context.Background()
	sessions := newSessions(t)

	_, err := Login(ctx, sessions, Credentials{Email: "a@b.c"}, false, 0)
	assert.ErrorIs(t, err, ErrMissingFields)
	_, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginDelayHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Login(ctx, newSessions(t), Credentials{Email: "a@b.c", Password: "x"}, false, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDemoLogin(t *testing.T) {
	ctx := context.Background()
	sessions := newSessions(t)
	user, err := DemoLogin(ctx, sessions)
	require.NoError(t, err)
	assert.Equal(t, "Demo User", user.Name)
	assert.Equal(t, "demo@mediexplain.ai", user.Email)
}
