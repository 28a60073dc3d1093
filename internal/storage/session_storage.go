package storage

import (
	"context"
	"encoding/json"

	"mediexplain/internal/models"

	log "github.com/sirupsen/logrus"
)

// UserKey holds the single logged-in user record.
const UserKey = "medi_user"

type SessionStore struct {
	store Store
}

func NewSessionStore(store Store) *SessionStore {
	return &SessionStore{store: store}
}

func (s *SessionStore) Save(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, UserKey, string(data))
}

// Load returns ok=false when nobody is logged in or the slot is corrupt.
func (s *SessionStore) Load(ctx context.Context) (models.User, bool, error) {
	var user models.User
	raw, ok, err := s.store.Get(ctx, UserKey)
	if err != nil || !ok {
		return user, false, err
	}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Debugf("SessionStore.Load(): corrupt user slot ignored: %v", err)
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, UserKey)
}
