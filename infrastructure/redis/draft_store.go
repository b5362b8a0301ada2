package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"search-funnel/domain/services"
)

const draftKeyPrefix = "wizard:draft:"

// DraftStore keeps authoring wizard drafts as JSON with a sliding TTL.
type DraftStore struct {
	client *RedisClient
	ttl    time.Duration
}

func NewDraftStore(client *RedisClient, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(id uuid.UUID) string {
	return draftKeyPrefix + id.String()
}

func (s *DraftStore) Get(ctx context.Context, id uuid.UUID) (*services.WizardDraft, error) {
	var draft services.WizardDraft
	if err := s.client.GetJSON(ctx, draftKey(id), &draft); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, services.ErrDraftNotFound
		}
		return nil, err
	}
	return &draft, nil
}

func (s *DraftStore) Put(ctx context.Context, draft *services.WizardDraft) error {
	draft.UpdatedAt = time.Now()
	return s.client.SetJSON(ctx, draftKey(draft.ID), draft, s.ttl)
}

func (s *DraftStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, draftKey(id))
}
