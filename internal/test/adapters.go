package test

import (
	"context"
	"fmt"

	"github.com/jokistudio/portal/internal/domain/model"
)

// StoreStub records object store calls and allows overrides.
type StoreStub struct {
	UploadFn func(context.Context, string) (string, error)
	DeleteFn func(context.Context, string) error

	Uploaded []string
	Deleted  []string
}

func (s *StoreStub) Upload(ctx context.Context, dataURI string) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, dataURI)
	}
	url := fmt.Sprintf("https://cdn.test/obj-%d", len(s.Uploaded)+1)
	s.Uploaded = append(s.Uploaded, url)
	return url, nil
}

func (s *StoreStub) Delete(ctx context.Context, objectURL string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, objectURL)
	}
	s.Deleted = append(s.Deleted, objectURL)
	return nil
}

// DispatcherStub records dispatched events.
type DispatcherStub struct {
	NotifyFn func(context.Context, model.Event) error
	Events   []model.Event
}

func (s *DispatcherStub) Notify(ctx context.Context, event model.Event) error {
	if s.NotifyFn != nil {
		return s.NotifyFn(ctx, event)
	}
	s.Events = append(s.Events, event)
	return nil
}
