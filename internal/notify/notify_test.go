package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jokistudio/portal/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type stubTokenSource struct {
	tokens []string
	err    error
}

func (s *stubTokenSource) ListAdminTokens(context.Context) ([]string, error) {
	return s.tokens, s.err
}

type stubDispatcher struct {
	err    error
	events []model.Event
}

func (s *stubDispatcher) Notify(_ context.Context, event model.Event) error {
	s.events = append(s.events, event)
	return s.err
}

func TestMulti(t *testing.T) {
	event := model.Event{Kind: model.EventOrderCreated, OrderID: 1}

	t.Run("empty", func(t *testing.T) {
		if err := (Multi{}).Notify(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("fan out", func(t *testing.T) {
		first := &stubDispatcher{}
		second := &stubDispatcher{}
		if err := (Multi{first, second}).Notify(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first.events) != 1 || len(second.events) != 1 {
			t.Fatalf("expected both dispatchers called")
		}
	})

	t.Run("one failure does not stop others", func(t *testing.T) {
		failing := &stubDispatcher{err: errors.New("down")}
		ok := &stubDispatcher{}
		err := (Multi{failing, ok}).Notify(context.Background(), event)
		if err == nil {
			t.Fatal("expected error")
		}
		if len(ok.events) != 1 {
			t.Fatal("expected second dispatcher still called")
		}
	})
}

func TestPushDispatcher(t *testing.T) {
	event := model.Event{
		Kind:  model.EventOrderStatusChanged,
		Title: "Pesanan diproses",
		Body:  "Kasir App sedang dikerjakan",
		Meta:  map[string]string{"orderId": "10"},
	}

	t.Run("success", func(t *testing.T) {
		var got pushPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if auth := r.Header.Get("Authorization"); auth != "key=server-key" {
				t.Errorf("unexpected auth header: %s", auth)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("decode payload: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		d := NewPushDispatcher(server.URL, "server-key", &stubTokenSource{tokens: []string{"tok1", "tok2"}}, testLogger())
		if err := d.Notify(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.RegistrationIDs) != 2 || got.Notification.Title != "Pesanan diproses" {
			t.Fatalf("unexpected payload: %+v", got)
		}
		if got.Data["orderId"] != "10" {
			t.Fatalf("unexpected data: %+v", got.Data)
		}
	})

	t.Run("no devices is a no-op", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Error("push endpoint must not be called")
		}))
		defer server.Close()

		d := NewPushDispatcher(server.URL, "", &stubTokenSource{}, testLogger())
		if err := d.Notify(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("token source failure", func(t *testing.T) {
		d := NewPushDispatcher("http://unused", "", &stubTokenSource{err: errors.New("db down")}, testLogger())
		if err := d.Notify(context.Background(), event); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("endpoint failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer server.Close()

		d := NewPushDispatcher(server.URL, "", &stubTokenSource{tokens: []string{"tok"}}, testLogger())
		if err := d.Notify(context.Background(), event); err == nil {
			t.Fatal("expected error")
		}
	})
}

type stubChannel struct {
	declareErr error
	publishErr error
	closeErr   error

	published []amqp.Publishing
	keys      []string
}

func (c *stubChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return c.declareErr
}

func (c *stubChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	c.published = append(c.published, msg)
	c.keys = append(c.keys, key)
	return nil
}

func (c *stubChannel) Close() error { return c.closeErr }

func withStubDial(t *testing.T, ch amqpChannel, dialErr error) {
	t.Helper()
	orig := dialAMQP
	t.Cleanup(func() { dialAMQP = orig })
	dialAMQP = func(string) (amqpChannel, io.Closer, error) {
		if dialErr != nil {
			return nil, nil, dialErr
		}
		return ch, nil, nil
	}
}

func TestAMQPPublisher(t *testing.T) {
	event := model.Event{Kind: model.EventOrderCreated, OrderID: 7, Title: "Pesanan baru"}

	t.Run("publish", func(t *testing.T) {
		ch := &stubChannel{}
		withStubDial(t, ch, nil)

		pub, err := NewAMQPPublisher("amqp://localhost", testLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := pub.Notify(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ch.published) != 1 || ch.keys[0] != model.EventOrderCreated {
			t.Fatalf("unexpected publish: keys=%v", ch.keys)
		}

		var decoded model.Event
		if err := json.Unmarshal(ch.published[0].Body, &decoded); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if decoded.OrderID != 7 {
			t.Fatalf("unexpected event: %+v", decoded)
		}
		if err := pub.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("dial error", func(t *testing.T) {
		withStubDial(t, nil, errors.New("refused"))
		if _, err := NewAMQPPublisher("amqp://localhost", testLogger()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("declare error", func(t *testing.T) {
		withStubDial(t, &stubChannel{declareErr: errors.New("no perms")}, nil)
		if _, err := NewAMQPPublisher("amqp://localhost", testLogger()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("publish error", func(t *testing.T) {
		ch := &stubChannel{publishErr: errors.New("channel closed")}
		withStubDial(t, ch, nil)

		pub, err := NewAMQPPublisher("amqp://localhost", testLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := pub.Notify(context.Background(), event); err == nil {
			t.Fatal("expected error")
		}
	})
}
