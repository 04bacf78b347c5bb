package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()
	ctx := context.Background()

	if _, ok, err := m.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	payload := []byte(`{"a":1}`)
	if err := m.Set(ctx, "k", payload); err != nil {
		t.Fatalf("set: %v", err)
	}
	payload[0] = 'x'

	got, ok, err := m.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("stored value should be copied, got %s", got)
	}
}

func TestMemoryExpiryAndSweep(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	_ = m.Set(ctx, "old", []byte("1"))
	now = now.Add(2 * time.Minute)
	_ = m.Set(ctx, "fresh", []byte("2"))

	if _, ok, _ := m.Get(ctx, "old"); ok {
		t.Fatal("expected expired entry to miss")
	}
	if removed := m.Sweep(); removed != 1 {
		t.Fatalf("expected one entry swept, got %d", removed)
	}
	if m.Len() != 1 {
		t.Fatalf("expected one entry left, got %d", m.Len())
	}
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	m := NewMemory(0, 0)
	defer m.Close()
	now := time.Now()
	m.now = func() time.Time { return now }
	_ = m.Set(context.Background(), "k", []byte("v"))
	now = now.Add(24 * time.Hour)
	if _, ok, _ := m.Get(context.Background(), "k"); !ok {
		t.Fatal("expected entry without ttl to persist")
	}
}

func TestMemoryBackgroundSweep(t *testing.T) {
	m := NewMemory(time.Millisecond, 5*time.Millisecond)
	defer m.Close()
	_ = m.Set(context.Background(), "k", []byte("v"))

	deadline := time.Now().Add(time.Second)
	for m.Len() > 0 {
		if time.Now().After(deadline) {
			t.Fatal("expected background sweep to drop entry")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestMemoryClosed(t *testing.T) {
	m := NewMemory(time.Minute, time.Minute)
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if err := m.Set(context.Background(), "k", nil); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if _, _, err := m.Get(context.Background(), "k"); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	if err := c.Set(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, err := c.Get(context.Background(), "k"); ok || err != nil {
		t.Fatalf("expected noop miss, got ok=%v err=%v", ok, err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
