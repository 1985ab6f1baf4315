package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	opts := ArtifactKeyOpts{Format: "svg", Style: "classic", DPI: 100}
	ak1 := k.ArtifactKey("hash123", opts)
	if ak1 != k.ArtifactKey("hash123", opts) {
		t.Error("ArtifactKey should be deterministic")
	}
	if !strings.HasPrefix(ak1, "artifact:") || len(ak1) != len("artifact:")+64 {
		t.Errorf("ArtifactKey unexpected: %s", ak1)
	}

	// Every option changes the key
	variants := []ArtifactKeyOpts{
		{Format: "png", Style: "classic", DPI: 100},
		{Format: "svg", Style: "mono", DPI: 100},
		{Format: "svg", Style: "classic", DPI: 200},
	}
	for _, v := range variants {
		if k.ArtifactKey("hash123", v) == ak1 {
			t.Errorf("ArtifactKeyOpts %+v should produce a different key", v)
		}
	}
	if k.ArtifactKey("hash456", opts) == ak1 {
		t.Error("Different plan hashes should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	opts := ArtifactKeyOpts{Format: "pdf"}
	base := NewDefaultKeyer().ArtifactKey("hash", opts)

	tests := []struct {
		name   string
		keyer  Keyer
		prefix string
	}{
		{"default inner", NewScopedKeyer(NewDefaultKeyer(), "cli:"), "cli:"},
		{"nil inner", NewScopedKeyer(nil, "server:"), "server:"},
		{"nested", NewScopedKeyer(NewScopedKeyer(nil, "v2:"), "server:"), "server:v2:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.keyer.ArtifactKey("hash", opts); got != tt.prefix+base {
				t.Errorf("ArtifactKey() = %q, want prefix %q", got, tt.prefix)
			}
			if got := tt.keyer.(ScopedKeyer).Prefix(); got != tt.prefix {
				t.Errorf("Prefix() = %q, want %q", got, tt.prefix)
			}
		})
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Errorf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit || string(data) != "value" {
		t.Errorf("Get(key) = %q, %v, %v", data, hit, err)
	}

	// Entries are sharded by hash prefix
	h := Hash([]byte("key"))
	if _, err := os.Stat(filepath.Join(c.Dir(), h[:2], h[2:]+".json")); err != nil {
		t.Errorf("entry file missing: %v", err)
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}

	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheKeyMismatch(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "a", []byte("a"), 0); err != nil {
		t.Fatal(err)
	}
	// an entry written for "a" found at the path of "b"
	if err := os.MkdirAll(filepath.Dir(c.path("b")), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(c.path("a"), c.path("b")); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "b"); hit || err != nil {
		t.Errorf("mismatched entry: hit %v, err %v", hit, err)
	}
}

func TestFileCacheClearRemovesTempFiles(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "a", []byte("a"), 0); err != nil {
		t.Fatal(err)
	}
	stray := filepath.Join(filepath.Dir(c.path("a")), ".entry-123.tmp")
	if err := os.WriteFile(stray, []byte("partial"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := c.Clear()
	if err != nil || n != 1 {
		t.Fatalf("Clear = %d, %v; want 1, nil", n, err)
	}
	if _, err := os.Stat(stray); !os.IsNotExist(err) {
		t.Error("temp file left after Clear")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("%d entries left in cache dir", len(entries))
	}

	// Clearing a missing directory is a no-op
	gone := &FileCache{dir: filepath.Join(t.TempDir(), "missing")}
	if n, err := gone.Clear(); n != 0 || err != nil {
		t.Errorf("Clear of missing dir = %d, %v", n, err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Config{Backend: "none"})
	if err != nil {
		t.Fatalf("Open(none) error: %v", err)
	}
	if _, ok := c.(NullCache); !ok {
		t.Errorf("Open(none) = %T", c)
	}

	c, err = Open(ctx, Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open(file) error: %v", err)
	}
	if _, ok := c.(*FileCache); !ok {
		t.Errorf("Open(default) = %T", c)
	}

	if _, err := Open(ctx, Config{Backend: "file"}); err == nil {
		t.Error("file backend without dir should fail")
	}
	if _, err := Open(ctx, Config{Backend: "memcached"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("unknown backend error = %v", err)
	}
}

func TestRedisCacheBadURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "http://not-redis"); err == nil {
		t.Error("NewRedisCache should reject a non-redis URL")
	}
}

func TestRedisCacheCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRedisCache(ctx, "redis://127.0.0.1:1/0")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("NewRedisCache with canceled context = %v", err)
	}
}

func TestMongoEntry(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e := newMongoEntry("k", []byte("v"), time.Hour, now)
	if e.Key != "k" || string(e.Data) != "v" {
		t.Errorf("entry = %+v", e)
	}
	if e.ExpiresAt == nil || !e.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("ExpiresAt = %v", e.ExpiresAt)
	}
	if e := newMongoEntry("k", nil, 0, now); e.ExpiresAt != nil {
		t.Error("entry without ttl should have no expiry")
	}
}

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) != nil")
	}

	err := Retryable(ErrNetwork)
	if !IsRetryable(err) || !errors.Is(err, ErrNetwork) {
		t.Errorf("Retryable(ErrNetwork) = %v: retryable %v, is network %v", err, IsRetryable(err), errors.Is(err, ErrNetwork))
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), ErrNetwork.Error())
	}
	if IsRetryable(ErrUnknownBackend) {
		t.Error("plain error reported as retryable")
	}
	if !IsRetryable(fmt.Errorf("ping: %w", Retryable(ErrNetwork))) {
		t.Error("wrapped retryable error not detected")
	}
}

func TestBackoffRetry(t *testing.T) {
	b := Backoff{Attempts: 3, Delay: time.Millisecond}

	tests := []struct {
		name      string
		failures  int   // transient failures before success
		permanent error // returned on the first call when set
		wantCalls int
		wantErr   error
	}{
		{"first try", 0, nil, 1, nil},
		{"after one retry", 1, nil, 2, nil},
		{"on last attempt", 2, nil, 3, nil},
		{"out of attempts", 5, nil, 3, ErrNetwork},
		{"permanent error", 0, ErrUnknownBackend, 1, ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := b.Retry(context.Background(), func() error {
				calls++
				if tt.permanent != nil {
					return tt.permanent
				}
				if calls <= tt.failures {
					return Retryable(ErrNetwork)
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if tt.wantErr == nil && err != nil {
				t.Errorf("err = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackoffRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Backoff{Attempts: 3, Delay: time.Hour}.Retry(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBackoffZeroAttempts(t *testing.T) {
	calls := 0
	_ = Backoff{}.Retry(context.Background(), func() error {
		calls++
		return Retryable(ErrNetwork)
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
