package discordhook

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	sonic "github.com/bytedance/sonic"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnnouncer_PostsContent(t *testing.T) {
	t.Parallel()

	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type: %s", ct)
		}

		var body map[string]string
		raw, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(raw, &body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		got.Store(body["content"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	announcer := NewAnnouncer(Config{WebhookURL: srv.URL}, discardLogger())
	announcer.Announce(t.Context(), "The draft has started.")

	content, _ := got.Load().(string)
	if content != "The draft has started." {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestAnnouncer_TruncatesLongContent(t *testing.T) {
	t.Parallel()

	var gotLen atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		raw, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(raw, &body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		gotLen.Store(int64(len(body["content"])))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	announcer := NewAnnouncer(Config{WebhookURL: srv.URL}, discardLogger())
	announcer.Announce(t.Context(), strings.Repeat("a", maxContentLength+500))

	if gotLen.Load() != maxContentLength {
		t.Fatalf("unexpected content length: %d", gotLen.Load())
	}
}

func TestTruncateContent_KeepsRuneBoundaries(t *testing.T) {
	t.Parallel()

	// The cut point lands inside the first three-byte rune; the truncation
	// must back up instead of emitting a split rune.
	message := strings.Repeat("a", maxContentLength-4) + "日本語"
	got := truncateContent(message)

	if len(got) > maxContentLength {
		t.Fatalf("truncated content too long: %d bytes", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncated content is not valid utf-8: %q", got[len(got)-8:])
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-8:])
	}

	ascii := truncateContent(strings.Repeat("a", maxContentLength+500))
	if len(ascii) != maxContentLength {
		t.Fatalf("unexpected ascii truncation length: %d", len(ascii))
	}
}

func TestAnnouncer_SwallowsServerErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	announcer := NewAnnouncer(Config{WebhookURL: srv.URL}, discardLogger())
	announcer.Announce(t.Context(), "standings updated")
}

func TestAnnouncer_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	announcer := NewAnnouncer(Config{
		WebhookURL:          srv.URL,
		CircuitFailureCount: 2,
		CircuitOpenTimeout:  time.Minute,
	}, discardLogger())

	for i := 0; i < 5; i++ {
		announcer.Announce(t.Context(), "season update")
	}

	if calls.Load() != 2 {
		t.Fatalf("expected 2 upstream calls before the circuit opened, got %d", calls.Load())
	}
}

func TestAnnouncer_SkipsEmptyMessageAndMissingURL(t *testing.T) {
	t.Parallel()

	announcer := NewAnnouncer(Config{}, discardLogger())
	announcer.Announce(t.Context(), "no webhook configured")

	srvHit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srvHit = true
	}))
	defer srv.Close()

	configured := NewAnnouncer(Config{WebhookURL: srv.URL}, discardLogger())
	configured.Announce(t.Context(), "   ")
	if srvHit {
		t.Fatalf("expected no request for blank message")
	}
}
