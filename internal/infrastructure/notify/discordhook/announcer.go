package discordhook

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/pennantrace/sandlot/internal/platform/resilience"
)

// Discord rejects content above this length.
const maxContentLength = 2000

type Config struct {
	WebhookURL          string
	Timeout             time.Duration
	CircuitFailureCount int
	CircuitOpenTimeout  time.Duration
}

// Announcer posts league announcements to a Discord webhook. It satisfies
// the fire-and-forget contract: every failure is logged and swallowed.
type Announcer struct {
	client     *http.Client
	webhookURL string
	logger     *slog.Logger
	breaker    *resilience.CircuitBreaker
}

func NewAnnouncer(cfg Config, logger *slog.Logger) *Announcer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	failureCount := cfg.CircuitFailureCount
	if failureCount <= 0 {
		failureCount = 3
	}
	openTimeout := cfg.CircuitOpenTimeout
	if openTimeout <= 0 {
		openTimeout = time.Minute
	}

	return &Announcer{
		client:     &http.Client{Timeout: timeout},
		webhookURL: strings.TrimSpace(cfg.WebhookURL),
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(failureCount, openTimeout),
	}
}

func (a *Announcer) Announce(ctx context.Context, message string) {
	message = strings.TrimSpace(message)
	if message == "" || a.webhookURL == "" {
		return
	}

	if err := a.breaker.Allow(); err != nil {
		a.logger.WarnContext(ctx, "discord webhook circuit breaker rejected request")
		return
	}

	if err := a.post(ctx, message); err != nil {
		a.breaker.RecordFailure()
		a.logger.WarnContext(ctx, "discord announcement failed", "error", err)
		return
	}

	a.breaker.RecordSuccess()
}

func (a *Announcer) post(ctx context.Context, message string) error {
	if len(message) > maxContentLength {
		message = truncateContent(message)
	}

	payload, err := sonic.Marshal(map[string]string{"content": message})
	if err != nil {
		return crerr.Wrap(err, "marshal webhook payload")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.webhookURL, bytes.NewReader(buf.B))
	if err != nil {
		return crerr.Wrap(err, "create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return crerr.Wrap(err, "post webhook")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return crerr.Newf("webhook returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return nil
}

// truncateContent shortens message to the content limit, backing up so the
// cut never lands inside a multi-byte rune.
func truncateContent(message string) string {
	cut := maxContentLength - len("...")
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}
	return message[:cut] + "..."
}
