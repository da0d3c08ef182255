package notify

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nebenzu/skillsafe/internal/config"
)

func TestWebhookSend(t *testing.T) {
	var (
		gotBody []byte
		gotSig  string
		gotType string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSig = r.Header.Get("X-Skillsafe-Signature")
		gotType = r.Header.Get("Content-Type")
	}))
	defer srv.Close()

	ch := NewWebhook(config.WebhookNotifyConfig{URL: srv.URL, Secret: "s3cret"})
	evt := Event{
		Type:     "skill_risky",
		Title:    "skill turned risky",
		Skill:    "evil/installer",
		Score:    12,
		Severity: "critical",
	}
	if err := ch.Send(context.Background(), evt); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if payload["type"] != "skill_risky" || payload["skill"] != "evil/installer" {
		t.Errorf("payload = %v", payload)
	}
	if payload["score"] != float64(12) {
		t.Errorf("score = %v", payload["score"])
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}

	mac := hmac.New(sha256.New, []byte("s3cret"))
	mac.Write(gotBody)
	want := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if gotSig != want {
		t.Errorf("signature = %q, want %q", gotSig, want)
	}
}

func TestWebhookSendUnsigned(t *testing.T) {
	var gotSig string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSig = r.Header.Get("X-Skillsafe-Signature")
	}))
	defer srv.Close()

	ch := NewWebhook(config.WebhookNotifyConfig{URL: srv.URL})
	if err := ch.Send(context.Background(), Event{Type: "score_dropped"}); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if gotSig != "" {
		t.Errorf("expected no signature header without a secret, got %q", gotSig)
	}
}

func TestWebhookSendServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ch := NewWebhook(config.WebhookNotifyConfig{URL: srv.URL})
	if err := ch.Send(context.Background(), Event{Type: "skill_risky"}); err == nil {
		t.Fatal("expected error on 5xx response")
	}
}

func TestWebhookIsConfigured(t *testing.T) {
	if NewWebhook(config.WebhookNotifyConfig{}).IsConfigured() {
		t.Error("empty URL must not be configured")
	}
	if !NewWebhook(config.WebhookNotifyConfig{URL: "http://localhost/hook"}).IsConfigured() {
		t.Error("channel with URL must be configured")
	}
}
