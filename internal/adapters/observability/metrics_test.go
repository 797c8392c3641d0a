package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stayfinder/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/chat", "POST", 200, 12*time.Millisecond)
	observability.ObserveIntent("search", "rus")
	observability.ObserveStoreUnavailable()

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, metric := range []string{
		"stayfinder_http_requests_total",
		"stayfinder_assistant_intents_total",
		"stayfinder_assistant_store_unavailable_total",
	} {
		if !strings.Contains(out, metric) {
			t.Fatalf("expected %s in output", metric)
		}
	}
}

func TestServe_ExportsCustomRegistry(t *testing.T) {
	reg := observability.InitRegistry()
	observability.ObserveIntent("search", "eng")

	addr := "127.0.0.1:19157"
	t.Setenv("METRICS_ADDR", addr)
	observability.Serve(reg)

	// the listener starts in a goroutine; poll until it answers
	var out string
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			time.Sleep(50 * time.Millisecond)
			continue
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		out = string(body)
		break
	}
	if out == "" {
		t.Fatal("metrics listener never answered")
	}
	if !strings.Contains(out, "stayfinder_assistant_intents_total") {
		t.Fatalf("auxiliary listener is not serving the custom registry:\n%s", out)
	}
}
