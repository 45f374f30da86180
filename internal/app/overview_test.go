package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/adimsa/sinyal/internal/gateway"
	"github.com/adimsa/sinyal/internal/state"
)

func overviewHandler(failPath string, requests *atomic.Int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path == failPath {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"detail":"upstream down"}`))
			return
		}
		switch r.URL.Path {
		case "/me/summary":
			_, _ = w.Write([]byte(`{"number":628,"balance":{"remaining":5000}}`))
		case "/store/families", "/store/packages":
			_, _ = w.Write([]byte(`{"data":{"results":[]}}`))
		case "/store/segments":
			_, _ = w.Write([]byte(`{"segments":[]}`))
		case "/store/redeemables":
			_, _ = w.Write([]byte(`{"categories":[]}`))
		default:
			http.NotFound(w, r)
		}
	}
}

func TestRefreshOverview_StoresCompleteResult(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(overviewHandler("", &requests))
	defer server.Close()

	client, err := gateway.NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	store := &state.Store{}

	if err := RefreshOverview(context.Background(), client, "PREPAID", store); err != nil {
		t.Fatalf("RefreshOverview returned error: %v", err)
	}
	if requests.Load() != 5 {
		t.Fatalf("requests = %d, want all five endpoints hit", requests.Load())
	}

	snap := store.Snapshot()
	if !snap.HasOverview {
		t.Fatal("HasOverview = false")
	}
	if snap.Overview.Summary.Number != 628 {
		t.Fatalf("summary number = %d", snap.Overview.Summary.Number)
	}
	if len(snap.Overview.Families) == 0 || len(snap.Overview.Redeemables) == 0 {
		t.Fatalf("raw payloads missing: %+v", snap.Overview)
	}
}

func TestRefreshOverview_AnyFailureKeepsPreviousData(t *testing.T) {
	t.Parallel()

	var okRequests atomic.Int64
	okServer := httptest.NewServer(overviewHandler("", &okRequests))
	defer okServer.Close()

	var failRequests atomic.Int64
	failServer := httptest.NewServer(overviewHandler("/store/redeemables", &failRequests))
	defer failServer.Close()

	store := &state.Store{}

	okClient, err := gateway.NewClient(okServer.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := RefreshOverview(context.Background(), okClient, "PREPAID", store); err != nil {
		t.Fatalf("seed refresh returned error: %v", err)
	}

	failClient, err := gateway.NewClient(failServer.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := RefreshOverview(context.Background(), failClient, "PREPAID", store); err == nil {
		t.Fatal("RefreshOverview returned nil error with a failing endpoint")
	}

	snap := store.Snapshot()
	if !snap.HasOverview || snap.Overview.Summary.Number != 628 {
		t.Fatalf("previous overview lost: %+v", snap)
	}
	if snap.LastError == nil {
		t.Fatal("LastError not recorded")
	}
	if snap.LastError.Error() != "upstream down" {
		t.Fatalf("error = %q, want the backend detail", snap.LastError.Error())
	}
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
}
