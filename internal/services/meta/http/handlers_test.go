package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"harmwatch/internal/core/classifier"
	phttp "harmwatch/internal/platform/net/http"
)

func mountMeta(t *testing.T, model *classifier.Model) *httptest.Server {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/meta", func(rr phttp.Router) {
		Register(rr, Deps{
			ServiceName: "harmwatch-api",
			StartedAt:   time.Now().Add(-time.Minute),
			Model:       model,
		})
	})
	srv := httptest.NewServer(r.Mux())
	t.Cleanup(srv.Close)
	return srv
}

func getData(t *testing.T, url string) json.RawMessage {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func TestHealth(t *testing.T) {
	srv := mountMeta(t, nil)
	var out HealthResponse
	if err := json.Unmarshal(getData(t, srv.URL+"/meta/health"), &out); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if !out.OK || out.Service != "harmwatch-api" {
		t.Fatalf("health = %+v", out)
	}
}

func TestReady_ReflectsModelPresence(t *testing.T) {
	model, err := classifier.Load()
	if err != nil {
		t.Fatalf("load model: %v", err)
	}

	var out ReadyResponse
	srv := mountMeta(t, model)
	if err := json.Unmarshal(getData(t, srv.URL+"/meta/ready"), &out); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if out.Status != "ok" {
		t.Fatalf("ready with model = %+v", out)
	}

	srv = mountMeta(t, nil)
	if err := json.Unmarshal(getData(t, srv.URL+"/meta/ready"), &out); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if out.Status != "fail" {
		t.Fatalf("ready without model = %+v", out)
	}
}

func TestService_ReportsUptime(t *testing.T) {
	srv := mountMeta(t, nil)
	var out ServiceResponse
	if err := json.Unmarshal(getData(t, srv.URL+"/meta/service"), &out); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if out.Name != "harmwatch-api" || out.Uptime < 60 {
		t.Fatalf("service = %+v", out)
	}
}

func TestClassifierInfo(t *testing.T) {
	model, err := classifier.Load()
	if err != nil {
		t.Fatalf("load model: %v", err)
	}
	srv := mountMeta(t, model)
	var out ClassifierResponse
	if err := json.Unmarshal(getData(t, srv.URL+"/meta/classifier"), &out); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if out.Features == 0 || len(out.Labels) != 3 {
		t.Fatalf("classifier info = %+v", out)
	}
}
