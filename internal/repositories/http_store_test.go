package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"csat/internal/models/db_models"
	"csat/pkg/utils"
)

func TestHTTPStoreListAll(t *testing.T) {
	want := []db_models.SurveyRecord{
		record("1001", 4, 5, 5, time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)),
		record("1024", 2, 3, 4, time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)),
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("list used method %s", r.Method)
		}
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, srv.Client())
	got, err := s.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].TicketID != want[i].TicketID {
			t.Errorf("record %d: ticket %q, want %q", i, got[i].TicketID, want[i].TicketID)
		}
	}
}

func TestHTTPStoreListAllFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "non-collection payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"oops":"not an array"}`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			s := NewHTTPStore(srv.URL, srv.Client())
			_, err := s.ListAll(context.Background())
			if !errors.Is(err, utils.ErrConnection) {
				t.Fatalf("got %v, want ErrConnection", err)
			}
		})
	}
}

func TestHTTPStoreInsertTrustsBackendEcho(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("insert used method %s", r.Method)
		}
		var rec db_models.SurveyRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			t.Errorf("decoding insert body: %v", err)
		}
		rec.ID = "backend-assigned"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rec)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, srv.Client())
	in := record("1001", 4, 5, 5, time.Now().UTC())
	stored, err := s.Insert(context.Background(), &in)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if stored.ID != "backend-assigned" {
		t.Fatalf("stored.ID = %q, want the backend echo", stored.ID)
	}
}

func TestHTTPStoreInsertFailureIsWriteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, srv.Client())
	in := record("1001", 4, 5, 5, time.Now().UTC())
	_, err := s.Insert(context.Background(), &in)
	if !errors.Is(err, utils.ErrWrite) {
		t.Fatalf("got %v, want ErrWrite", err)
	}
}

func TestHTTPStoreRemoveByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("delete used method %s", r.Method)
		}
		if strings.HasSuffix(r.URL.Path, "/missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewHTTPStore(srv.URL, srv.Client())

	removed, err := s.RemoveByID(context.Background(), "abc")
	if err != nil || !removed {
		t.Fatalf("RemoveByID(abc) = (%v, %v), want (true, nil)", removed, err)
	}

	removed, err = s.RemoveByID(context.Background(), "missing")
	if err != nil || removed {
		t.Fatalf("RemoveByID(missing) = (%v, %v), want (false, nil)", removed, err)
	}
}

func TestHTTPStoreClearAllUnsupported(t *testing.T) {
	s := NewHTTPStore("http://example.invalid", nil)

	if s.SupportsClear() {
		t.Fatal("remote store claims to support clear")
	}
	if err := s.ClearAll(context.Background()); !errors.Is(err, utils.ErrUnsupportedOperation) {
		t.Fatalf("got %v, want ErrUnsupportedOperation", err)
	}
}

func TestHTTPStoreUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	s := NewHTTPStore(srv.URL, nil)
	_, err := s.ListAll(context.Background())
	if !errors.Is(err, utils.ErrConnection) {
		t.Fatalf("got %v, want ErrConnection", err)
	}
}
