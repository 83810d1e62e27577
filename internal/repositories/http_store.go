package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"csat/internal/models/db_models"
	"csat/pkg/utils"
)

// HTTPStore talks to a remote collection endpoint:
//
//	GET    {base}      -> JSON array of records
//	POST   {base}      -> stored record as echoed by the backend
//	DELETE {base}/{id} -> success iff the status indicates success
//
// There is no standard bulk-delete route, so ClearAll is unsupported.
// Requests carry the caller's context; no retries, no built-in timeout.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

func NewHTTPStore(baseURL string, client *http.Client) *HTTPStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (s *HTTPStore) SupportsClear() bool { return false }

func (s *HTTPStore) ListAll(ctx context.Context) ([]db_models.SurveyRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrConnection, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: list returned status %d", utils.ErrConnection, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrConnection, err)
	}

	var records []db_models.SurveyRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: list payload is not a survey collection: %v", utils.ErrConnection, err)
	}
	return records, nil
}

func (s *HTTPStore) Insert(ctx context.Context, record *db_models.SurveyRecord) (*db_models.SurveyRecord, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: insert returned status %d", utils.ErrWrite, resp.StatusCode)
	}

	// The backend may reassign fields; trust its echo over our input.
	var stored db_models.SurveyRecord
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return nil, fmt.Errorf("%w: insert response is not a record: %v", utils.ErrWrite, err)
	}
	return &stored, nil
}

func (s *HTTPStore) RemoveByID(ctx context.Context, id string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/"+id, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("%w: delete returned status %d", utils.ErrWrite, resp.StatusCode)
	}
	return true, nil
}

func (s *HTTPStore) ClearAll(ctx context.Context) error {
	return utils.ErrUnsupportedOperation
}

func (s *HTTPStore) ExistsByTicketID(ctx context.Context, ticketID string) (bool, error) {
	records, err := s.ListAll(ctx)
	if err != nil {
		return false, err
	}
	needle := strings.TrimSpace(ticketID)
	for _, r := range records {
		if strings.TrimSpace(r.TicketID) == needle {
			return true, nil
		}
	}
	return false, nil
}
