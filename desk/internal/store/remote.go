package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/desk/config"
	"github.com/Astemirdum/library-desk/desk/internal/errs"
)

// VersionHeader carries the snapshot version on POST /state.
const VersionHeader = "X-State-Version"

// Remote talks to the state service, which keeps the document in a single row.
type Remote struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
}

func NewRemote(cfg config.StateHTTPServer, log *zap.Logger) *Remote {
	return &Remote{
		log: log.Named("remote"),
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: fmt.Sprintf("http://%s", net.JoinHostPort(cfg.Host, cfg.Port)),
	}
}

func (r *Remote) Fetch(ctx context.Context) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/state", http.NoBody)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, http.StatusServiceUnavailable, persistenceErr(req, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, persistenceErr(req, err)
	}
	if resp.StatusCode >= 300 {
		return nil, resp.StatusCode, persistenceErr(req, remoteMessage(body, resp.Status))
	}
	return body, resp.StatusCode, nil
}

// Save writes a snapshot. A 409 means a newer version is stored and yields ErrSuperseded.
func (r *Remote) Save(ctx context.Context, data []byte, version int64) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/state", bytes.NewReader(data))
	if err != nil {
		return http.StatusBadRequest, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(VersionHeader, strconv.FormatInt(version, 10))
	resp, err := r.client.Do(req)
	if err != nil {
		return http.StatusServiceUnavailable, persistenceErr(req, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, persistenceErr(req, err)
	}
	if resp.StatusCode == http.StatusConflict {
		return resp.StatusCode, fmt.Errorf("version %d: %w", version, ErrSuperseded)
	}
	if resp.StatusCode >= 300 {
		return resp.StatusCode, persistenceErr(req, remoteMessage(body, resp.Status))
	}
	return resp.StatusCode, nil
}

func remoteMessage(body []byte, status string) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return status
}

func persistenceErr(req *http.Request, cause any) error {
	return fmt.Errorf("%s %s: %w: %v", req.Method, req.URL.Path, errs.ErrPersistence, cause)
}
