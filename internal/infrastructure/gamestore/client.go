package gamestore

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/player"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/platform/logging"
	"github.com/coachmate/matchday/internal/platform/resilience"
	"github.com/coachmate/matchday/internal/usecase"
)

var errGameStoreTransient = crerr.New("gamestore transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to a remote matchday API. It satisfies the autosave writer;
// an embedder pairs it with a local editing session so draft flushes land on
// the server that owns the game.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// SaveDraft pushes the current draft composite to the server.
func (c *Client) SaveDraft(ctx context.Context, gameID string, draft squad.Draft) error {
	path := "/v1/games/" + gameID + "/draft"
	return c.doJSON(ctx, http.MethodPut, path, draft, nil)
}

// StartGame commits the lineup and moves the game to played.
func (c *Client) StartGame(ctx context.Context, gameID string, lineup squad.Draft, acknowledgeWarnings bool) (game.Game, error) {
	payload := struct {
		squad.Draft
		AcknowledgeWarnings bool `json:"acknowledgeWarnings"`
	}{Draft: lineup, AcknowledgeWarnings: acknowledgeWarnings}

	var decoded gamePayload
	path := "/v1/games/" + gameID + "/start-game"
	if err := c.doJSON(ctx, http.MethodPost, path, payload, &decoded); err != nil {
		return game.Game{}, err
	}
	return decoded.toDomain(), nil
}

// GetGame fetches one game with its draft and committed lineup.
func (c *Client) GetGame(ctx context.Context, gameID string) (game.Game, error) {
	var decoded gamePayload
	if err := c.doJSON(ctx, http.MethodGet, "/v1/games/"+gameID, nil, &decoded); err != nil {
		return game.Game{}, err
	}
	return decoded.toDomain(), nil
}

// GetByID adapts GetGame to the editing session's loader shape: a missing
// game reports absence instead of an error.
func (c *Client) GetByID(ctx context.Context, gameID string) (game.Game, bool, error) {
	item, err := c.GetGame(ctx, gameID)
	if err != nil {
		if stderrors.Is(err, usecase.ErrNotFound) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, err
	}
	return item, true, nil
}

// ListByTeam fetches the eligible player pool of a team.
func (c *Client) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	var decoded []playerPayload
	if err := c.doJSON(ctx, http.MethodGet, "/v1/teams/"+teamID+"/players", nil, &decoded); err != nil {
		return nil, err
	}

	out := make([]player.Player, 0, len(decoded))
	for _, p := range decoded {
		out = append(out, p.toDomain())
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload, target any) error {
	if c.baseURL == "" {
		return crerr.New("gamestore base url is required")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "gamestore circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: gamestore is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var body io.Reader
	if payload != nil {
		encoded, err := sonic.Marshal(payload)
		if err != nil {
			return crerr.Wrap(err, "marshal gamestore payload")
		}
		_, _ = buf.Write(encoded)
		body = strings.NewReader(buf.String())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return crerr.Wrap(err, "create gamestore request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Cancellation must surface unwrapped so callers can tell an
		// aborted flush from a failed one.
		if ctxErr := ctx.Err(); ctxErr != nil {
			c.recordCircuitResult(nil)
			return ctxErr
		}
		callErr := fmt.Errorf("%w: %s %s: %v", errGameStoreTransient, method, path, err)
		c.recordCircuitResult(callErr)
		return callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		callErr := fmt.Errorf("%w: read gamestore response %s %s: %v", errGameStoreTransient, method, path, err)
		c.recordCircuitResult(callErr)
		return callErr
	}

	if resp.StatusCode/100 != 2 {
		c.recordCircuitResult(classifyStatus(resp.StatusCode))
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s %s", usecase.ErrNotFound, method, path)
		case http.StatusConflict:
			return fmt.Errorf("%w: %s %s", usecase.ErrConflict, method, path)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s %s", usecase.ErrUnauthorized, method, path)
		}
		if isRetryableStatus(resp.StatusCode) {
			return fmt.Errorf("%w: %s %s status=%d body=%s",
				errGameStoreTransient, method, path, resp.StatusCode, truncateForLog(string(raw), 512))
		}
		return fmt.Errorf("gamestore %s %s status=%d body=%s",
			method, path, resp.StatusCode, truncateForLog(string(raw), 512))
	}
	c.recordCircuitResult(nil)

	if target == nil || len(raw) == 0 {
		return nil
	}

	var envelope struct {
		APIVersion string          `json:"apiVersion"`
		Data       json.RawMessage `json:"data"`
	}
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return crerr.Wrapf(err, "unmarshal gamestore response %s %s", method, path)
	}
	if len(envelope.Data) == 0 {
		return crerr.Newf("gamestore response %s %s has no data", method, path)
	}
	if err := sonic.Unmarshal(envelope.Data, target); err != nil {
		return crerr.Wrapf(err, "unmarshal gamestore response data %s %s", method, path)
	}
	return nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	c.breaker.RecordFailure()
}

func classifyStatus(statusCode int) error {
	if isRetryableStatus(statusCode) {
		return errGameStoreTransient
	}
	return nil
}

func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	}
	return statusCode >= http.StatusInternalServerError
}

// IsTransient reports whether the failure is worth retrying on the next
// autosave tick.
func IsTransient(err error) bool {
	return stderrors.Is(err, errGameStoreTransient)
}

func truncateForLog(value string, max int) string {
	if max <= 0 || len(value) <= max {
		return value
	}
	return value[:max] + "...(truncated)"
}
