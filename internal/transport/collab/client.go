// Package collab содержит HTTP клиенты сервисов-партнеров: предложений, склада и доставки.
package collab

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/domain"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/metrics"
	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/resilience"
)

const HeaderTenantID = "X-Tenant-ID"

// HTTPClient общая часть всех клиентов: заголовок тенанта, JSON, повторы и метрики.
type HTTPClient struct {
	name       string
	baseURL    string
	httpClient *http.Client
	policy     resilience.Policy
	metrics    *metrics.Metrics
	log        *logrus.Entry
}

type ClientArgs struct {
	Name       string
	BaseURL    string
	HTTPClient *http.Client
	Policy     resilience.Policy
	Metrics    *metrics.Metrics
	Logger     *logrus.Logger
}

func NewHTTPClient(args ClientArgs) *HTTPClient {
	hc := args.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPClient{
		name:       args.Name,
		baseURL:    strings.TrimRight(args.BaseURL, "/"),
		httpClient: hc,
		policy:     args.Policy,
		metrics:    args.Metrics,
		log:        args.Logger.WithFields(logrus.Fields{"component": "collab", "module": args.Name}),
	}
}

// call выполняет запрос с повторами. Сетевые ошибки, таймауты, 5xx и 429 повторяются, после исчерпания
// попыток возвращается ошибка с domain.ErrDependencyUnavailable. 4xx не повторяются и возвращаются как
// *StatusCodeError.
func (c *HTTPClient) call(
	ctx context.Context,
	operation, tenantID, method, path string,
	body, out any,
) error {
	started := time.Now()
	_, err := resilience.Do(ctx, c.policy, func(attemptCtx context.Context) (struct{}, error) {
		return struct{}{}, c.attempt(attemptCtx, tenantID, method, path, body, out)
	})
	if c.metrics != nil {
		c.metrics.ObserveCall(c.name, operation, started, err)
	}
	if err == nil {
		return nil
	}

	log := c.log.WithError(err).WithFields(logrus.Fields{"operation": operation, "tenant": tenantID})
	var sce *StatusCodeError
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case errors.As(err, &sce) && !sce.Retryable():
		log.Debug("collaborator rejected request")
		return pkgerrors.Wrapf(err, "%s %s", c.name, operation)
	default:
		log.Warn("collaborator unavailable")
		return fmt.Errorf("%s %s: %w: %w", c.name, operation, domain.ErrDependencyUnavailable, err)
	}
}

//nolint:nonamedreturns
func (c *HTTPClient) attempt(
	ctx context.Context,
	tenantID, method, path string,
	body, out any,
) (err error) {
	var reader io.Reader
	if body != nil {
		data, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return resilience.Permanent(pkgerrors.Wrap(marshalErr, "marshal request"))
		}
		reader = bytes.NewReader(data)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if reqErr != nil {
		return resilience.Permanent(pkgerrors.Wrap(reqErr, "create request"))
	}
	req.Header.Set(HeaderTenantID, tenantID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return pkgerrors.Wrap(doErr, "do request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return pkgerrors.Wrap(readErr, "read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		sce := NewStatusCodeError(resp.StatusCode, respBody)
		if sce.Retryable() {
			return sce
		}
		return resilience.Permanent(sce)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if jsonErr := json.Unmarshal(respBody, out); jsonErr != nil {
		return resilience.Permanent(pkgerrors.Wrap(jsonErr, "parse response"))
	}
	return nil
}

// rejection возвращает тело отказа 4xx, если err именно такой отказ.
func rejection(err error) (*StatusCodeError, bool) {
	var sce *StatusCodeError
	if errors.As(err, &sce) && !sce.Retryable() && !errors.Is(err, domain.ErrDependencyUnavailable) {
		return sce, true
	}
	return nil, false
}

// mapRejection превращает прочие 4xx в domain.ErrDependencyRejected.
func mapRejection(err error) error {
	if _, ok := rejection(err); ok {
		return fmt.Errorf("%w: %w", domain.ErrDependencyRejected, err)
	}
	return err
}

func decodeErrorBody(sce *StatusCodeError, dst any) bool {
	if sce == nil || sce.Body == "" {
		return false
	}
	return json.Unmarshal([]byte(sce.Body), dst) == nil
}

var errEmptyItems = errors.New("no items")
