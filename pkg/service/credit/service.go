package credit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/agentic-lender/lendermemo/pkg/domain/interfaces"
	"github.com/agentic-lender/lendermemo/pkg/domain/model/credit"
	"github.com/agentic-lender/lendermemo/pkg/domain/model/errs"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
	"github.com/agentic-lender/lendermemo/pkg/utils/logging"
	"github.com/agentic-lender/lendermemo/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// HTTPSource fetches credit request records from an external data service
// exposing /credit-requests and /credit-requests/{id}.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.CreditSource = &HTTPSource{}

type HTTPOption func(*HTTPSource)

func WithHTTPClient(client *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.httpClient = client
	}
}

func NewHTTPSource(baseURL string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *HTTPSource) ListRequests(ctx context.Context) ([]credit.Request, error) {
	var requests []credit.Request
	if err := s.getJSON(ctx, "/credit-requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *HTTPSource) GetDetail(ctx context.Context, id types.RequestID) (*credit.Detail, error) {
	var detail credit.Detail
	if err := s.getJSON(ctx, "/credit-requests/"+url.PathEscape(id.String()), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *HTTPSource) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to build data provider request",
			goerr.V("path", path))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "data provider request failed",
			goerr.T(errs.TagExternal),
			goerr.V("path", path))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return goerr.New("data provider returned non-success status",
			goerr.T(errs.TagExternal),
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode data provider response",
			goerr.T(errs.TagExternal),
			goerr.V("path", path))
	}
	return nil
}

// FetchDetails retrieves a record and renders it into the labeled-section
// text layout for prompt assembly. Provider failure degrades to a
// descriptive error string instead of aborting the request; the memo prompt
// carries the failure text and the model is told details are unavailable.
func FetchDetails(ctx context.Context, src interfaces.CreditSource, id types.RequestID) string {
	detail, err := src.GetDetail(ctx, id)
	if err != nil {
		logging.From(ctx).Warn("failed to fetch credit request details",
			"request_id", id, "error", err)
		return credit.RenderError(id, err)
	}
	return detail.Render()
}
