package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/config"
)

// HTTPClient talks to the acquirer API rooted at {host}/sites/{siteId}.
// It never retries; a failed call is reported to the caller as is.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg config.GatewayConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: fmt.Sprintf("%s/sites/%s", strings.TrimRight(cfg.BaseURL, "/"), url.PathEscape(cfg.SiteID)),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *HTTPClient) CreateBill(ctx context.Context, req application.CreateBillRequest) (*application.BillResponse, error) {
	endpoint := fmt.Sprintf("%s/bills/%s/", c.baseURL, url.PathEscape(req.BillID))
	return sendRequest[application.CreateBillRequest, application.BillResponse](c, ctx, http.MethodPut, endpoint, &req)
}

func (c *HTTPClient) GetBillDetails(ctx context.Context, billID string) (*application.BillResponse, error) {
	endpoint := fmt.Sprintf("%s/bills/%s/details/", c.baseURL, url.PathEscape(billID))
	return sendRequest[any, application.BillResponse](c, ctx, http.MethodGet, endpoint, nil)
}

func (c *HTTPClient) GetPayment(ctx context.Context, paymentID string) (*application.PaymentResponse, error) {
	endpoint := fmt.Sprintf("%s/payments/%s/", c.baseURL, url.PathEscape(paymentID))
	return sendRequest[any, application.PaymentResponse](c, ctx, http.MethodGet, endpoint, nil)
}

func (c *HTTPClient) CreateRefund(ctx context.Context, paymentID, refundID string, req application.CreateRefundRequest) (*application.RefundResponse, error) {
	endpoint := fmt.Sprintf("%s/payments/%s/refunds/%s/", c.baseURL, url.PathEscape(paymentID), url.PathEscape(refundID))
	return sendRequest[application.CreateRefundRequest, application.RefundResponse](c, ctx, http.MethodPut, endpoint, &req)
}

func (c *HTTPClient) GetRefund(ctx context.Context, paymentID, refundID string) (*application.RefundResponse, error) {
	endpoint := fmt.Sprintf("%s/payments/%s/refunds/%s/", c.baseURL, url.PathEscape(paymentID), url.PathEscape(refundID))
	return sendRequest[any, application.RefundResponse](c, ctx, http.MethodGet, endpoint, nil)
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, endpoint string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		gwErr := &application.GatewayError{
			Code:       http.StatusText(resp.StatusCode),
			Message:    strings.TrimSpace(string(body)),
			StatusCode: resp.StatusCode,
		}
		var errResp application.GatewayErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Err != "" {
			gwErr.Code = errResp.Err
			gwErr.Message = errResp.Message
		}
		return nil, gwErr
	}

	var gatewayResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&gatewayResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &gatewayResp, nil
}
