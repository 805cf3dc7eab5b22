package results

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"labportal-service/internal/app/contracts"
	"labportal-service/internal/app/models"
	"labportal-service/internal/app/services/gateway/gatewayhttp"
	"labportal-service/internal/pkg/constvars"
	"labportal-service/internal/pkg/dto/responses"
	"labportal-service/internal/pkg/exceptions"
	"net/http"
	"strings"
)

type resultRestClient struct {
	BaseUrl string
	Client  *gatewayhttp.Client
}

func NewResultRestClient(baseUrl string, client *gatewayhttp.Client) contracts.TestResultGatewayClient {
	return &resultRestClient{
		BaseUrl: baseUrl + constvars.ResourceTestResult,
		Client:  client,
	}
}

// CreateTestResult submits the panel as the flat payload the backend expects:
// one "<analyte>_value" field per measurement plus flag, status and
// instrument_id.
func (c *resultRestClient) CreateTestResult(ctx context.Context, panel *models.ResultPanel) (*models.ResultPanel, error) {
	payload := flattenPanel(panel)
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/%s", c.BaseUrl, panel.OrderCode), bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrResultSubmit(err)
		}

		var gatewayError responses.GatewayError
		err = json.Unmarshal(bodyBytes, &gatewayError)
		if err != nil || gatewayError.Message == "" {
			gatewayError.Message = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, classifyRejection(resp.StatusCode, gatewayError.Message)
	}

	saved := *panel
	saved.Status = constvars.ResultStatusCompleted
	return &saved, nil
}

// classifyRejection distinguishes the three known causes of a rejected
// submission: order not in processing state, duplicate result, and everything
// else.
func classifyRejection(statusCode int, message string) error {
	lower := strings.ToLower(message)
	switch {
	case statusCode == constvars.StatusUnprocessableEntity || strings.Contains(lower, "processing"):
		return exceptions.ErrOrderNotProcessing(errors.New(message))
	case statusCode == constvars.StatusConflict || strings.Contains(lower, "duplicate") || strings.Contains(lower, "already"):
		return exceptions.ErrResultDuplicate(errors.New(message))
	default:
		return exceptions.ErrResultSubmit(errors.New(message))
	}
}

func flattenPanel(panel *models.ResultPanel) map[string]interface{} {
	payload := make(map[string]interface{}, len(panel.Measurements)+4)
	for _, m := range panel.Measurements {
		payload[fieldName(m.Name)+"_value"] = m.Value
	}
	payload["flag"] = panel.Flag
	payload["status"] = constvars.ResultStatusCompleted
	payload["instrument_id"] = panel.InstrumentID
	payload["test_type"] = panel.TestType
	return payload
}

func fieldName(analyteName string) string {
	lower := strings.ToLower(analyteName)
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	return b.String()
}
