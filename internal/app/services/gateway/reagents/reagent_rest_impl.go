package reagents

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
	"labportal-service/internal/pkg/dto/requests"
	"labportal-service/internal/pkg/dto/responses"
	"labportal-service/internal/pkg/exceptions"
	"net/http"
	"net/url"
	"strings"
)

type reagentRestClient struct {
	BaseUrl      string
	UsageBaseUrl string
	Client       *gatewayhttp.Client
}

func NewReagentRestClient(baseUrl string, client *gatewayhttp.Client) contracts.ReagentGatewayClient {
	return &reagentRestClient{
		BaseUrl:      baseUrl + constvars.ResourceReagent,
		UsageBaseUrl: baseUrl + constvars.ResourceReagentUsage,
		Client:       client,
	}
}

func (c *reagentRestClient) FindReagentByName(ctx context.Context, reagentName string) (*models.Reagent, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s?reagent_name=%s", c.BaseUrl, url.QueryEscape(reagentName)), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrGetGatewayResource(err, constvars.ResourceNameReagent)
		}

		var gatewayError responses.GatewayError
		err = json.Unmarshal(bodyBytes, &gatewayError)
		if err != nil || gatewayError.Message == "" {
			return nil, exceptions.ErrGetGatewayResource(fmt.Errorf("status %d", resp.StatusCode), constvars.ResourceNameReagent)
		}
		return nil, exceptions.ErrGetGatewayResource(errors.New(gatewayError.Message), constvars.ResourceNameReagent)
	}

	var reagents []models.Reagent
	err = json.NewDecoder(resp.Body).Decode(&reagents)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceNameReagent)
	}
	if len(reagents) == 0 {
		return nil, exceptions.ErrGetGatewayResource(fmt.Errorf("reagent %q not found", reagentName), constvars.ResourceNameReagent)
	}

	return &reagents[0], nil
}

func (c *reagentRestClient) CreateReagentUsage(ctx context.Context, request *requests.CreateReagentUsage) ([]models.UsageRecord, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.UsageBaseUrl, bytes.NewBuffer(requestJSON))
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
			return nil, exceptions.ErrCreateGatewayResource(err, constvars.ResourceNameReagentUsage)
		}

		var gatewayError responses.GatewayError
		err = json.Unmarshal(bodyBytes, &gatewayError)
		if err != nil || gatewayError.Message == "" {
			return nil, exceptions.ErrCreateGatewayResource(fmt.Errorf("status %d", resp.StatusCode), constvars.ResourceNameReagentUsage)
		}
		if gatewayError.Code == "insufficient_stock" || strings.Contains(strings.ToLower(gatewayError.Message), "stock") {
			return nil, exceptions.ErrReagentStockRejected(errors.New(gatewayError.Message))
		}
		return nil, exceptions.ErrCreateGatewayResource(errors.New(gatewayError.Message), constvars.ResourceNameReagentUsage)
	}

	usage := new(responses.CreateReagentUsage)
	err = json.NewDecoder(resp.Body).Decode(&usage)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceNameReagentUsage)
	}

	return usage.UsageRecords, nil
}
