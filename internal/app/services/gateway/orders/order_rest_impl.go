package orders

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
)

type orderRestClient struct {
	BaseUrl string
	Client  *gatewayhttp.Client
}

func NewOrderRestClient(baseUrl string, client *gatewayhttp.Client) contracts.TestOrderGatewayClient {
	return &orderRestClient{
		BaseUrl: baseUrl + constvars.ResourceTestOrder,
		Client:  client,
	}
}

func (c *orderRestClient) FindTestOrderByCode(ctx context.Context, orderCode string) (*models.TestOrder, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, orderCode), nil)
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
			return nil, exceptions.ErrGetGatewayResource(err, constvars.ResourceNameTestOrder)
		}

		var gatewayError responses.GatewayError
		err = json.Unmarshal(bodyBytes, &gatewayError)
		if err != nil || gatewayError.Message == "" {
			gatewayError.Message = fmt.Sprintf("status %d", resp.StatusCode)
		}
		if resp.StatusCode == constvars.StatusNotFound {
			return nil, exceptions.ErrOrderNotFound(errors.New(gatewayError.Message), orderCode)
		}
		return nil, exceptions.ErrGetGatewayResource(errors.New(gatewayError.Message), constvars.ResourceNameTestOrder)
	}

	order := new(models.TestOrder)
	err = json.NewDecoder(resp.Body).Decode(&order)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceNameTestOrder)
	}

	return order, nil
}

func (c *orderRestClient) UpdateTestOrderStatus(ctx context.Context, orderCode, status string) (*models.TestOrder, error) {
	requestJSON, err := json.Marshal(&requests.PatchTestOrder{Status: status})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, fmt.Sprintf("%s/%s", c.BaseUrl, orderCode), bytes.NewBuffer(requestJSON))
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
			return nil, exceptions.ErrPatchGatewayResource(err, constvars.ResourceNameTestOrder)
		}

		var gatewayError responses.GatewayError
		err = json.Unmarshal(bodyBytes, &gatewayError)
		if err != nil || gatewayError.Message == "" {
			gatewayError.Message = fmt.Sprintf("status %d", resp.StatusCode)
		}
		if resp.StatusCode == constvars.StatusNotFound {
			return nil, exceptions.ErrOrderNotFound(errors.New(gatewayError.Message), orderCode)
		}
		return nil, exceptions.ErrPatchGatewayResource(errors.New(gatewayError.Message), constvars.ResourceNameTestOrder)
	}

	order := new(models.TestOrder)
	err = json.NewDecoder(resp.Body).Decode(&order)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceNameTestOrder)
	}

	return order, nil
}
