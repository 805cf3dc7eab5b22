package instruments

import (
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
)

type instrumentRestClient struct {
	BaseUrl string
	Client  *gatewayhttp.Client
}

func NewInstrumentRestClient(baseUrl string, client *gatewayhttp.Client) contracts.InstrumentGatewayClient {
	return &instrumentRestClient{
		BaseUrl: baseUrl + constvars.ResourceInstrument,
		Client:  client,
	}
}

func (c *instrumentRestClient) FindInstrumentByID(ctx context.Context, instrumentID string) (*models.Instrument, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s", c.BaseUrl, instrumentID), nil)
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
			return nil, exceptions.ErrGetGatewayResource(err, constvars.ResourceNameInstrument)
		}

		var gatewayError responses.GatewayError
		err = json.Unmarshal(bodyBytes, &gatewayError)
		if err != nil || gatewayError.Message == "" {
			return nil, exceptions.ErrGetGatewayResource(fmt.Errorf("status %d", resp.StatusCode), constvars.ResourceNameInstrument)
		}
		return nil, exceptions.ErrGetGatewayResource(errors.New(gatewayError.Message), constvars.ResourceNameInstrument)
	}

	instrument := new(models.Instrument)
	err = json.NewDecoder(resp.Body).Decode(&instrument)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceNameInstrument)
	}

	return instrument, nil
}
