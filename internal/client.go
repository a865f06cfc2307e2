package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ordersdesk/orderboard/internal/model"
)

const contentTypeJSON = "application/json; charset=utf-8"

// URL templates against the orders backend. {ORDER} and {PRODUCT} are
// path segments.
const (
	allOrdersTemplate      = "/api/Orders"
	orderByIDTemplate      = "/api/Orders/{ORDER}"
	orderProductsTemplate  = "/api/Orders/{ORDER}/products"
	orderProductByTemplate = "/api/Orders/{ORDER}/products/{PRODUCT}"
)

// IDataClient is the full surface against the orders backend. GET
// operations decode JSON; every other verb hands back the raw response
// body, and callers that need post-mutation state must re-fetch.
type IDataClient interface {
	FetchAllOrders(context.Context) ([]model.Order, error)
	FetchOrderByID(context.Context, string) (model.Order, error)
	FetchOrderProductsByID(context.Context, string) ([]model.Product, error)
	CreateOrder(context.Context, model.OrderInput) (string, error)
	UpdateOrder(context.Context, string, model.ShipToUpdate) (string, error)
	CreateProduct(context.Context, string, model.ProductInput) (string, error)
	DeleteOrder(context.Context, string) (string, error)
	DeleteProduct(context.Context, string, string) (string, error)
}

type DataClient struct {
	client *http.Client
	logger *zap.SugaredLogger
	url    string
}

func NewDataClient(url string, logger *zap.SugaredLogger) *DataClient {
	return &DataClient{client: &http.Client{}, logger: logger, url: url}
}

func (d *DataClient) FetchAllOrders(ctx context.Context) ([]model.Order, error) {
	body, err := d.getData(ctx, allOrdersTemplate)
	if err != nil {
		return nil, err
	}

	var orders []model.Order
	err = json.Unmarshal(body, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (d *DataClient) FetchOrderByID(ctx context.Context, orderID string) (model.Order, error) {
	body, err := d.getData(ctx, orderPath(orderByIDTemplate, orderID))
	if err != nil {
		return model.Order{}, err
	}

	var order model.Order
	err = json.Unmarshal(body, &order)
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (d *DataClient) FetchOrderProductsByID(ctx context.Context, orderID string) ([]model.Product, error) {
	body, err := d.getData(ctx, orderPath(orderProductsTemplate, orderID))
	if err != nil {
		return nil, err
	}

	var products []model.Product
	err = json.Unmarshal(body, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (d *DataClient) CreateOrder(ctx context.Context, input model.OrderInput) (string, error) {
	return d.sendData(ctx, http.MethodPost, allOrdersTemplate, input)
}

func (d *DataClient) UpdateOrder(ctx context.Context, orderID string, update model.ShipToUpdate) (string, error) {
	return d.sendData(ctx, http.MethodPut, orderPath(orderByIDTemplate, orderID), update)
}

func (d *DataClient) CreateProduct(ctx context.Context, orderID string, input model.ProductInput) (string, error) {
	return d.sendData(ctx, http.MethodPost, orderPath(orderProductsTemplate, orderID), input)
}

func (d *DataClient) DeleteOrder(ctx context.Context, orderID string) (string, error) {
	return d.sendData(ctx, http.MethodDelete, orderPath(orderByIDTemplate, orderID), nil)
}

func (d *DataClient) DeleteProduct(ctx context.Context, orderID, productID string) (string, error) {
	path := strings.Replace(orderProductByTemplate, "{ORDER}", orderID, 1)
	path = strings.Replace(path, "{PRODUCT}", productID, 1)
	return d.sendData(ctx, http.MethodDelete, path, nil)
}

// getData performs a GET and returns the body for JSON decoding.
func (d *DataClient) getData(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url+path, nil)
	if err != nil {
		return nil, err
	}

	return d.executeRequest(req)
}

// sendData performs a mutating request and returns the raw response
// body. No parsing happens here; the caller re-fetches for state.
func (d *DataClient) sendData(ctx context.Context, method, path string, payload interface{}) (string, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return "", err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, d.url+path, reqBody)
	if err != nil {
		return "", err
	}

	body, err := d.executeRequest(req)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (d *DataClient) executeRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("Content-Type", contentTypeJSON)

	res, err := d.client.Do(req)
	if err != nil {
		d.logger.Errorf("%s %s: %s", req.Method, req.URL.Path, err.Error())
		return nil, fmt.Errorf("%w: %s", ErrNetwork, err.Error())
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNetwork, err.Error())
	}

	if res.StatusCode >= http.StatusBadRequest {
		return nil, &HTTPError{Status: res.StatusCode, StatusText: res.Status}
	}

	return buf.Bytes(), nil
}

func orderPath(template, orderID string) string {
	return strings.Replace(template, "{ORDER}", orderID, 1)
}
