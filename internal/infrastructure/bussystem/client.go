package bussystem

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bussystem-service/internal/config"
	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/domain/repository"
	"github.com/bussystem-service/internal/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Конечные точки API BusSystem
const (
	EndpointGetPoints         = "get_points"
	EndpointGetRoutes         = "get_routes"
	EndpointGetAllRoutes      = "get_all_routes"
	EndpointGetFreeSeats      = "get_free_seats"
	EndpointGetPlan           = "get_plan"
	EndpointGetDiscount       = "get_discount"
	EndpointGetBaggage        = "get_baggage"
	EndpointNewOrder          = "new_order"
	EndpointBuyTicket         = "buy_ticket"
	EndpointCancelTicket      = "cancel_ticket"
	EndpointGetOrder          = "get_order"
	EndpointGetTicket         = "get_ticket"
	EndpointReserveTicket     = "reserve_ticket"
	EndpointReserveValidation = "reserve_validation"
	EndpointSMSValidation     = "sms_validation"
	EndpointPing              = "ping"
)

// cacheCategories - категории кеширования для идемпотентных конечных точек.
// TTL подбирается по категории из конфигурации.
var cacheCategories = map[string]string{
	EndpointGetPoints: "points",
	EndpointGetRoutes: "routes",
	EndpointGetPlan:   "plans",
}

// idempotentEndpoints - конечные точки, которые безопасно повторять при
// сетевых сбоях. Мутирующие операции (создание заказа, покупка, отмена)
// не повторяются никогда: у провайдера нет ключей идемпотентности.
var idempotentEndpoints = map[string]bool{
	EndpointGetPoints:    true,
	EndpointGetRoutes:    true,
	EndpointGetAllRoutes: true,
	EndpointGetFreeSeats: true,
	EndpointGetPlan:      true,
	EndpointGetDiscount:  true,
	EndpointGetBaggage:   true,
	EndpointPing:         true,
}

type client struct {
	httpClient     *http.Client
	baseURL        string
	login          string
	password       string
	partnerID      string
	version        string
	responseFormat string
	retryAttempts  int
	retryDelay     time.Duration

	cache    repository.CacheRepository
	cacheCfg config.CacheConfig

	logger *zap.Logger
}

// NewClient создает новый клиент API BusSystem. Кеш необязателен:
// при nil или выключенном флаге все запросы идут напрямую к провайдеру.
func NewClient(
	cfg *config.BusSystemConfig,
	cacheCfg config.CacheConfig,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) repository.BusSystemRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.APIURL, "/"),
		login:          cfg.Login,
		password:       cfg.Password,
		partnerID:      cfg.PartnerID,
		version:        cfg.Version,
		responseFormat: cfg.ResponseFormat,
		retryAttempts:  cfg.RetryAttempts,
		retryDelay:     cfg.RetryDelay,
		cache:          cacheRepo,
		cacheCfg:       cacheCfg,
		logger:         logger,
	}
}

func (c *client) Ping(ctx context.Context) (repository.Response, error) {
	return c.request(ctx, EndpointPing, url.Values{})
}

func (c *client) GetPoints(ctx context.Context, params url.Values) (repository.Response, error) {
	return c.request(ctx, EndpointGetPoints, params)
}

func (c *client) GetRoutes(ctx context.Context, criteria *domain.SearchCriteria) (repository.Response, error) {
	return c.request(ctx, EndpointGetRoutes, criteria.Values())
}

func (c *client) GetAllRoutes(ctx context.Context, timetableID, language string) (repository.Response, error) {
	params := url.Values{}
	params.Set("timetable_id", timetableID)
	params.Set("lang", language)
	return c.request(ctx, EndpointGetAllRoutes, params)
}

func (c *client) GetFreeSeats(ctx context.Context, intervalID string, params url.Values) (repository.Response, error) {
	params = cloneValues(params)
	params.Set("interval_id", intervalID)
	return c.request(ctx, EndpointGetFreeSeats, params)
}

func (c *client) GetSeatPlan(ctx context.Context, params url.Values) (repository.Response, error) {
	return c.request(ctx, EndpointGetPlan, params)
}

func (c *client) GetDiscounts(ctx context.Context, intervalID string, params url.Values) (repository.Response, error) {
	params = cloneValues(params)
	params.Set("interval_id", intervalID)
	return c.request(ctx, EndpointGetDiscount, params)
}

func (c *client) GetBaggage(ctx context.Context, intervalID string, params url.Values) (repository.Response, error) {
	params = cloneValues(params)
	params.Set("interval_id", intervalID)
	return c.request(ctx, EndpointGetBaggage, params)
}

func (c *client) CreateOrder(ctx context.Context, booking *domain.BookingData) (repository.Response, error) {
	return c.request(ctx, EndpointNewOrder, booking.Values())
}

func (c *client) ReserveTickets(ctx context.Context, orderID int64, params url.Values) (repository.Response, error) {
	params = cloneValues(params)
	params.Set("order_id", strconv.FormatInt(orderID, 10))
	params.Set("v", c.version)
	return c.request(ctx, EndpointReserveTicket, params)
}

func (c *client) BuyTickets(ctx context.Context, orderID int64, language string) (repository.Response, error) {
	params := url.Values{}
	params.Set("order_id", strconv.FormatInt(orderID, 10))
	params.Set("lang", language)
	params.Set("v", c.version)
	return c.request(ctx, EndpointBuyTicket, params)
}

func (c *client) CancelTickets(ctx context.Context, params url.Values) (repository.Response, error) {
	params = cloneValues(params)
	params.Set("v", c.version)
	return c.request(ctx, EndpointCancelTicket, params)
}

func (c *client) GetOrder(ctx context.Context, orderID int64, security, language string) (repository.Response, error) {
	params := url.Values{}
	params.Set("order_id", strconv.FormatInt(orderID, 10))
	params.Set("lang", language)
	if security != "" {
		params.Set("security", security)
	}
	return c.request(ctx, EndpointGetOrder, params)
}

func (c *client) GetTicket(ctx context.Context, params url.Values) (repository.Response, error) {
	return c.request(ctx, EndpointGetTicket, params)
}

func (c *client) ValidateReservation(ctx context.Context, phone, language string) (repository.Response, error) {
	params := url.Values{}
	params.Set("phone", phone)
	params.Set("lang", language)
	params.Set("v", c.version)
	return c.request(ctx, EndpointReserveValidation, params)
}

func (c *client) ValidateSMS(ctx context.Context, params url.Values) (repository.Response, error) {
	params = cloneValues(params)
	params.Set("v", c.version)
	return c.request(ctx, EndpointSMSValidation, params)
}

// request - общий протокол диспетчеризации: учетные данные, кеш,
// HTTP POST, разбор ответа, классификация ошибок провайдера.
func (c *client) request(ctx context.Context, endpoint string, params url.Values) (repository.Response, error) {
	merged := cloneValues(params)
	merged.Set("login", c.login)
	merged.Set("password", c.password)
	if c.partnerID != "" {
		merged.Set("partner", c.partnerID)
	}

	cacheKey := c.cacheKey(endpoint, merged)
	if cacheKey != "" {
		if data, err := c.cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached repository.Response
			if err := json.Unmarshal(data, &cached); err == nil {
				c.logger.Debug("BusSystem cache hit", zap.String("endpoint", endpoint))
				return cached, nil
			}
		}
	}

	result, err := c.dispatch(ctx, endpoint, merged)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		if data, err := json.Marshal(result); err == nil {
			if err := c.cache.Set(ctx, cacheKey, data, c.cacheTTL(endpoint)); err != nil {
				c.logger.Warn("Failed to cache BusSystem response",
					zap.String("endpoint", endpoint), zap.Error(err))
			}
		}
	}

	return result, nil
}

// dispatch выполняет исходящий запрос, для идемпотентных конечных точек -
// с повторами при сетевых сбоях.
func (c *client) dispatch(ctx context.Context, endpoint string, params url.Values) (repository.Response, error) {
	attempts := 1
	if idempotentEndpoints[endpoint] && c.retryAttempts > 1 {
		attempts = c.retryAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := c.doRequest(ctx, endpoint, params)
		if err == nil {
			return result, nil
		}
		lastErr = err

		provErr, ok := err.(*errors.ProviderError)
		if !ok || provErr.Kind != errors.KindTransport || attempt == attempts {
			return nil, err
		}

		c.logger.Warn("BusSystem request failed, retrying",
			zap.String("endpoint", endpoint),
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, errors.TransportError(ctx.Err())
		case <-time.After(c.retryDelay):
		}
	}

	return nil, lastErr
}

func (c *client) doRequest(ctx context.Context, endpoint string, params url.Values) (repository.Response, error) {
	requestURL := fmt.Sprintf("%s/curl/%s.php", c.baseURL, endpoint)

	c.logger.Debug("BusSystem API request",
		zap.String("endpoint", endpoint),
		zap.Any("parameters", sanitizeParams(params)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, errors.TransportError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.responseFormat == "json" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("BusSystem API request failed",
			zap.String("endpoint", endpoint), zap.Error(err))
		return nil, errors.TransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read BusSystem response",
			zap.String("endpoint", endpoint), zap.Error(err))
		return nil, errors.TransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("BusSystem API returned HTTP error",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode))
		return nil, errors.TransportError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := parseResponse(body)
	if err != nil {
		c.logger.Error("Failed to parse BusSystem response",
			zap.String("endpoint", endpoint),
			zap.Int("body_size", len(body)))
		return nil, err
	}

	if code, ok := data["error"]; ok {
		provErr := errors.FromProviderCode(cast.ToString(code), cast.ToString(data["detail"]))
		c.logger.Error("BusSystem API returned error",
			zap.String("endpoint", endpoint),
			zap.String("code", provErr.Code),
			zap.String("kind", string(provErr.Kind)))
		return nil, provErr
	}

	c.logger.Debug("BusSystem API response",
		zap.String("endpoint", endpoint),
		zap.Int("response_size", len(data)))

	return data, nil
}

// cacheKey возвращает ключ кеша или пустую строку, если конечная точка
// не кешируется. url.Values.Encode сортирует ключи, поэтому сериализация
// детерминирована.
func (c *client) cacheKey(endpoint string, params url.Values) string {
	category, ok := cacheCategories[endpoint]
	if !ok || !c.cacheCfg.Enabled || c.cache == nil {
		return ""
	}
	hash := md5.Sum([]byte(params.Encode()))
	return fmt.Sprintf("%s:%s:%s", c.cacheCfg.Prefix, category, hex.EncodeToString(hash[:]))
}

func (c *client) cacheTTL(endpoint string) time.Duration {
	switch cacheCategories[endpoint] {
	case "points":
		return c.cacheCfg.PointsTTL
	case "routes":
		return c.cacheCfg.RoutesTTL
	case "plans":
		return c.cacheCfg.PlansTTL
	default:
		return 0
	}
}

func cloneValues(params url.Values) url.Values {
	cloned := make(url.Values, len(params))
	for key, values := range params {
		cloned[key] = append([]string(nil), values...)
	}
	return cloned
}

// sanitizeParams убирает учетные данные из параметров перед логированием
func sanitizeParams(params url.Values) map[string]string {
	sanitized := make(map[string]string, len(params))
	for key := range params {
		if key == "login" || key == "password" {
			continue
		}
		sanitized[key] = params.Get(key)
	}
	return sanitized
}
