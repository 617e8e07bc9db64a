package domain

import (
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cast"
)

// Defaults - настройки по умолчанию для построителей запросов.
// Передаются явно из конфигурации, построители не читают глобальное состояние.
type Defaults struct {
	Currency string
	Language string
	Version  string
}

// SearchCriteria - построитель запроса поиска маршрутов (get_routes).
// Методы-мутаторы возвращают тот же экземпляр и допускают цепочки вызовов.
// Values() - чистая проекция: без промежуточных мутаций повторный вызов
// возвращает идентичный набор параметров.
type SearchCriteria struct {
	date            string
	fromCityID      *int64
	toCityID        *int64
	trainFromID     *int64
	trainToID       *int64
	iataFromCode    string
	iataToCode      string
	stationFromID   *int64
	stationToID     *int64
	transport       string
	currency        string
	language        string
	change          string
	period          int
	sortType        string
	getAllDeparture int
	version         string
	extraParams     map[string]string
	extraKeys       []string
}

func NewSearchCriteria(defaults Defaults) *SearchCriteria {
	return &SearchCriteria{
		date:        time.Now().Format("2006-01-02"),
		transport:   "all",
		currency:    defaults.Currency,
		language:    defaults.Language,
		change:      "auto",
		sortType:    "time",
		version:     defaults.Version,
		extraParams: make(map[string]string),
	}
}

func (c *SearchCriteria) Date(date string) *SearchCriteria {
	c.date = date
	return c
}

func (c *SearchCriteria) From(cityID int64) *SearchCriteria {
	c.fromCityID = &cityID
	return c
}

func (c *SearchCriteria) To(cityID int64) *SearchCriteria {
	c.toCityID = &cityID
	return c
}

func (c *SearchCriteria) TrainFrom(stationID int64) *SearchCriteria {
	c.trainFromID = &stationID
	return c
}

func (c *SearchCriteria) TrainTo(stationID int64) *SearchCriteria {
	c.trainToID = &stationID
	return c
}

func (c *SearchCriteria) AirportFrom(iataCode string) *SearchCriteria {
	c.iataFromCode = iataCode
	return c
}

func (c *SearchCriteria) AirportTo(iataCode string) *SearchCriteria {
	c.iataToCode = iataCode
	return c
}

func (c *SearchCriteria) StationFrom(stationID int64) *SearchCriteria {
	c.stationFromID = &stationID
	return c
}

func (c *SearchCriteria) StationTo(stationID int64) *SearchCriteria {
	c.stationToID = &stationID
	return c
}

func (c *SearchCriteria) Transport(transport string) *SearchCriteria {
	c.transport = transport
	return c
}

func (c *SearchCriteria) Bus() *SearchCriteria {
	c.transport = "bus"
	return c
}

func (c *SearchCriteria) Train() *SearchCriteria {
	c.transport = "train"
	return c
}

func (c *SearchCriteria) Air() *SearchCriteria {
	c.transport = "air"
	return c
}

func (c *SearchCriteria) Currency(currency string) *SearchCriteria {
	c.currency = currency
	return c
}

func (c *SearchCriteria) Language(language string) *SearchCriteria {
	c.language = language
	return c
}

// AllowTransfers - политика пересадок: "auto", "0" или число пересадок
func (c *SearchCriteria) AllowTransfers(change string) *SearchCriteria {
	c.change = change
	return c
}

func (c *SearchCriteria) DirectOnly() *SearchCriteria {
	c.change = "0"
	return c
}

// Period задает окно поиска в днях относительно даты.
// Значения вне диапазона [-3, 14] молча приводятся к границе.
func (c *SearchCriteria) Period(days int) *SearchCriteria {
	if days < -3 {
		days = -3
	}
	if days > 14 {
		days = 14
	}
	c.period = days
	return c
}

// SortBy принимает только "time" и "price"; всё остальное откатывается к "time".
func (c *SearchCriteria) SortBy(sortType string) *SearchCriteria {
	if sortType != "time" && sortType != "price" {
		sortType = "time"
	}
	c.sortType = sortType
	return c
}

func (c *SearchCriteria) SortByTime() *SearchCriteria {
	c.sortType = "time"
	return c
}

func (c *SearchCriteria) SortByPrice() *SearchCriteria {
	c.sortType = "price"
	return c
}

func (c *SearchCriteria) IncludeSoldOut(include bool) *SearchCriteria {
	if include {
		c.getAllDeparture = 1
	} else {
		c.getAllDeparture = 0
	}
	return c
}

// AddParam добавляет произвольный параметр запроса. Параметры добавляются
// при проекции последними и при совпадении ключей перекрывают канонические
// поля - это задокументированное поведение, а не ошибка.
func (c *SearchCriteria) AddParam(key string, value interface{}) *SearchCriteria {
	if _, exists := c.extraParams[key]; !exists {
		c.extraKeys = append(c.extraKeys, key)
	}
	c.extraParams[key] = cast.ToString(value)
	return c
}

// AirPassengers - количество пассажиров для авиапоиска
func (c *SearchCriteria) AirPassengers(adults, children, infants int) *SearchCriteria {
	c.AddParam("adt", adults)
	c.AddParam("chd", children)
	c.AddParam("inf", infants)
	return c
}

func (c *SearchCriteria) AirServiceClass(class string) *SearchCriteria {
	return c.AddParam("service_class", class)
}

func (c *SearchCriteria) AirDirect(direct bool) *SearchCriteria {
	if direct {
		return c.AddParam("direct", 1)
	}
	return c.AddParam("direct", 0)
}

func (c *SearchCriteria) AirBaggage(includeBaggage bool) *SearchCriteria {
	if includeBaggage {
		return c.AddParam("baggage_no", 0)
	}
	return c.AddParam("baggage_no", 1)
}

// Values проецирует критерии в параметры формы get_routes.
func (c *SearchCriteria) Values() url.Values {
	params := url.Values{}
	params.Set("date", c.date)
	params.Set("trans", c.transport)
	params.Set("currency", c.currency)
	params.Set("lang", c.language)
	params.Set("change", c.change)
	params.Set("period", strconv.Itoa(c.period))
	params.Set("sort_type", c.sortType)
	params.Set("get_all_departure", strconv.Itoa(c.getAllDeparture))
	params.Set("v", c.version)

	// Параметры пунктов отправления/прибытия зависят от вида транспорта
	if c.fromCityID != nil {
		params.Set("id_from", strconv.FormatInt(*c.fromCityID, 10))
	}
	if c.toCityID != nil {
		params.Set("id_to", strconv.FormatInt(*c.toCityID, 10))
	}
	if c.trainFromID != nil {
		params.Set("point_train_from_id", strconv.FormatInt(*c.trainFromID, 10))
	}
	if c.trainToID != nil {
		params.Set("point_train_to_id", strconv.FormatInt(*c.trainToID, 10))
	}
	if c.iataFromCode != "" {
		params.Set("id_iata_from", c.iataFromCode)
	}
	if c.iataToCode != "" {
		params.Set("id_iata_to", c.iataToCode)
	}
	if c.stationFromID != nil {
		params.Set("station_id_from", strconv.FormatInt(*c.stationFromID, 10))
	}
	if c.stationToID != nil {
		params.Set("station_id_to", strconv.FormatInt(*c.stationToID, 10))
	}

	for _, key := range c.extraKeys {
		params.Set(key, c.extraParams[key])
	}

	return params
}
