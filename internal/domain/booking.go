package domain

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// Passenger - данные одного пассажира для бронирования.
// MiddleName, Citizenship и DocExpireDate необязательны: пустая строка
// означает, что поле не передается провайдеру вовсе.
type Passenger struct {
	Name          string
	Surname       string
	BirthDate     string
	DocType       int
	DocNumber     string
	Gender        string
	MiddleName    string
	Citizenship   string
	DocExpireDate string
}

// BookingData - построитель запроса создания заказа (new_order).
//
// Заказ состоит из упорядоченного списка сегментов (рейсов) и списка
// пассажиров. Места и вагоны привязываются к индексу сегмента, скидки и
// багаж - к паре (сегмент, пассажир). Values() выдает только заполненные
// поля: отсутствие вызова построителя означает отсутствие ключа.
type BookingData struct {
	dates       []string
	intervalIDs []string
	stationFrom []*int64
	stationTo   []*int64
	passengers  []Passenger
	seats       map[int][]string
	wagonIDs    map[int]string
	discounts   map[int]map[int]string
	baggage     map[int]map[int][]string

	phone     string
	phone2    string
	email     string
	info      string
	promocode string

	currency string
	language string
	version  string

	// alignOptional управляет проекцией необязательных полей пассажиров и
	// станций сегментов. В режиме совместимости (по умолчанию) массивы
	// уплотняются и теряют позиционное соответствие, как это исторически
	// делает провайдерский протокол. В выровненном режиме индекс ключа
	// совпадает с позицией пассажира/сегмента.
	alignOptional bool
}

func NewBookingData(defaults Defaults) *BookingData {
	return &BookingData{
		seats:     make(map[int][]string),
		wagonIDs:  make(map[int]string),
		discounts: make(map[int]map[int]string),
		baggage:   make(map[int]map[int][]string),
		currency:  defaults.Currency,
		language:  defaults.Language,
		version:   defaults.Version,
	}
}

// AddRoute добавляет сегмент поездки. Идентификаторы станций необязательны
// (актуальны для рейсов с посадкой на конкретной станции).
func (b *BookingData) AddRoute(date, intervalID string) *BookingData {
	b.dates = append(b.dates, date)
	b.intervalIDs = append(b.intervalIDs, intervalID)
	b.stationFrom = append(b.stationFrom, nil)
	b.stationTo = append(b.stationTo, nil)
	return b
}

// AddRouteWithStations добавляет сегмент с явными станциями отправления и прибытия.
func (b *BookingData) AddRouteWithStations(date, intervalID string, stationFromID, stationToID int64) *BookingData {
	b.dates = append(b.dates, date)
	b.intervalIDs = append(b.intervalIDs, intervalID)
	b.stationFrom = append(b.stationFrom, &stationFromID)
	b.stationTo = append(b.stationTo, &stationToID)
	return b
}

func (b *BookingData) AddPassenger(p Passenger) *BookingData {
	if p.DocType == 0 {
		p.DocType = 1
	}
	if p.Gender == "" {
		p.Gender = "M"
	}
	b.passengers = append(b.passengers, p)
	return b
}

// AddSeats задает места для сегмента целиком
func (b *BookingData) AddSeats(routeIndex int, seats []string) *BookingData {
	b.seats[routeIndex] = seats
	return b
}

// AddSeat добавляет одно место к сегменту
func (b *BookingData) AddSeat(routeIndex int, seat string) *BookingData {
	b.seats[routeIndex] = append(b.seats[routeIndex], seat)
	return b
}

func (b *BookingData) AddDiscount(routeIndex, passengerIndex int, discountID string) *BookingData {
	if b.discounts[routeIndex] == nil {
		b.discounts[routeIndex] = make(map[int]string)
	}
	b.discounts[routeIndex][passengerIndex] = discountID
	return b
}

func (b *BookingData) AddBaggage(routeIndex, passengerIndex int, baggageIDs []string) *BookingData {
	if b.baggage[routeIndex] == nil {
		b.baggage[routeIndex] = make(map[int][]string)
	}
	b.baggage[routeIndex][passengerIndex] = baggageIDs
	return b
}

// AddWagon - номер вагона для железнодорожного сегмента
func (b *BookingData) AddWagon(routeIndex int, wagonID string) *BookingData {
	b.wagonIDs[routeIndex] = wagonID
	return b
}

func (b *BookingData) SetContactInfo(phone, email, phone2 string) *BookingData {
	b.phone = phone
	b.email = email
	b.phone2 = phone2
	return b
}

func (b *BookingData) SetAdditionalInfo(info string) *BookingData {
	b.info = info
	return b
}

func (b *BookingData) SetPromocode(promocode string) *BookingData {
	b.promocode = promocode
	return b
}

func (b *BookingData) SetCurrency(currency string) *BookingData {
	b.currency = currency
	return b
}

func (b *BookingData) SetLanguage(language string) *BookingData {
	b.language = language
	return b
}

// AlignOptionalFields включает проекцию необязательных полей по истинным
// индексам вместо исторического уплотнения массивов.
func (b *BookingData) AlignOptionalFields(aligned bool) *BookingData {
	b.alignOptional = aligned
	return b
}

func (b *BookingData) RouteCount() int {
	return len(b.intervalIDs)
}

func (b *BookingData) PassengerCount() int {
	return len(b.passengers)
}

// Validate возвращает список нарушений в виде строк. Список носит
// рекомендательный характер: Values() можно вызвать и отправить запрос
// несмотря на нарушения, финальное слово остается за провайдером.
func (b *BookingData) Validate() []string {
	var violations []string

	if len(b.intervalIDs) == 0 {
		violations = append(violations, "At least one route must be specified")
	}

	if len(b.passengers) == 0 {
		violations = append(violations, "At least one passenger must be specified")
	}

	if len(b.dates) != len(b.intervalIDs) {
		violations = append(violations, "Number of dates must match number of interval IDs")
	}

	for i, p := range b.passengers {
		if p.Name == "" {
			violations = append(violations, fmt.Sprintf("Passenger %d: First name is required", i))
		}
		if p.Surname == "" {
			violations = append(violations, fmt.Sprintf("Passenger %d: Last name is required", i))
		}
		if p.BirthDate == "" {
			violations = append(violations, fmt.Sprintf("Passenger %d: Birth date is required", i))
		}
	}

	if b.phone == "" {
		violations = append(violations, "Phone number is required")
	}

	violations = append(violations, b.validateIndexes()...)

	return violations
}

// validateIndexes проверяет, что индексы разреженных привязок (места, вагоны,
// скидки, багаж) указывают на существующие сегменты и пассажиров.
func (b *BookingData) validateIndexes() []string {
	var violations []string
	routes := len(b.intervalIDs)
	passengers := len(b.passengers)

	for _, ri := range sortedKeys(b.seats) {
		if ri < 0 || ri >= routes {
			violations = append(violations, fmt.Sprintf("Seat selection references route %d which does not exist", ri))
		}
	}

	for _, ri := range sortedKeys(b.wagonIDs) {
		if ri < 0 || ri >= routes {
			violations = append(violations, fmt.Sprintf("Wagon selection references route %d which does not exist", ri))
		}
	}

	for _, ri := range sortedKeys(b.discounts) {
		if ri < 0 || ri >= routes {
			violations = append(violations, fmt.Sprintf("Discount references route %d which does not exist", ri))
			continue
		}
		for _, pi := range sortedKeys(b.discounts[ri]) {
			if pi < 0 || pi >= passengers {
				violations = append(violations, fmt.Sprintf("Discount on route %d references passenger %d who does not exist", ri, pi))
			}
		}
	}

	for _, ri := range sortedKeys(b.baggage) {
		if ri < 0 || ri >= routes {
			violations = append(violations, fmt.Sprintf("Baggage references route %d which does not exist", ri))
			continue
		}
		for _, pi := range sortedKeys(b.baggage[ri]) {
			if pi < 0 || pi >= passengers {
				violations = append(violations, fmt.Sprintf("Baggage on route %d references passenger %d who does not exist", ri, pi))
			}
		}
	}

	return violations
}

// Values проецирует бронирование в параметры формы new_order.
// Коррелированные массивы кодируются индексированными ключами в стиле
// провайдера: date[0], seat[0][1], discount_id[0][1], baggage[0][1][0].
func (b *BookingData) Values() url.Values {
	params := url.Values{}
	params.Set("v", b.version)
	params.Set("currency", b.currency)
	params.Set("lang", b.language)

	for i, date := range b.dates {
		params.Set(fmt.Sprintf("date[%d]", i), date)
	}
	for i, id := range b.intervalIDs {
		params.Set(fmt.Sprintf("interval_id[%d]", i), id)
	}

	b.projectStations(params, "station_from_id", b.stationFrom)
	b.projectStations(params, "station_to_id", b.stationTo)

	for _, ri := range sortedKeys(b.seats) {
		for j, seat := range b.seats[ri] {
			params.Set(fmt.Sprintf("seat[%d][%d]", ri, j), seat)
		}
	}

	for _, ri := range sortedKeys(b.wagonIDs) {
		params.Set(fmt.Sprintf("vagon_id[%d]", ri), b.wagonIDs[ri])
	}

	for i, p := range b.passengers {
		params.Set(fmt.Sprintf("name[%d]", i), p.Name)
		params.Set(fmt.Sprintf("surname[%d]", i), p.Surname)
		params.Set(fmt.Sprintf("birth_date[%d]", i), p.BirthDate)
		params.Set(fmt.Sprintf("doc_type[%d]", i), strconv.Itoa(p.DocType))
		params.Set(fmt.Sprintf("doc_number[%d]", i), p.DocNumber)
		params.Set(fmt.Sprintf("gender[%d]", i), p.Gender)
	}

	b.projectOptional(params, "middlename", func(p Passenger) string { return p.MiddleName })
	b.projectOptional(params, "citizenship", func(p Passenger) string { return p.Citizenship })
	b.projectOptional(params, "doc_expire_date", func(p Passenger) string { return p.DocExpireDate })

	for _, ri := range sortedKeys(b.discounts) {
		for _, pi := range sortedKeys(b.discounts[ri]) {
			params.Set(fmt.Sprintf("discount_id[%d][%d]", ri, pi), b.discounts[ri][pi])
		}
	}

	for _, ri := range sortedKeys(b.baggage) {
		for _, pi := range sortedKeys(b.baggage[ri]) {
			for k, id := range b.baggage[ri][pi] {
				params.Set(fmt.Sprintf("baggage[%d][%d][%d]", ri, pi, k), id)
			}
		}
	}

	if b.phone != "" {
		params.Set("phone", b.phone)
	}
	if b.email != "" {
		params.Set("email", b.email)
	}
	if b.phone2 != "" {
		params.Set("phone2", b.phone2)
	}
	if b.info != "" {
		params.Set("info", b.info)
	}
	if b.promocode != "" {
		params.Set("promocode_name", b.promocode)
	}

	return params
}

// projectStations выдает идентификаторы станций для сегментов, где они заданы.
// В режиме совместимости индексы уплотняются и не совпадают с индексами
// сегментов, если станции указаны не у всех.
func (b *BookingData) projectStations(params url.Values, field string, ids []*int64) {
	out := 0
	for i, id := range ids {
		if id == nil {
			continue
		}
		idx := out
		if b.alignOptional {
			idx = i
		}
		params.Set(fmt.Sprintf("%s[%d]", field, idx), strconv.FormatInt(*id, 10))
		out++
	}
}

func (b *BookingData) projectOptional(params url.Values, field string, value func(Passenger) string) {
	out := 0
	for i, p := range b.passengers {
		v := value(p)
		if v == "" {
			continue
		}
		idx := out
		if b.alignOptional {
			idx = i
		}
		params.Set(fmt.Sprintf("%s[%d]", field, idx), v)
		out++
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
