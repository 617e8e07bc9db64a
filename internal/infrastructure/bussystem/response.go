package bussystem

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"github.com/bussystem-service/internal/domain/repository"
	"github.com/bussystem-service/internal/pkg/errors"
)

// parseResponse нормализует тело ответа провайдера. Сначала строгий JSON,
// при неудаче - XML, приведенный к той же структуре. Если не подошло ни то,
// ни другое - ошибка разбора.
func parseResponse(body []byte) (repository.Response, error) {
	var decoded interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&decoded); err == nil {
		switch v := decoded.(type) {
		case map[string]interface{}:
			return v, nil
		case []interface{}:
			// Списочные ответы (get_points и прочие) приходят массивом
			return repository.Response{"items": v}, nil
		}
	}

	if data, err := xmlToMap(body); err == nil {
		return data, nil
	}

	return nil, errors.ParseError("unable to parse API response")
}

// xmlToMap разбирает XML-документ в ту же структуру, что и JSON-ответ:
// вложенные элементы становятся вложенными map, повторяющиеся имена
// собираются в срезы, текстовое содержимое - строки. Возвращается
// содержимое корневого элемента, сам корень отбрасывается.
func xmlToMap(body []byte) (map[string]interface{}, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			value, err := decodeElement(dec, start)
			if err != nil {
				return nil, err
			}
			if m, ok := value.(map[string]interface{}); ok {
				return m, nil
			}
			return map[string]interface{}{start.Name.Local: value}, nil
		}
	}
}

// decodeElement читает один элемент целиком. Элемент без дочерних узлов
// превращается в строку, элемент с детьми - в map.
func decodeElement(dec *xml.Decoder, start xml.StartElement) (interface{}, error) {
	children := make(map[string]interface{})
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			value, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			appendChild(children, t.Name.Local, value)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(children) > 0 {
				return children, nil
			}
			return strings.TrimSpace(text.String()), nil
		}
	}
}

// appendChild складывает повторяющиеся элементы в срез
func appendChild(parent map[string]interface{}, name string, value interface{}) {
	existing, ok := parent[name]
	if !ok {
		parent[name] = value
		return
	}
	if list, ok := existing.([]interface{}); ok {
		parent[name] = append(list, value)
		return
	}
	parent[name] = []interface{}{existing, value}
}
