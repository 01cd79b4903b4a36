package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// scanJSON разбирает значение JSONB-колонки в dst. NULL оставляет dst нетронутым.
func scanJSON(src interface{}, dst interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("неподдерживаемый тип для JSONB: %T", src)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

func valueJSON(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Activities хранится в колонке JSONB.
type Activities []Activity

func (a *Activities) Scan(src interface{}) error { return scanJSON(src, a) }

func (a Activities) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return valueJSON([]Activity(a))
}

// LocalPhrases хранится в колонке JSONB.
type LocalPhrases []LocalPhrase

func (p *LocalPhrases) Scan(src interface{}) error { return scanJSON(src, p) }

func (p LocalPhrases) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return valueJSON([]LocalPhrase(p))
}

// Itineraries хранится в колонке JSONB.
type Itineraries []Itinerary

func (it *Itineraries) Scan(src interface{}) error { return scanJSON(src, it) }

func (it Itineraries) Value() (driver.Value, error) {
	if it == nil {
		return "[]", nil
	}
	return valueJSON([]Itinerary(it))
}

// Amenities хранится в колонке JSONB.
type Amenities []Amenity

func (a *Amenities) Scan(src interface{}) error { return scanJSON(src, a) }

func (a Amenities) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return valueJSON([]Amenity(a))
}

func (b *BestTimeToVisit) Scan(src interface{}) error { return scanJSON(src, b) }

func (b BestTimeToVisit) Value() (driver.Value, error) { return valueJSON(b) }

func (c *ContactInfo) Scan(src interface{}) error { return scanJSON(src, c) }

func (c ContactInfo) Value() (driver.Value, error) { return valueJSON(c) }
