// Package models содержит бизнес-сущности экспортера: показания счётчика и обновления gauge.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrUpstreamUnreachable = errors.New("upstream unreachable")
	ErrUpstreamDecode      = errors.New("upstream response decode error")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// ValueKind различает числовые и прочие значения измерения.
type ValueKind int

const (
	KindOther ValueKind = iota
	KindNumber
)

// MeasurementValue хранит значение измерения как есть: число или что-то другое
// (строка статуса, объект, null).
type MeasurementValue struct {
	Number json.Number
	Kind   ValueKind
}

// NumberValue builds a numeric value, mostly for tests.
func NumberValue(n string) MeasurementValue {
	return MeasurementValue{Kind: KindNumber, Number: json.Number(n)}
}

func (v *MeasurementValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if n, ok := raw.(json.Number); ok {
		v.Kind = KindNumber
		v.Number = n
		return nil
	}
	v.Kind = KindOther
	v.Number = ""
	return nil
}

// RawMeasurement - одно показание из ответа data logger'а.
type RawMeasurement struct {
	Unit  *string          `json:"unit,omitempty"`
	Name  string           `json:"name"`
	Value MeasurementValue `json:"value"`
}

// Batch - все показания одного запроса к data logger'у.
type Batch []RawMeasurement

// ActualResponse is the body of GET /api/v1/sm/actual.
type ActualResponse struct {
	Actual *Batch `json:"actual"`
}

// GaugeUpdate - значение, которое нужно записать в gauge с указанным именем.
type GaugeUpdate struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ScrapeResult - результат одного scrape.
type ScrapeResult struct {
	Body      string
	Applied   int
	Discarded int
	Stale     bool
}
