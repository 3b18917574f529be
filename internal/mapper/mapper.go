// Package mapper превращает показания data logger'а в обновления gauge.
package mapper

import (
	"math"
	"strings"

	"github.com/chestorix/dsmr-exporter/internal/models"
	"github.com/sirupsen/logrus"
)

type Mapper struct {
	logger *logrus.Logger
	prefix string
}

func New(prefix string, logger *logrus.Logger) *Mapper {
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	return &Mapper{prefix: prefix, logger: logger}
}

// Map returns the gauge update for m, or false when m is discarded.
func (mp *Mapper) Map(m models.RawMeasurement) (models.GaugeUpdate, bool) {
	switch m.Value.Kind {
	case models.KindNumber:
	case models.KindOther:
		mp.discard(m, "non-numeric value")
		return models.GaugeUpdate{}, false
	default:
		mp.discard(m, "unknown value kind")
		return models.GaugeUpdate{}, false
	}

	if m.Name == "" {
		mp.discard(m, "empty name")
		return models.GaugeUpdate{}, false
	}

	value, err := m.Value.Number.Float64()
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		mp.discard(m, "unrepresentable number")
		return models.GaugeUpdate{}, false
	}

	name := mp.GaugeName(m.Name, m.Unit)
	if mp.reserved(name) {
		mp.discard(m, "reserved name")
		return models.GaugeUpdate{}, false
	}

	return models.GaugeUpdate{Name: name, Value: value}, true
}

// MapBatch maps every measurement of b, skipping discarded ones.
func (mp *Mapper) MapBatch(b models.Batch) ([]models.GaugeUpdate, int) {
	updates := make([]models.GaugeUpdate, 0, len(b))
	discarded := 0
	for _, m := range b {
		u, ok := mp.Map(m)
		if !ok {
			discarded++
			continue
		}
		updates = append(updates, u)
	}
	return updates, discarded
}

// GaugeName builds <prefix>_<name>[_<unit>]. The unit is lower-cased, the name is not.
func (mp *Mapper) GaugeName(name string, unit *string) string {
	var sb strings.Builder
	sb.WriteString(mp.prefix)
	sb.WriteByte('_')
	sb.WriteString(sanitize(name))
	if unit != nil && *unit != "" {
		sb.WriteByte('_')
		sb.WriteString(sanitize(strings.ToLower(*unit)))
	}
	return sb.String()
}

// reserved reports whether name belongs to one of the exporter's own metrics.
func (mp *Mapper) reserved(name string) bool {
	rest := strings.TrimPrefix(name, mp.prefix+"_")
	for _, r := range models.ReservedMetricNames {
		if rest == r || strings.HasPrefix(rest, r+"_") {
			return true
		}
	}
	return false
}

func (mp *Mapper) discard(m models.RawMeasurement, reason string) {
	mp.logger.WithFields(logrus.Fields{
		"measurement": m.Name,
		"reason":      reason,
	}).Debug("measurement discarded")
}

// sanitize replaces every rune not allowed in a metric name with '_'.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ':':
			return r
		default:
			return '_'
		}
	}, s)
}
