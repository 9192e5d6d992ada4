// Package codec упаковывает карту смен в компактный вид для хранилища
// и читает как компактные строки, так и старые полные объекты.
//
// Компактная запись: "02:00|10:00|1" (начало|конец|отработана).
// Legacy-запись: полный JSON-объект ShiftRecord с полем id.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"workshift-bot/internal/model"
)

const sep = "|"

type entryKind int

const (
	kindUnknown entryKind = iota
	kindCompact
	kindLegacy
)

// Compress оставляет только рабочие дни: отсутствие ключа означает «смены нет».
func Compress(shifts map[string]model.ShiftRecord) map[string]string {
	out := make(map[string]string, len(shifts))
	for date, s := range shifts {
		if !s.IsWorkDay {
			continue
		}
		completed := "0"
		if s.IsCompleted {
			completed = "1"
		}
		out[date] = s.StartTime + sep + s.EndTime + sep + completed
	}
	return out
}

// Decompress разбирает каждую запись отдельно; нераспознанные записи пропускаются.
func Decompress(raw map[string]json.RawMessage) map[string]model.ShiftRecord {
	out := make(map[string]model.ShiftRecord, len(raw))
	for date, value := range raw {
		var (
			rec model.ShiftRecord
			ok  bool
		)
		switch classify(value) {
		case kindCompact:
			rec, ok = decodeCompact(date, value)
		case kindLegacy:
			rec, ok = decodeLegacy(value)
		}
		if ok {
			out[date] = rec
		}
	}
	return out
}

// DecodeBlob читает сохранённый JSON-документ целиком.
// Ошибка возвращается только если сам документ не является JSON-объектом.
func DecodeBlob(blob string) (map[string]model.ShiftRecord, error) {
	if strings.TrimSpace(blob) == "" {
		return map[string]model.ShiftRecord{}, nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("decode shift blob: %w", err)
	}
	return Decompress(raw), nil
}

func EncodeBlob(shifts map[string]model.ShiftRecord) (string, error) {
	b, err := json.Marshal(Compress(shifts))
	if err != nil {
		return "", fmt.Errorf("encode shift blob: %w", err)
	}
	return string(b), nil
}

func classify(value json.RawMessage) entryKind {
	v := bytes.TrimSpace(value)
	if len(v) == 0 {
		return kindUnknown
	}
	switch v[0] {
	case '"':
		return kindCompact
	case '{':
		return kindLegacy
	}
	return kindUnknown
}

func decodeCompact(date string, value json.RawMessage) (model.ShiftRecord, bool) {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return model.ShiftRecord{}, false
	}
	parts := strings.Split(s, sep)
	if len(parts) < 2 {
		return model.ShiftRecord{}, false
	}
	return model.ShiftRecord{
		ID:          date,
		Date:        date,
		IsWorkDay:   true,
		StartTime:   parts[0],
		EndTime:     parts[1],
		IsCompleted: len(parts) > 2 && parts[2] == "1",
	}, true
}

// decodeLegacy берёт объект как есть, но только если в нём есть id.
func decodeLegacy(value json.RawMessage) (model.ShiftRecord, bool) {
	var probe struct {
		ID *string `json:"id"`
	}
	if err := json.Unmarshal(value, &probe); err != nil || probe.ID == nil || *probe.ID == "" {
		return model.ShiftRecord{}, false
	}
	var rec model.ShiftRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		return model.ShiftRecord{}, false
	}
	return rec, true
}
