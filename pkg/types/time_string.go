package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

const timeLayout = "15:04"

// TimeString время суток в формате HH:MM без привязки к дате и часовому поясу
// Значение хранится как есть и интерпретируется вызывающей стороной (для расписаний это МСК)
type TimeString string

// NewTimeString создает TimeString из часов и минут
func NewTimeString(hour, minute int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
// Допускает формат HH:MM:SS, который возвращает PostgreSQL для колонок типа TIME
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) == len("15:04:05") {
		s = s[:5]
	}
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if len(t) != len(timeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero сообщает, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Clock возвращает часы и минуты
func (t TimeString) Clock() (hour, minute int, err error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// Minutes количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	h, m, err := t.Clock()
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// IsWholeHour сообщает, что время выровнено по целому часу
func (t TimeString) IsWholeHour() bool {
	_, m, err := t.Clock()
	return err == nil && m == 0
}

// IsBefore сравнивает два значения
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		ts, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case []byte:
		ts, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = ts
		return nil
	case time.Time:
		*t = NewTimeString(v.Hour(), v.Minute())
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// UnmarshalJSON разбирает и валидирует значение
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
