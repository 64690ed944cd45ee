package types

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"time"
)

// timePattern допустимый формат времени HH:mm (00:00 - 23:59)
var timePattern = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeString время в формате "HH:mm" без привязки к дате и часовому поясу.
// Используется для рабочих часов, окон доступности и времени начала бронирования.
type TimeString string

// NewTimeString создает TimeString из time.Time (берет только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата HH:mm
func NewTimeStringFromString(s string) (TimeString, error) {
	if !timePattern.MatchString(s) {
		return "", fmt.Errorf("invalid time format %q: expected HH:mm", s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsValid проверяет, что значение соответствует формату HH:mm
func (t TimeString) IsValid() bool {
	return timePattern.MatchString(string(t))
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("invalid time string %q: %v", string(t), err)
	}
	return hours*60 + minutes, nil
}

// AddMinutes возвращает новый TimeString, сдвинутый на delta минут вперед.
// Возвращает ошибку при выходе за пределы суток.
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += delta
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, delta)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan реализует sql.Scanner для чтения из БД (TEXT колонка)
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
	return nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}
