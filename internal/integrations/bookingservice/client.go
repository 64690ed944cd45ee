package bookingservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Client клиент для работы с BookingService.
// Используется подбором специалистов для проверки пересечений с уже
// существующими бронированиями; сам сервис доступности бронирования не хранит.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BookingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// HasConflictingBooking проверяет, есть ли у специалиста бронирование,
// пересекающееся с интервалом [startTime, startTime+durationMinutes) в указанную дату.
// Ошибки доступности сервиса пробрасываются вызывающему - ядро не деградирует молча.
func (c *Client) HasConflictingBooking(
	ctx context.Context,
	professionalID int64,
	date time.Time,
	startTime types.TimeString,
	durationMinutes int,
) (bool, error) {
	endpoint := fmt.Sprintf("%s/internal/professionals/%d/booking-conflicts", c.baseURL, professionalID)

	params := url.Values{}
	params.Set("date", date.Format(domain.DateFormat))
	params.Set("time", startTime.String())
	params.Set("durationMinutes", strconv.Itoa(durationMinutes))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return false, ErrProfessionalNotFound
	case http.StatusBadRequest:
		return false, fmt.Errorf("%w: invalid conflict-check parameters", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var conflict ConflictResponse
	if err := json.NewDecoder(resp.Body).Decode(&conflict); err != nil {
		return false, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return conflict.HasConflict, nil
}
