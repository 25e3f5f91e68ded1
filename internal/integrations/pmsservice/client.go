package pmsservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент канонической PMS: справочник отелей и персистентность
// статусов уборки. Сервис сетки хранит только локальную read-модель,
// источником истины остается PMS.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PMS
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHotel получает отель по ID (включая список менеджеров для проверки прав)
func (c *Client) GetHotel(ctx context.Context, hotelID int64) (*Hotel, error) {
	url := fmt.Sprintf("%s/internal/hotels/%d", c.baseURL, hotelID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrHotelNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var hotel Hotel
	if err := json.NewDecoder(resp.Body).Decode(&hotel); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &hotel, nil
}

// UpdateHousekeepingStatus отправляет смену статуса уборки в PMS.
// Локальное значение уже переключено оптимистично; при ErrStatusRejected
// или любой другой ошибке вызывающая сторона откатывает его.
func (c *Client) UpdateHousekeepingStatus(ctx context.Context, roomID int64, status string) error {
	url := fmt.Sprintf("%s/internal/rooms/%d/housekeeping", c.baseURL, roomID)

	payload, err := json.Marshal(housekeepingUpdateRequest{Status: status})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrRoomNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		c.log.Warn("UpdateHousekeepingStatus: PMS rejected status=%s for room_id=%d", status, roomID)
		return ErrStatusRejected
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
