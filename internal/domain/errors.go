package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"dnf_market/internal/domain/value"
	"dnf_market/pkg/errcodes"
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// ErrorCode возвращает код ошибки для HTTP-ответа.
func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// GetCode извлекает код ошибки из ближайшей доменной ошибки в цепочке.
func GetCode(err error) (failure.ErrorCode, bool) {
	var coded interface{ ErrorCode() failure.ErrorCode }
	if errors.As(err, &coded) {
		return coded.ErrorCode(), true
	}
	return "", false
}

// MarketQueryError: аукцион вернул неуспешный статус или был недоступен
// для конкретного айтема. StatusCode равен 0, если ответа не было вовсе.
type MarketQueryError struct {
	ItemID     value.ItemID
	StatusCode int
	cause      error
}

func NewMarketQueryError(itemID value.ItemID, statusCode int, cause error) *MarketQueryError {
	return &MarketQueryError{
		ItemID:     itemID,
		StatusCode: statusCode,
		cause:      cause,
	}
}

func (e *MarketQueryError) Error() string {
	msg := fmt.Sprintf("market query for item %q failed", e.ItemID)

	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s with status %d", msg, e.StatusCode)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}

	return msg
}

func (e *MarketQueryError) Unwrap() error {
	return e.cause
}

func (e *MarketQueryError) ErrorCode() failure.ErrorCode {
	return errcodes.MarketQueryFailed
}

// CalculationError: расчёт эффективности одного айтема не удался целиком.
type CalculationError struct {
	ItemName string
	cause    error
}

func NewCalculationError(itemName string, cause error) *CalculationError {
	return &CalculationError{
		ItemName: itemName,
		cause:    cause,
	}
}

func (e *CalculationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("calculate efficiency of %q: %v", e.ItemName, e.cause)
	}
	return fmt.Sprintf("calculate efficiency of %q", e.ItemName)
}

func (e *CalculationError) Unwrap() error {
	return e.cause
}

func (e *CalculationError) ErrorCode() failure.ErrorCode {
	return errcodes.CalculationFailed
}
