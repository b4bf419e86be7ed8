package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Каталог и расчёт эффективности
	InvalidCatalog    failure.ErrorCode = "InvalidCatalog"    // Каталог не прошёл валидацию
	MarketQueryFailed failure.ErrorCode = "MarketQueryFailed" // Аукцион вернул ошибку или недоступен
	CalculationFailed failure.ErrorCode = "CalculationFailed" // Не удалось посчитать эффективность
)
