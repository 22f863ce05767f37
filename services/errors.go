package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrEventNotFound = errors.New("event not found")

	// Ошибки валидации фильтра
	ErrInvalidPeriod            = errors.New("invalid period")
	ErrInvalidDateRange         = errors.New("invalid date range")
	ErrInvalidParticipantsRange = errors.New("participants range must be an ascending pair within [0, 1000]")
	ErrInvalidGender            = errors.New("invalid gender")
	ErrInvalidEventType         = errors.New("invalid event type")
	ErrInvalidEventStatus       = errors.New("invalid event status")
	ErrInvalidPagination        = errors.New("limit and offset must not be negative")
	ErrUnsupportedLanguage      = errors.New("unsupported language")

	ErrFilterOptionsLoadFailed  = errors.New("failed to load filter options")
	ErrSchemaPublishFailed      = errors.New("failed to publish filter schema")
	ErrSchemaPublishingDisabled = errors.New("schema publishing is not configured")
)
