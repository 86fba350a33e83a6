package domain

import "errors"

var (
	// ErrNoItemsFound is returned when a meal description yields zero parsed items
	ErrNoItemsFound = errors.New("no food items found in description")

	// ErrSessionNotFound is returned when a parse session does not exist or has expired
	ErrSessionNotFound = errors.New("parse session not found")

	// ErrItemIndexOutOfRange is returned when an item edit targets a missing index
	ErrItemIndexOutOfRange = errors.New("item index out of range")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrLLMUnavailable is returned when the LLM API request fails
	ErrLLMUnavailable = errors.New("LLM API request failed")

	// ErrLLMInvalidResponse is returned when the LLM reply contains no parseable JSON object
	ErrLLMInvalidResponse = errors.New("LLM response contained no valid JSON object")

	// ErrFoodDBUnavailable is returned when the food-database API request fails
	ErrFoodDBUnavailable = errors.New("food database API request failed")

	// ErrFoodDBNoResults is returned when the food-database API parses nothing
	ErrFoodDBNoResults = errors.New("food database returned no parsed entries")
)
