package domain

import "errors"

var (
	MessagePlantNotFound   = "Plant not found"
	MessageFailedGetPlants = "failed to retrieve plants"

	ErrPlantNotFound = errors.New("plant not found")
)
