package service

import "errors"

var (
	// ErrTouristNotFound - турист с данным внешним ID не зарегистрирован
	ErrTouristNotFound = errors.New("tourist not found")

	// ErrNoJurisdiction - ни один участок не покрывает точку
	ErrNoJurisdiction = errors.New("no police station covers this location")

	// ErrZoneNotFound - зона риска не найдена
	ErrZoneNotFound = errors.New("risk zone not found")

	// ErrStationNotFound - участок не найден
	ErrStationNotFound = errors.New("police station not found")
)
