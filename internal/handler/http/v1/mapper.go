package v1

import "github.com/shenikar/tourist_safety_system/internal/models"

// DTOToRiskZoneModel преобразует DTO создания в доменную модель
func DTOToRiskZoneModel(dto CreateRiskZoneRequest) *models.RiskZone {
	return &models.RiskZone{
		Name:         dto.Name,
		Latitude:     *dto.Latitude,
		Longitude:    *dto.Longitude,
		RadiusMeters: dto.RadiusMeters,
	}
}

// DTOToPoliceStationModel преобразует DTO создания в доменную модель
func DTOToPoliceStationModel(dto CreatePoliceStationRequest) *models.PoliceStation {
	return &models.PoliceStation{
		Name:               dto.Name,
		Latitude:           *dto.Latitude,
		Longitude:          *dto.Longitude,
		JurisdictionRadius: dto.JurisdictionRadius,
	}
}

// ModelToTouristResponse преобразует доменную модель в DTO для ответа
func ModelToTouristResponse(model *models.Tourist) *TouristResponse {
	return &TouristResponse{
		ID:               model.ID,
		TouristID:        model.TouristID,
		Name:             model.Name,
		EmergencyContact: model.EmergencyContact,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		LastUpdated:      model.LastUpdated,
		SafetyScore:      model.SafetyScore,
		ValidFrom:        model.ValidFrom,
		ValidTo:          model.ValidTo,
	}
}

// ModelsToTouristResponses преобразует слайс моделей в слайс DTO
func ModelsToTouristResponses(models []*models.Tourist) []*TouristResponse {
	responses := make([]*TouristResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToTouristResponse(model)
	}
	return responses
}

// ModelToRiskZoneResponse преобразует доменную модель в DTO для ответа
func ModelToRiskZoneResponse(model *models.RiskZone) *RiskZoneResponse {
	return &RiskZoneResponse{
		ID:           model.ID,
		Name:         model.Name,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		RadiusMeters: model.RadiusMeters,
		CreatedAt:    model.CreatedAt,
	}
}

// ModelsToRiskZoneResponses преобразует слайс моделей в слайс DTO
func ModelsToRiskZoneResponses(models []*models.RiskZone) []*RiskZoneResponse {
	responses := make([]*RiskZoneResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToRiskZoneResponse(model)
	}
	return responses
}

// ModelToPoliceStationResponse преобразует доменную модель в DTO для ответа
func ModelToPoliceStationResponse(model *models.PoliceStation) *PoliceStationResponse {
	return &PoliceStationResponse{
		ID:                 model.ID,
		Name:               model.Name,
		Latitude:           model.Latitude,
		Longitude:          model.Longitude,
		JurisdictionRadius: model.JurisdictionRadius,
	}
}

// ModelsToPoliceStationResponses преобразует слайс моделей в слайс DTO
func ModelsToPoliceStationResponses(models []*models.PoliceStation) []*PoliceStationResponse {
	responses := make([]*PoliceStationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToPoliceStationResponse(model)
	}
	return responses
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:             model.ID,
		TouristID:      model.TouristID,
		StationID:      model.StationID,
		ZoneName:       model.ZoneName,
		Severity:       model.Severity,
		DistanceMeters: model.DistanceMeters,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}
