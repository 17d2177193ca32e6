package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Services - набор сервисов, используемых HTTP-обработчиками
type Services struct {
	Locations service.LocationService
	Panic     service.PanicService
	Alerts    service.AlertService
	Tourists  service.TouristService
	Zones     service.RiskZoneService
	Stations  service.PoliceStationService
}

type Handler struct {
	services Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// @Summary Submit a tourist location update
// @Description Process a location report: history, live broadcast, nearest risk zone evaluation and police alert escalation.
// @Tags Locations
// @Accept json
// @Produce json
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 {object} service.ProcessResult
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/update [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input UpdateLocationRequest
	log := h.logger.WithField("method", "updateLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.services.Locations.ProcessLocation(c.Request.Context(), input.TouristID, *input.Latitude, *input.Longitude, input.Timestamp)
	if err != nil {
		log.WithError(err).Error("Failed to process location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Get latest tourist positions
// @Description Get the last known position of every tracked tourist. Requires API key.
// @Tags Locations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} service.TouristPosition
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/latest [get]
func (h *Handler) latestPositions(c *gin.Context) {
	log := h.logger.WithField("method", "latestPositions")

	positions, err := h.services.Locations.LatestPositions(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get latest positions from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, positions)
}

// @Summary Trigger a panic alert
// @Description Immediate escalation to the nearest covering police station, bypassing the alert cooldown.
// @Tags Panic
// @Accept json
// @Produce json
// @Param panic body PanicRequest true "Panic trigger request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Tourist not found or no covering station"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /panic [post]
func (h *Handler) triggerPanic(c *gin.Context) {
	var input PanicRequest
	log := h.logger.WithField("method", "triggerPanic")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.services.Panic.TriggerPanic(c.Request.Context(), input.TouristID, *input.Latitude, *input.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTouristNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "tourist not found"})
		case errors.Is(err, service.ErrNoJurisdiction):
			c.JSON(http.StatusNotFound, gin.H{"error": "no police station covers this location"})
		default:
			log.WithError(err).Error("Failed to trigger panic in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Get alerts for a police station
// @Description Get all alerts assigned to a station, newest first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param stationId path int true "Police station ID"
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid station ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/station/{stationId} [get]
func (h *Handler) alertsByStation(c *gin.Context) {
	stationID, err := strconv.ParseInt(c.Param("stationId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid station ID"})
		return
	}
	log := h.logger.WithField("method", "alertsByStation").WithField("station_id", stationID)

	alerts, err := h.services.Alerts.ListByStation(c.Request.Context(), stationID)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Register a new tourist
// @Description Register a tourist with a digital ID validity window. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param tourist body CreateTouristRequest true "Tourist registration request"
// @Success 201 {object} TouristResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists [post]
func (h *Handler) createTourist(c *gin.Context) {
	var input CreateTouristRequest
	log := h.logger.WithField("method", "createTourist")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourist, err := h.services.Tourists.Create(c.Request.Context(), service.CreateTouristInput{
		TouristID:        input.TouristID,
		Name:             input.Name,
		EmergencyContact: input.EmergencyContact,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		ValidFrom:        input.ValidFrom,
		ValidTo:          input.ValidTo,
	})
	if err != nil {
		log.WithError(err).Error("Failed to create tourist in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ModelToTouristResponse(tourist))
}

// @Summary Get a list of tourists
// @Description Get all registered tourists. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} TouristResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists [get]
func (h *Handler) listTourists(c *gin.Context) {
	log := h.logger.WithField("method", "listTourists")

	tourists, err := h.services.Tourists.List(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list tourists from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToTouristResponses(tourists))
}

// @Summary Get tourist by external ID
// @Description Get a single tourist by the external tourist ID. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param touristId path string true "External tourist ID"
// @Success 200 {object} TouristResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/{touristId} [get]
func (h *Handler) getTourist(c *gin.Context) {
	touristID := c.Param("touristId")
	log := h.logger.WithField("method", "getTourist").WithField("tourist_id", touristID)

	tourist, err := h.services.Tourists.GetByTouristID(c.Request.Context(), touristID)
	if err != nil {
		if errors.Is(err, service.ErrTouristNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tourist not found"})
			return
		}
		log.WithError(err).Error("Failed to get tourist from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToTouristResponse(tourist))
}

// @Summary Adjust tourist safety score
// @Description Apply a delta to the tourist safety score, floored at zero. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param touristId path string true "External tourist ID"
// @Param score body AdjustSafetyScoreRequest true "Safety score delta"
// @Success 200 {object} TouristResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/{touristId}/safety-score [patch]
func (h *Handler) adjustSafetyScore(c *gin.Context) {
	touristID := c.Param("touristId")
	log := h.logger.WithField("method", "adjustSafetyScore").WithField("tourist_id", touristID)

	var input AdjustSafetyScoreRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourist, err := h.services.Tourists.AdjustSafetyScore(c.Request.Context(), touristID, input.Delta)
	if err != nil {
		if errors.Is(err, service.ErrTouristNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tourist not found"})
			return
		}
		log.WithError(err).Error("Failed to adjust safety score in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToTouristResponse(tourist))
}

// @Summary Get reporting statistics
// @Description Get the count of tourists that reported a position within the stats window. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tourists/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.services.Locations.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{ActiveTourists: count})
}

// @Summary Create a new risk zone
// @Description Create a circular hazard zone. Requires API key.
// @Tags RiskZones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone body CreateRiskZoneRequest true "Risk zone creation request"
// @Success 201 {object} RiskZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-zones [post]
func (h *Handler) createRiskZone(c *gin.Context) {
	var input CreateRiskZoneRequest
	log := h.logger.WithField("method", "createRiskZone")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToRiskZoneModel(input)
	if err := h.services.Zones.CreateZone(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create risk zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ModelToRiskZoneResponse(model))
}

// @Summary Get a list of risk zones
// @Description Get all hazard zones. Requires API key.
// @Tags RiskZones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} RiskZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-zones [get]
func (h *Handler) listRiskZones(c *gin.Context) {
	log := h.logger.WithField("method", "listRiskZones")

	zones, err := h.services.Zones.ListZones(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list risk zones from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToRiskZoneResponses(zones))
}

// @Summary Get risk zone by ID
// @Description Get a single hazard zone by its ID. Requires API key.
// @Tags RiskZones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Risk zone ID"
// @Success 200 {object} RiskZoneResponse
// @Failure 400 {object} map[string]string "Invalid risk zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Risk zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-zones/{id} [get]
func (h *Handler) getRiskZone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk zone ID"})
		return
	}
	log := h.logger.WithField("method", "getRiskZone").WithField("id", id)

	zone, err := h.services.Zones.GetZone(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "risk zone not found"})
			return
		}
		log.WithError(err).Error("Failed to get risk zone from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToRiskZoneResponse(zone))
}

// @Summary Delete a risk zone
// @Description Delete a hazard zone by its ID. Requires API key.
// @Tags RiskZones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Risk zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid risk zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Risk zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /risk-zones/{id} [delete]
func (h *Handler) deleteRiskZone(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk zone ID"})
		return
	}
	log := h.logger.WithField("method", "deleteRiskZone").WithField("id", id)

	if err := h.services.Zones.DeleteZone(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "risk zone not found"})
			return
		}
		log.WithError(err).Error("Failed to delete risk zone in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create a new police station
// @Description Create a police station with a jurisdiction radius. Requires API key.
// @Tags PoliceStations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param station body CreatePoliceStationRequest true "Police station creation request"
// @Success 201 {object} PoliceStationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /police-stations [post]
func (h *Handler) createPoliceStation(c *gin.Context) {
	var input CreatePoliceStationRequest
	log := h.logger.WithField("method", "createPoliceStation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToPoliceStationModel(input)
	if err := h.services.Stations.CreateStation(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create police station in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ModelToPoliceStationResponse(model))
}

// @Summary Get a list of police stations
// @Description Get all police stations. Requires API key.
// @Tags PoliceStations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} PoliceStationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /police-stations [get]
func (h *Handler) listPoliceStations(c *gin.Context) {
	log := h.logger.WithField("method", "listPoliceStations")

	stations, err := h.services.Stations.ListStations(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list police stations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToPoliceStationResponses(stations))
}

// @Summary Find police stations covering a point
// @Description Get stations whose jurisdiction covers the given point, nearest first. Requires API key.
// @Tags PoliceStations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {array} models.StationDistance
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /police-stations/nearby [get]
func (h *Handler) nearbyPoliceStations(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}
	log := h.logger.WithField("method", "nearbyPoliceStations")

	nearby, err := h.services.Stations.Nearby(c.Request.Context(), lat, lng)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby stations in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, nearby)
}

// @Summary Get police station by ID
// @Description Get a single police station by its ID. Requires API key.
// @Tags PoliceStations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Police station ID"
// @Success 200 {object} PoliceStationResponse
// @Failure 400 {object} map[string]string "Invalid police station ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Police station not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /police-stations/{id} [get]
func (h *Handler) getPoliceStation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid police station ID"})
		return
	}
	log := h.logger.WithField("method", "getPoliceStation").WithField("id", id)

	station, err := h.services.Stations.GetStation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "police station not found"})
			return
		}
		log.WithError(err).Error("Failed to get police station from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToPoliceStationResponse(station))
}

// @Summary Get tourists in a station's jurisdiction
// @Description Get tourists for whom this station is the nearest one. Requires API key.
// @Tags PoliceStations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Police station ID"
// @Success 200 {array} TouristResponse
// @Failure 400 {object} map[string]string "Invalid police station ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Police station not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /police-stations/{id}/tourists [get]
func (h *Handler) touristsInJurisdiction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid police station ID"})
		return
	}
	log := h.logger.WithField("method", "touristsInJurisdiction").WithField("id", id)

	tourists, err := h.services.Stations.TouristsInJurisdiction(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "police station not found"})
			return
		}
		log.WithError(err).Error("Failed to list tourists for station in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToTouristResponses(tourists))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
