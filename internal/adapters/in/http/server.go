// Package http exposes the dispatch core over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"dronedispatch/internal/core/application/usecases/commands"
	"dronedispatch/internal/core/application/usecases/queries"
	"dronedispatch/internal/core/domain/model/drone"
	"dronedispatch/internal/core/domain/model/kernel"
	"dronedispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterDroneRequest is the body of POST /api/v1/drones.
type RegisterDroneRequest struct {
	SerialNumber    string  `json:"serialNumber"`
	Model           string  `json:"model"`
	WeightLimit     float64 `json:"weightLimit"`
	BatteryCapacity int     `json:"batteryCapacity"`
}

// LoadMedicationRequest is the body of POST /api/v1/sessions/:sessionID/load-medication.
type LoadMedicationRequest struct {
	MedicationID string `json:"medicationId"`
	Quantity     int    `json:"quantity"`
}

// Drone is the fleet read model returned by GET /api/v1/drones.
type Drone struct {
	ID              string  `json:"id"`
	SerialNumber    string  `json:"serialNumber"`
	Model           string  `json:"model"`
	WeightLimit     float64 `json:"weightLimit"`
	BatteryCapacity int     `json:"batteryCapacity"`
	State           string  `json:"state"`
}

// Session is returned when a drone is acquired for loading.
type Session struct {
	ID      string `json:"id"`
	DroneID string `json:"droneId"`
}

// ManifestRow is one medication entry of a drone's payload manifest.
type ManifestRow struct {
	MedicationID string    `json:"medicationId"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	Weight       float64   `json:"weight"`
	Quantity     int       `json:"quantity"`
	LoadedAt     time.Time `json:"loadedAt"`
}

// LoadResult is returned after a successful load.
type LoadResult struct {
	LoadID       string    `json:"loadId"`
	DroneID      string    `json:"droneId"`
	MedicationID string    `json:"medicationId"`
	Quantity     int       `json:"quantity"`
	LoadedAt     time.Time `json:"loadedAt"`
}

// AuditRow is one battery snapshot of a drone's audit history.
type AuditRow struct {
	ID              string    `json:"id"`
	SerialNumber    string    `json:"serialNumber"`
	BatteryCapacity int       `json:"batteryCapacity"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Server wires the REST endpoints to command and query handlers.
type Server struct {
	// Command handlers
	registerDroneHandler  commands.RegisterDroneCommandHandler
	acquireDroneHandler   commands.AcquireDroneCommandHandler
	loadMedicationHandler commands.LoadMedicationCommandHandler

	// Query handlers
	getAllDronesHandler         queries.GetAllDronesQueryHandler
	getLoadedMedicationsHandler queries.GetLoadedMedicationsQueryHandler
	getBatteryAuditsHandler     queries.GetBatteryAuditsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerDroneHandler commands.RegisterDroneCommandHandler,
	acquireDroneHandler commands.AcquireDroneCommandHandler,
	loadMedicationHandler commands.LoadMedicationCommandHandler,
	getAllDronesHandler queries.GetAllDronesQueryHandler,
	getLoadedMedicationsHandler queries.GetLoadedMedicationsQueryHandler,
	getBatteryAuditsHandler queries.GetBatteryAuditsQueryHandler,
) *Server {
	return &Server{
		registerDroneHandler:        registerDroneHandler,
		acquireDroneHandler:         acquireDroneHandler,
		loadMedicationHandler:       loadMedicationHandler,
		getAllDronesHandler:         getAllDronesHandler,
		getLoadedMedicationsHandler: getLoadedMedicationsHandler,
		getBatteryAuditsHandler:     getBatteryAuditsHandler,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/drones", s.RegisterDrone)
	v1.GET("/drones", s.GetDrones)
	v1.POST("/drones/:droneID/acquire", s.AcquireDrone)
	v1.GET("/drones/:droneID/medications", s.GetLoadedMedications)
	v1.GET("/drones/:droneID/audits", s.GetBatteryAudits)
	v1.POST("/sessions/:sessionID/load-medication", s.LoadMedication)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterDrone handles POST /api/v1/drones - registers a new drone in the fleet.
func (s *Server) RegisterDrone(ctx echo.Context) error {
	var req RegisterDroneRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	model, err := drone.ModelFromString(req.Model)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid drone data: "+err.Error())
	}

	cmd, err := commands.NewRegisterDroneCommand(req.SerialNumber, model, req.WeightLimit, req.BatteryCapacity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid drone data: "+err.Error())
	}

	if handleErr := s.registerDroneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorFromDomain(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.DroneID().String()})
}

// GetDrones handles GET /api/v1/drones - retrieves the fleet.
func (s *Server) GetDrones(ctx echo.Context) error {
	query := queries.NewGetAllDronesQuery()

	drones, err := s.getAllDronesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve drones")
	}

	response := make([]Drone, len(drones))
	for i, d := range drones {
		response[i] = Drone{
			ID:              d.ID.String(),
			SerialNumber:    d.SerialNumber,
			Model:           d.Model,
			WeightLimit:     d.WeightLimit,
			BatteryCapacity: d.BatteryCapacity,
			State:           d.State,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcquireDrone handles POST /api/v1/drones/:droneID/acquire - reserves an
// idle drone for loading and opens a delivery session.
func (s *Server) AcquireDrone(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("droneID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid drone ID")
	}

	cmd, err := commands.NewAcquireDroneCommand(droneID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid drone ID")
	}

	if handleErr := s.acquireDroneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorFromDomain(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Session{
		ID:      cmd.SessionID().String(),
		DroneID: cmd.DroneID().String(),
	})
}

// LoadMedication handles POST /api/v1/sessions/:sessionID/load-medication -
// loads medication units into an open session.
func (s *Server) LoadMedication(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid session ID")
	}

	var req LoadMedicationRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	medicationID, err := kernel.UUIDFromString(req.MedicationID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid medication ID")
	}

	cmd, err := commands.NewLoadMedicationCommand(sessionID, medicationID, req.Quantity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid load data: "+err.Error())
	}

	result, err := s.loadMedicationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoadResult{
		LoadID:       result.LoadID.String(),
		DroneID:      result.DroneID.String(),
		MedicationID: result.MedicationID.String(),
		Quantity:     result.Quantity,
		LoadedAt:     result.LoadedAt,
	})
}

// GetLoadedMedications handles GET /api/v1/drones/:droneID/medications -
// retrieves the drone's payload manifest.
func (s *Server) GetLoadedMedications(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("droneID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid drone ID")
	}

	query, err := queries.NewGetLoadedMedicationsQuery(droneID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid drone ID")
	}

	manifest, err := s.getLoadedMedicationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	response := make([]ManifestRow, len(manifest))
	for i, row := range manifest {
		response[i] = ManifestRow{
			MedicationID: row.MedicationID.String(),
			Name:         row.Name,
			Code:         row.Code,
			Weight:       row.Weight,
			Quantity:     row.Quantity,
			LoadedAt:     row.LoadedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBatteryAudits handles GET /api/v1/drones/:droneID/audits - retrieves
// the drone's battery snapshot history.
func (s *Server) GetBatteryAudits(ctx echo.Context) error {
	droneID, err := kernel.UUIDFromString(ctx.Param("droneID"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid drone ID")
	}

	query, err := queries.NewGetBatteryAuditsQuery(droneID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid drone ID")
	}

	audits, err := s.getBatteryAuditsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorFromDomain(ctx, err)
	}

	response := make([]AuditRow, len(audits))
	for i, row := range audits {
		response[i] = AuditRow{
			ID:              row.ID.String(),
			SerialNumber:    row.SerialNumber,
			BatteryCapacity: row.BatteryCapacity,
			CreatedAt:       row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// errorFromDomain maps domain error kinds onto HTTP status codes.
func errorFromDomain(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrDuplicate):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrBatteryTooLow),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
