// Package http exposes the fleet management use cases over a REST API.
// The server translates wire requests into commands and queries and maps
// the application error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fleetmanager/internal/core/application/usecases/commands"
	"fleetmanager/internal/core/application/usecases/queries"
	"fleetmanager/internal/core/domain/model/driver"
	"fleetmanager/internal/core/domain/model/notification"
	"fleetmanager/internal/core/domain/model/owner"
	"fleetmanager/internal/core/domain/model/vehicle"
	"fleetmanager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateOwner   commands.CreateOwnerCommandHandler
	CreateVehicle commands.CreateVehicleCommandHandler
	UpdateVehicle commands.UpdateVehicleCommandHandler
	DeleteVehicle commands.DeleteVehicleCommandHandler
	CreateDriver  commands.CreateDriverCommandHandler
	DeleteDriver  commands.DeleteDriverCommandHandler
	AssignVehicle commands.AssignVehicleCommandHandler
	FreeVehicle   commands.FreeVehicleCommandHandler

	// Query handlers
	GetVehicle         queries.GetVehicleQueryHandler
	GetVehiclesByOwner queries.GetVehiclesByOwnerQueryHandler
	GetFreeVehicles    queries.GetFreeVehiclesQueryHandler
	GetDriversByOwner  queries.GetDriversByOwnerQueryHandler
	GetDriverVehicle   queries.GetDriverVehicleQueryHandler
	GetNotifications   queries.GetNotificationsQueryHandler
}

// Server handles HTTP requests by coordinating between the wire format and
// the application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/owners", s.CreateOwner)
	api.GET("/owners/:ownerId/vehicles", s.GetVehiclesByOwner)
	api.GET("/owners/:ownerId/free-vehicles", s.GetFreeVehicles)
	api.GET("/owners/:ownerId/drivers", s.GetDriversByOwner)
	api.POST("/owners/assign-vehicle", s.AssignVehicle)
	api.GET("/owners/notifications", s.GetNotifications)

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles/:vehicleId", s.GetVehicle)
	api.PATCH("/vehicles/:vehicleId", s.UpdateVehicle)
	api.DELETE("/vehicles/:vehicleId", s.DeleteVehicle)

	api.POST("/drivers", s.CreateDriver)
	api.DELETE("/drivers/:driverId", s.DeleteDriver)
	api.GET("/drivers/:driverId/vehicle", s.GetDriverVehicle)
	api.PATCH("/drivers/vehicle/:vehicleId/free", s.FreeVehicle)
}

// ErrorResponse is the wire shape of every error the API returns.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOwnerRequest is the wire shape of an owner registration.
type CreateOwnerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OwnerResponse is the wire shape of an owner.
type OwnerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateVehicleRequest is the wire shape of a vehicle registration. Validity
// dates are strings; the command constructor parses and rejects them.
type CreateVehicleRequest struct {
	OwnerID           int64  `json:"ownerId"`
	RegdNo            string `json:"regdNo"`
	ChassisNo         string `json:"chassisNo"`
	EngineNo          string `json:"engineNo"`
	FuelType          string `json:"fuelType"`
	InsuranceNo       string `json:"insuranceNo"`
	InsuranceValidity string `json:"insuranceValidity"`
	PUCCNo            string `json:"puccNo"`
	PUCCValidity      string `json:"puccValidity"`
	Documents         string `json:"documents"`
}

// UpdateVehicleRequest is the wire shape of a vehicle amendment. Absent
// fields leave the vehicle untouched.
type UpdateVehicleRequest struct {
	RegdNo            *string `json:"regdNo"`
	FuelType          *string `json:"fuelType"`
	InsuranceNo       *string `json:"insuranceNo"`
	InsuranceValidity *string `json:"insuranceValidity"`
	PUCCNo            *string `json:"puccNo"`
	PUCCValidity      *string `json:"puccValidity"`
	Documents         *string `json:"documents"`
}

// VehicleResponse is the wire shape of a vehicle.
type VehicleResponse struct {
	ID                int64     `json:"id"`
	OwnerID           int64     `json:"ownerId"`
	RegdNo            string    `json:"regdNo"`
	ChassisNo         string    `json:"chassisNo"`
	EngineNo          string    `json:"engineNo"`
	FuelType          string    `json:"fuelType"`
	InsuranceNo       string    `json:"insuranceNo"`
	InsuranceValidity time.Time `json:"insuranceValidity"`
	PUCCNo            string    `json:"puccNo"`
	PUCCValidity      time.Time `json:"puccValidity"`
	Documents         string    `json:"documents,omitempty"`
	Status            string    `json:"status"`
	DriverID          *int64    `json:"driverId,omitempty"`
}

// CreateDriverRequest is the wire shape of a driver registration.
type CreateDriverRequest struct {
	OwnerID   int64  `json:"ownerId"`
	Name      string `json:"name"`
	LicenseNo string `json:"licenseNo"`
	Phone     string `json:"phone"`
}

// DriverResponse is the wire shape of a driver.
type DriverResponse struct {
	ID           int64  `json:"id"`
	OwnerID      int64  `json:"ownerId"`
	Name         string `json:"name"`
	LicenseNo    string `json:"licenseNo"`
	Phone        string `json:"phone"`
	VehicleClass string `json:"vehicleClass,omitempty"`
}

// AssignVehicleRequest is the wire shape of an assignment request.
type AssignVehicleRequest struct {
	DriverID  int64 `json:"driverId"`
	VehicleID int64 `json:"vehicleId"`
}

// NotificationResponse is the wire shape of one notification log entry.
type NotificationResponse struct {
	ID            int64     `json:"id"`
	EventID       string    `json:"eventId"`
	Kind          string    `json:"kind"`
	Message       string    `json:"message"`
	OwnerName     *string   `json:"ownerName,omitempty"`
	DriverName    *string   `json:"driverName,omitempty"`
	VehicleRegdNo *string   `json:"vehicleRegdNo,omitempty"`
	SentAt        time.Time `json:"sentAt"`
}

// CreateOwner handles POST /api/owners.
func (s *Server) CreateOwner(ctx echo.Context) error {
	var request CreateOwnerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateOwnerCommand(request.Name, request.Email)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.CreateOwner.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ownerResponse(created))
}

// CreateVehicle handles POST /api/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var request CreateVehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateVehicleCommand(
		request.OwnerID,
		request.RegdNo, request.ChassisNo, request.EngineNo, request.FuelType,
		request.InsuranceNo, request.InsuranceValidity,
		request.PUCCNo, request.PUCCValidity,
		request.Documents,
	)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.CreateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, vehicleFromAggregate(created))
}

// GetVehicle handles GET /api/vehicles/:vehicleId.
func (s *Server) GetVehicle(ctx echo.Context) error {
	vehicleID, err := pathID(ctx, "vehicleId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetVehicleQuery(vehicleID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromView(view))
}

// UpdateVehicle handles PATCH /api/vehicles/:vehicleId.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	vehicleID, err := pathID(ctx, "vehicleId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	var request UpdateVehicleRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateVehicleCommand(vehicleID, commands.VehicleChanges{
		RegdNo:            request.RegdNo,
		FuelType:          request.FuelType,
		InsuranceNo:       request.InsuranceNo,
		InsuranceValidity: request.InsuranceValidity,
		PUCCNo:            request.PUCCNo,
		PUCCValidity:      request.PUCCValidity,
		Documents:         request.Documents,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	updated, err := s.handlers.UpdateVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleFromAggregate(updated))
}

// DeleteVehicle handles DELETE /api/vehicles/:vehicleId.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	vehicleID, err := pathID(ctx, "vehicleId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(vehicleID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetVehiclesByOwner handles GET /api/owners/:ownerId/vehicles.
func (s *Server) GetVehiclesByOwner(ctx echo.Context) error {
	ownerID, err := pathID(ctx, "ownerId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetVehiclesByOwnerQuery(ownerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetVehiclesByOwner.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehiclesFromViews(views))
}

// GetFreeVehicles handles GET /api/owners/:ownerId/free-vehicles.
// An owner with no free vehicles gets 404: the caller is looking for a
// vehicle to assign and there is nothing to offer.
func (s *Server) GetFreeVehicles(ctx echo.Context) error {
	ownerID, err := pathID(ctx, "ownerId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetFreeVehiclesQuery(ownerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetFreeVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if len(views) == 0 {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "no free vehicles",
		})
	}

	return ctx.JSON(http.StatusOK, vehiclesFromViews(views))
}

// GetDriversByOwner handles GET /api/owners/:ownerId/drivers.
func (s *Server) GetDriversByOwner(ctx echo.Context) error {
	ownerID, err := pathID(ctx, "ownerId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetDriversByOwnerQuery(ownerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetDriversByOwner.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]DriverResponse, 0, len(views))
	for _, view := range views {
		response = append(response, DriverResponse{
			ID:           view.ID,
			OwnerID:      view.OwnerID,
			Name:         view.Name,
			LicenseNo:    view.LicenseNo,
			Phone:        view.Phone,
			VehicleClass: view.VehicleClass,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var request CreateDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateDriverCommand(request.OwnerID, request.Name, request.LicenseNo, request.Phone)
	if err != nil {
		return s.writeError(ctx, err)
	}

	created, err := s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, driverFromAggregate(created))
}

// DeleteDriver handles DELETE /api/drivers/:driverId.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := pathID(ctx, "driverId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDriverVehicle handles GET /api/drivers/:driverId/vehicle.
// A driver without a vehicle gets 204: the driver exists, the seat is empty.
func (s *Server) GetDriverVehicle(ctx echo.Context) error {
	driverID, err := pathID(ctx, "driverId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetDriverVehicleQuery(driverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view, err := s.handlers.GetDriverVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if view == nil {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, vehicleFromView(*view))
}

// AssignVehicle handles POST /api/owners/assign-vehicle.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	var request AssignVehicleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignVehicleCommand(request.VehicleID, request.DriverID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.AssignVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// FreeVehicle handles PATCH /api/drivers/vehicle/:vehicleId/free.
func (s *Server) FreeVehicle(ctx echo.Context) error {
	vehicleID, err := pathID(ctx, "vehicleId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewFreeVehicleCommand(vehicleID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err = s.handlers.FreeVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetNotifications handles GET /api/owners/notifications?userId=&role=.
// Responses are marked uncacheable so a recipient always sees fresh entries.
func (s *Server) GetNotifications(ctx echo.Context) error {
	userID, err := strconv.ParseInt(ctx.QueryParam("userId"), 10, 64)
	if err != nil {
		return s.writeError(ctx, errs.NewValueIsInvalidErrorWithCause("userId", err))
	}

	role, err := notification.ParseRole(ctx.QueryParam("role"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetNotificationsQuery(userID, role)
	if err != nil {
		return s.writeError(ctx, err)
	}

	views, err := s.handlers.GetNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]NotificationResponse, 0, len(views))
	for _, view := range views {
		response = append(response, NotificationResponse{
			ID:            view.ID,
			EventID:       view.EventID,
			Kind:          view.Kind,
			Message:       view.Message,
			OwnerName:     view.OwnerName,
			DriverName:    view.DriverName,
			VehicleRegdNo: view.VehicleRegdNo,
			SentAt:        view.SentAt,
		})
	}

	ctx.Response().Header().Set("Cache-Control", "no-store")
	return ctx.JSON(http.StatusOK, response)
}

// writeError maps an application error onto the HTTP status taxonomy.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, commands.ErrVehicleUnavailable):
		status = http.StatusBadRequest
	case errors.Is(err, commands.ErrDriverAlreadyEngaged):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	default:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathID parses a positive integer path parameter.
func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return id, nil
}

func ownerResponse(aggregate *owner.Owner) OwnerResponse {
	return OwnerResponse{
		ID:    aggregate.ID(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
	}
}

func vehicleFromAggregate(aggregate *vehicle.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                aggregate.ID(),
		OwnerID:           aggregate.OwnerID(),
		RegdNo:            aggregate.RegdNo(),
		ChassisNo:         aggregate.ChassisNo(),
		EngineNo:          aggregate.EngineNo(),
		FuelType:          aggregate.FuelType(),
		InsuranceNo:       aggregate.InsuranceNo(),
		InsuranceValidity: aggregate.InsuranceValidity(),
		PUCCNo:            aggregate.PUCCNo(),
		PUCCValidity:      aggregate.PUCCValidity(),
		Documents:         aggregate.Documents(),
		Status:            aggregate.Status().String(),
		DriverID:          aggregate.DriverID(),
	}
}

func vehicleFromView(view queries.VehicleResponse) VehicleResponse {
	return VehicleResponse{
		ID:                view.ID,
		OwnerID:           view.OwnerID,
		RegdNo:            view.RegdNo,
		ChassisNo:         view.ChassisNo,
		EngineNo:          view.EngineNo,
		FuelType:          view.FuelType,
		InsuranceNo:       view.InsuranceNo,
		InsuranceValidity: view.InsuranceValidity,
		PUCCNo:            view.PUCCNo,
		PUCCValidity:      view.PUCCValidity,
		Documents:         view.Documents,
		Status:            view.Status,
		DriverID:          view.DriverID,
	}
}

func vehiclesFromViews(views []queries.VehicleResponse) []VehicleResponse {
	response := make([]VehicleResponse, 0, len(views))
	for _, view := range views {
		response = append(response, vehicleFromView(view))
	}

	return response
}

func driverFromAggregate(aggregate *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:           aggregate.ID(),
		OwnerID:      aggregate.OwnerID(),
		Name:         aggregate.Name(),
		LicenseNo:    aggregate.LicenseNo(),
		Phone:        aggregate.Phone(),
		VehicleClass: aggregate.VehicleClass(),
	}
}
