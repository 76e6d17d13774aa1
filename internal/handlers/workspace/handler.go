package workspace

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"cospace/infras/otel"
	"cospace/internal/domains/workspace/model/dto"
	"cospace/internal/domains/workspace/service"
	"cospace/shared/constant"
	"cospace/shared/failure"
	"cospace/shared/validator"
	"cospace/transport/http/response"
)

type Handler struct {
	service service.Workspace
	otel    otel.Otel
}

func New(service service.Workspace, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/workspaces", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetWorkspaces)
		routerGroup.Get("/{id}", handler.GetWorkspaceByID)
		routerGroup.Post("/", handler.CreateWorkspace)
	})
}

// GetWorkspaces lists workspaces, optionally with availability for a window.
// @Summary List workspaces
// @Description List all workspaces. When start_time and end_time are provided, each workspace carries its availability status for that interval.
// @Tags Workspace
// @Produce json
// @Param start_time query string false "Interval start (RFC3339)"
// @Param end_time query string false "Interval end (RFC3339)"
// @Success 200 {object} response.Data[dto.ListWorkspacesResponse] "List of workspaces"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workspaces [get]
func (handler *Handler) GetWorkspaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkspaces")
	defer scope.End()

	window, err := windowFromRequest(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse availability window")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetAll(ctx, window)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workspaces")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetWorkspaceByID retrieves a single workspace.
// @Summary Get a workspace
// @Description Retrieve a workspace by its ID.
// @Tags Workspace
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} response.Data[dto.WorkspaceResponse] "Workspace"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workspaces/{id} [get]
func (handler *Handler) GetWorkspaceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkspaceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workspace")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateWorkspace registers a new workspace.
// @Summary Create a workspace
// @Description Create a workspace with a unique number. Admin only.
// @Tags Workspace
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkspaceRequest true "Create Workspace Request"
// @Success 201 {object} response.Data[dto.WorkspaceResponse] "Workspace created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workspaces [post]
// @Security BearerAuth
func (handler *Handler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWorkspace")
	defer scope.End()

	req := dto.CreateWorkspaceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create workspace")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

func windowFromRequest(r *http.Request) (*dto.AvailabilityWindow, error) {
	startParam := r.URL.Query().Get(constant.RequestParamStartTime)
	endParam := r.URL.Query().Get(constant.RequestParamEndTime)

	if startParam == constant.Empty && endParam == constant.Empty {
		return nil, nil
	}

	if startParam == constant.Empty || endParam == constant.Empty {
		return nil, failure.BadRequestFromString("start_time and end_time must be provided together")
	}

	start, err := time.Parse(time.RFC3339, startParam)
	if err != nil {
		return nil, failure.BadRequestFromString("start_time must be a valid RFC3339 timestamp")
	}

	end, err := time.Parse(time.RFC3339, endParam)
	if err != nil {
		return nil, failure.BadRequestFromString("end_time must be a valid RFC3339 timestamp")
	}

	return &dto.AvailabilityWindow{StartTime: start, EndTime: end}, nil
}
