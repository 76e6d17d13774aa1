package tariff

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"cospace/infras/otel"
	"cospace/internal/domains/tariff/model/dto"
	"cospace/internal/domains/tariff/service"
	"cospace/shared/constant"
	"cospace/shared/validator"
	"cospace/transport/http/response"
)

type Handler struct {
	service service.Tariff
	otel    otel.Otel
}

func New(service service.Tariff, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tariffs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTariffs)
		routerGroup.Get("/{id}", handler.GetTariffByID)
		routerGroup.Post("/", handler.CreateTariff)
		routerGroup.Patch("/{id}", handler.UpdateTariff)
		routerGroup.Delete("/{id}", handler.DeleteTariff)
	})
}

// GetTariffs lists all tariffs.
// @Summary List tariffs
// @Description Retrieve all tariff plans.
// @Tags Tariff
// @Produce json
// @Success 200 {object} response.Data[dto.GetTariffsResponse] "List of tariffs"
// @Failure 500 {object} response.Error
// @Router /v1/tariffs [get]
func (handler *Handler) GetTariffs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTariffs")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tariffs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTariffByID retrieves a single tariff.
// @Summary Get a tariff
// @Description Retrieve a tariff by its ID.
// @Tags Tariff
// @Produce json
// @Param id path string true "Tariff ID"
// @Success 200 {object} response.Data[dto.TariffResponse] "Tariff"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tariffs/{id} [get]
func (handler *Handler) GetTariffByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTariffByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tariff")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateTariff creates a tariff plan.
// @Summary Create a tariff
// @Description Create a tariff with a unique plan type. Admin only.
// @Tags Tariff
// @Accept json
// @Produce json
// @Param request body dto.CreateTariffRequest true "Create Tariff Request"
// @Success 201 {object} response.Data[dto.TariffResponse] "Tariff created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tariffs [post]
// @Security BearerAuth
func (handler *Handler) CreateTariff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTariff")
	defer scope.End()

	req := dto.CreateTariffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tariff")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateTariff updates a tariff plan.
// @Summary Update a tariff
// @Description Update the plan type or price of a tariff. Admin only.
// @Tags Tariff
// @Accept json
// @Produce json
// @Param id path string true "Tariff ID"
// @Param request body dto.UpdateTariffRequest true "Update Tariff Request"
// @Success 200 {object} response.Message "Tariff updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tariffs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTariff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTariff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTariffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tariff")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Tariff updated successfully")
}

// DeleteTariff removes a tariff plan.
// @Summary Delete a tariff
// @Description Delete a tariff by its ID. Admin only.
// @Tags Tariff
// @Produce json
// @Param id path string true "Tariff ID"
// @Success 200 {object} response.Message "Tariff deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tariffs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTariff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTariff")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tariff")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Tariff deleted successfully")
}
