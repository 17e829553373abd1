package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/api/http/presenter"
	"github.com/artem13815/hr/screening/pkg/screening"
)

type ScreeningHandler struct {
	svc              screening.UseCase
	defaultThreshold float64
	log              *zap.Logger
}

func NewScreeningHandler(svc screening.UseCase, defaultThreshold float64, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{svc: svc, defaultThreshold: defaultThreshold, log: log}
}

type filterRequest struct {
	Query string `json:"query"`
}

type rankRequest struct {
	Query string `json:"query"`
	// Threshold in [0,1]; omitted means the server default.
	Threshold *float64 `json:"threshold"`
}

// Filter отбирает кандидатов, у которых есть все навыки из текста вакансии.
// @Summary Точный отбор по навыкам
// @Tags    screening
// @Accept  json
// @Produce json
// @Param   payload body filterRequest true "Текст вакансии"
// @Security BearerAuth
// @Success 200 {object} presenter.DataResponse[screening.Match]
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /screening/filter [post]
func (h *ScreeningHandler) Filter(c *fiber.Ctx) error {
	var req filterRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid json")
	}
	items, err := h.svc.Filter(c.UserContext(), req.Query)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.DataResponse[screening.Match]{Data: items})
}

// Rank ранжирует кандидатов по косинусной близости к тексту вакансии.
// @Summary Ранжирование кандидатов
// @Tags    screening
// @Accept  json
// @Produce json
// @Param   payload body rankRequest true "Текст вакансии и порог"
// @Security BearerAuth
// @Success 200 {object} presenter.DataResponse[screening.RankedMatch]
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /screening/rank [post]
func (h *ScreeningHandler) Rank(c *fiber.Ctx) error {
	var req rankRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid json")
	}
	threshold := h.defaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	items, err := h.svc.Rank(c.UserContext(), req.Query, threshold)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.DataResponse[screening.RankedMatch]{Data: items})
}
