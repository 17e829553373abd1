package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/api/http/presenter"
	"github.com/artem13815/hr/screening/pkg/candidate"
	"github.com/artem13815/hr/screening/pkg/screening"
)

type CandidatesHandler struct {
	svc      screening.UseCase
	maxBytes int64
	log      *zap.Logger
}

func NewCandidatesHandler(svc screening.UseCase, maxBytes int64, log *zap.Logger) *CandidatesHandler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &CandidatesHandler{svc: svc, maxBytes: maxBytes, log: log}
}

// Upload принимает файл резюме, извлекает текст и сохраняет карточку кандидата.
// @Summary Загрузить резюме
// @Tags    candidates
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF/DOCX/TXT); поле resume тоже принимается"
// @Security BearerAuth
// @Success 201 {object} candidate.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 415 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse
// @Router  /candidates [post]
func (h *CandidatesHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		fh, err = c.FormFile("resume")
	}
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or txt)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()
	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	rec, err := h.svc.Ingest(c.UserContext(), screening.Upload{
		Filename: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusCreated, rec)
}

// List возвращает загруженных кандидатов, новые первыми.
// @Summary Список кандидатов
// @Tags    candidates
// @Produce json
// @Param   limit  query int false "1..200, по умолчанию 50"
// @Param   offset query int false "смещение"
// @Security BearerAuth
// @Success 200 {object} presenter.DataResponse[candidate.Record]
// @Router  /candidates [get]
func (h *CandidatesHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	items, err := h.svc.List(c.UserContext(), limit, offset)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, presenter.DataResponse[candidate.Record]{
		Data:   items,
		Limit:  limit,
		Offset: offset,
	})
}

// Get
// @Summary Карточка кандидата
// @Tags    candidates
// @Produce json
// @Param   id path string true "ID кандидата (UUID)"
// @Security BearerAuth
// @Success 200 {object} candidate.Record
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [get]
func (h *CandidatesHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// Download отдаёт исходный файл резюме.
// @Summary Скачать файл резюме
// @Tags    candidates
// @Produce application/octet-stream
// @Param   id path string true "ID кандидата (UUID)"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/file [get]
func (h *CandidatesHandler) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	rec, data, err := h.svc.File(c.UserContext(), id)
	if err != nil {
		return presenter.Fail(c, h.log, err)
	}
	c.Attachment(rec.Filename)
	if rec.MimeType != "" {
		c.Set(fiber.HeaderContentType, rec.MimeType)
	}
	return c.Status(http.StatusOK).Send(data)
}

// Delete удаляет кандидата и его файл.
// @Summary Удалить кандидата
// @Tags    candidates
// @Param   id path string true "ID кандидата (UUID)"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [delete]
func (h *CandidatesHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return presenter.Fail(c, h.log, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
