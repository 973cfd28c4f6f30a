package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"hr-screening-backend/controllers"
	"hr-screening-backend/lib/applicant"
	"hr-screening-backend/lib/feedback"
	"hr-screening-backend/lib/screening/oracle"
	"hr-screening-backend/middleware"
	apimodels "hr-screening-backend/models/api"
	screeningapimodels "hr-screening-backend/models/api/screening"
)

type screeningApiController struct {
	controllers.BaseAPIController
}

func InitScreeningApiRouters(app *fiber.App, maxPayloadBytes int64) {
	controller := screeningApiController{}
	app.Route("screening", func(router fiber.Router) {
		router.Use(middleware.WithBodyLimit(maxPayloadBytes))
		router.Post("applications", controller.applicationCreate)
		router.Put("applications/:id/review", controller.applicationReview)
		router.Post("feedback", controller.feedbackCreate)
	})
}

// @Summary Новая заявка
// @Tags Скрининг
// @Description Сохранение заявки с ответом классификатора резюме
// @Param	body body	 screeningapimodels.ApplicationRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/applications [post]
func (c *screeningApiController) applicationCreate(ctx *fiber.Ctx) error {
	var payload screeningapimodels.ApplicationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicant.Instance.Ingest(ctx.UserContext(), payload)
	if err != nil {
		var ve *oracle.ValidationError
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(ve.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Решение по заявке
// @Tags Скрининг
// @Description Решение ревьюера по заявке
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 screeningapimodels.ReviewRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/applications/{id}/review [put]
func (c *screeningApiController) applicationReview(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload screeningapimodels.ReviewRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicant.Instance.Review(ctx.UserContext(), id, payload)
	if err != nil {
		if errors.Is(err, applicant.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения решения по заявке")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Отзыв ревьюера
// @Tags Скрининг
// @Description Отзыв ревьюера о рекомендации классификатора
// @Param	body body	 screeningapimodels.FeedbackRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=screeningapimodels.FeedbackView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/screening/feedback [post]
func (c *screeningApiController) feedbackCreate(ctx *fiber.Ctx) error {
	var payload screeningapimodels.FeedbackRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := feedback.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		if errors.Is(err, applicant.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения отзыва ревьюера")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
