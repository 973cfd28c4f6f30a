package dict

import (
	"github.com/gofiber/fiber/v2"

	"hr-screening-backend/controllers"
	jobprovider "hr-screening-backend/lib/dicts/job"
	apimodels "hr-screening-backend/models/api"
	dictapimodels "hr-screening-backend/models/api/dict"
)

type jobDictApiController struct {
	controllers.BaseAPIController
}

func InitJobDictApiRouters(app *fiber.App) {
	controller := jobDictApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Post("", controller.jobSave)
		router.Get("list", controller.jobList)
	})
}

// @Summary Создание или обновление
// @Tags Справочник. Вакансии
// @Description Класс должности и отдел; повторное сохранение обновляет отдел
// @Param	body body	 dictapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/job [post]
func (c *jobDictApiController) jobSave(ctx *fiber.Ctx) error {
	var payload dictapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := jobprovider.Instance.Save(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения записи в справочнике вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список
// @Tags Справочник. Вакансии
// @Description Список
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/job/list [get]
func (c *jobDictApiController) jobList(ctx *fiber.Ctx) error {
	list, err := jobprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка из справочника вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
