package apiv1

import (
	"bytes"
	"fmt"
	"path"
	"time"

	"github.com/gofiber/fiber/v2"

	"hr-screening-backend/controllers"
	"hr-screening-backend/lib/analytics"
	jsonexport "hr-screening-backend/lib/export/json"
	pdfexport "hr-screening-backend/lib/export/pdf"
	xlsexport "hr-screening-backend/lib/export/xls"
	filestorage "hr-screening-backend/lib/file-storage"
	apimodels "hr-screening-backend/models/api"
	analyticsapimodels "hr-screening-backend/models/api/analytics"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Put("report", controller.report)
		router.Put("report_export", controller.reportExport)
		router.Put("report_export_xls", controller.reportExportXls)
		router.Put("report_export_pdf", controller.reportExportPdf)
		router.Put("report_archive", controller.reportArchive)
		router.Get("report_archive", controller.reportArchiveList)
		router.Get("report_archive/file", controller.reportArchiveFile)
	})
}

func (c *analyticsApiController) parseRequest(ctx *fiber.Ctx) (analyticsapimodels.ReportRequest, error) {
	var payload analyticsapimodels.ReportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return payload, err
	}
	if err := payload.Validate(); err != nil {
		return payload, err
	}
	return payload, nil
}

// @Summary Отчет по скринингу кандидатов
// @Tags Аналитика
// @Description Показатели классификатора, тренды, разбивки, анализ смещений и переопределений
// @Param	body body	 analyticsapimodels.ReportRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=engine.Report}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/report [put]
func (c *analyticsApiController) report(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	report, err := analytics.Instance.Report(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка построения отчета")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(report))
}

// @Summary Отчет. Выгрузить в JSON
// @Tags Аналитика
// @Description Отчет. Выгрузить в JSON
// @Param	body body	 analyticsapimodels.ReportRequest	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/report_export [put]
func (c *analyticsApiController) reportExport(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, fileName, err := analytics.Instance.ExportJSON(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки отчета в JSON")
	}
	return sendFile(ctx, data, fileName, jsonexport.ContentType)
}

// @Summary Отчет. Выгрузить в Excel
// @Tags Аналитика
// @Description Отчет. Выгрузить в Excel
// @Param	body body	 analyticsapimodels.ReportRequest	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/report_export_xls [put]
func (c *analyticsApiController) reportExportXls(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.ExportXls(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки отчета в Excel")
	}
	fileName := fmt.Sprintf("analytics-report-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, xlsexport.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Отчет. Выгрузить в PDF
// @Tags Аналитика
// @Description Краткая сводка отчета в PDF
// @Param	body body	 analyticsapimodels.ReportRequest	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/report_export_pdf [put]
func (c *analyticsApiController) reportExportPdf(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.ExportPdf(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки отчета в PDF")
	}
	fileName := fmt.Sprintf("analytics-report-%v.pdf", time.Now().Format("20060102-150405"))
	return sendFile(ctx, data, fileName, pdfexport.ContentType)
}

// @Summary Отчет. Сохранить в архив
// @Tags Аналитика
// @Description Выгрузка отчета в JSON и сохранение в S3
// @Param	body body	 analyticsapimodels.ReportRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.ArchiveView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/report_archive [put]
func (c *analyticsApiController) reportArchive(ctx *fiber.Ctx) error {
	payload, err := c.parseRequest(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := analytics.Instance.Archive(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения отчета в архив")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Архив отчетов
// @Tags Аналитика
// @Description Последние сохраненные отчеты
// @Param   limit	query	int	false	"количество записей, не более 100"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.ArchiveView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/report_archive [get]
func (c *analyticsApiController) reportArchiveList(ctx *fiber.Ctx) error {
	list, err := analytics.Instance.ListArchives(ctx.QueryInt("limit", 20))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения архива отчетов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Архив отчетов. Скачать
// @Tags Аналитика
// @Description Скачать сохраненный отчет
// @Param   object_key	query	string	true	"ключ объекта"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/analytics/report_archive/file [get]
func (c *analyticsApiController) reportArchiveFile(ctx *fiber.Ctx) error {
	objectKey := ctx.Query("object_key")
	if objectKey == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан ключ объекта"))
	}
	data, err := filestorage.Instance.GetFile(ctx.UserContext(), objectKey)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения отчета из архива")
	}
	return sendFile(ctx, data, path.Base(objectKey), jsonexport.ContentType)
}

func sendFile(ctx *fiber.Ctx, data []byte, fileName, contentType string) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(bytes.NewReader(data))
}
