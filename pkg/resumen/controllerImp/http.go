package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"riegos/pkg/fechas"
	svc "riegos/pkg/resumen/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ResumenCtrl struct{ s svc.ResumenService }

func New(s svc.ResumenService) *ResumenCtrl { return &ResumenCtrl{s: s} }

func (h *ResumenCtrl) Semanal(c echo.Context) error {
	year, week, err := semanaParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	out, err := h.s.Semanal(year, week)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ResumenCtrl) ExportarExcel(c echo.Context) error {
	year, week, err := semanaParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	b, err := h.s.ExportarExcel(year, week)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	filename := fmt.Sprintf("resumen_riegos_semana_%d_%d.xlsx", week, year)
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Blob(http.StatusOK, xlsxMIME, b)
}

// semanaParam reads ?semana=YYYY-WW, defaulting to the current week.
func semanaParam(c echo.Context) (int, int, error) {
	semana := c.QueryParam("semana")
	if semana == "" {
		semana = fechas.SemanaActual()
	}
	return fechas.ParseSemana(semana)
}
