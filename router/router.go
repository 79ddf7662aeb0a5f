package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	riegoCtrl interface {
		Portada(echo.Context) error
		Registrar(echo.Context) error
		RegistrosHoy(echo.Context) error
		HistorialCompleto(echo.Context) error
		Eliminar(echo.Context) error
		Editar(echo.Context) error
		Estadisticas(echo.Context) error
		Modulos(echo.Context) error
	},
	resumenCtrl interface {
		Semanal(echo.Context) error
		ExportarExcel(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.GET("/", riegoCtrl.Portada)
	e.POST("/registrar", riegoCtrl.Registrar)
	e.GET("/registros-hoy", riegoCtrl.RegistrosHoy)
	e.GET("/historial-completo", riegoCtrl.HistorialCompleto)
	e.DELETE("/eliminar/:id", riegoCtrl.Eliminar)
	e.PUT("/editar/:id", riegoCtrl.Editar)
	e.GET("/estadisticas", riegoCtrl.Estadisticas)
	e.GET("/modulos", riegoCtrl.Modulos)

	e.GET("/resumen-semanal", resumenCtrl.Semanal)
	e.GET("/exportar-excel", resumenCtrl.ExportarExcel)

	return e
}
