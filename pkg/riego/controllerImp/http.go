package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"riegos/pkg/fechas"
	svc "riegos/pkg/riego/service"
)

type RiegoCtrl struct {
	s       svc.RiegoService
	modulos []string
}

func New(s svc.RiegoService, modulos []string) *RiegoCtrl {
	return &RiegoCtrl{s: s, modulos: modulos}
}

type registrarReq struct {
	Modulos    []string `json:"modulos"`
	TiposRiego []string `json:"tipos_riego" validate:"dive,oneof=agua comida"`
	Fecha      string   `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

type editarReq struct {
	Modulo    string `json:"modulo"`
	TipoRiego string `json:"tipo_riego" validate:"omitempty,oneof=agua comida"`
}

func (h *RiegoCtrl) Registrar(c echo.Context) error {
	var req registrarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	res, err := h.s.Registrar(req.Modulos, req.TiposRiego, req.Fecha)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"message":   res.Message,
		"registros": res.Registros,
	})
}

func (h *RiegoCtrl) RegistrosHoy(c echo.Context) error {
	out, err := h.s.PorFecha(c.QueryParam("fecha"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RiegoCtrl) HistorialCompleto(c echo.Context) error {
	out, err := h.s.Historial()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RiegoCtrl) Eliminar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.s.Eliminar(uint(id)); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Registro eliminado correctamente",
	})
}

func (h *RiegoCtrl) Editar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req editarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.s.Editar(uint(id), req.Modulo, req.TipoRiego); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Registro actualizado correctamente",
	})
}

func (h *RiegoCtrl) Estadisticas(c echo.Context) error {
	out, err := h.s.Estadisticas()
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RiegoCtrl) Modulos(c echo.Context) error {
	return c.JSON(http.StatusOK, h.modulos)
}

// Portada returns what the registration screen needs: today's date spelled
// out in Spanish plus the módulo catalogue.
func (h *RiegoCtrl) Portada(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"fecha":   fechas.FechaLarga(time.Now().In(fechas.Zona)),
		"modulos": h.modulos,
	})
}

// jsonError maps service errors to the {"error": ...} body: validation
// problems are the caller's fault, everything else is a server/store fault.
func jsonError(c echo.Context, err error) error {
	if errors.Is(err, svc.ErrSinModulos) || errors.Is(err, svc.ErrSinTipos) || errors.Is(err, svc.ErrDatosIncompletos) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
