package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"riegos/config"
	"riegos/database"
	"riegos/pkg/modulos"
	"riegos/pkg/validation"
	"riegos/router"

	healthCtrlImp "riegos/pkg/health/controllerImp"

	riegoCtrlImp "riegos/pkg/riego/controllerImp"
	riegoRepoImp "riegos/pkg/riego/repositoryImp"
	riegoSvcImp "riegos/pkg/riego/serviceImp"

	resumenCtrlImp "riegos/pkg/resumen/controllerImp"
	resumenSvcImp "riegos/pkg/resumen/serviceImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate; empty DB_PATH means run without storage
	var db *gorm.DB
	if cfg.DBPath != "" {
		db = database.OpenSQLite(cfg.DBPath)
	} else {
		log.Printf("[db] DB_PATH vacío: modo sin base de datos")
	}

	// 3) Módulo catalogue
	mods := modulos.Cargar(cfg.ModulosCSV)
	log.Printf("[modulos] %d módulos cargados", len(mods))

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Validator = validation.New()

	// 5) Repos/Services/Controllers
	repo := riegoRepoImp.New(db)
	rSvc := riegoSvcImp.New(repo)
	sSvc := resumenSvcImp.New(repo)

	rCtrl := riegoCtrlImp.New(rSvc, mods)
	sCtrl := resumenCtrlImp.New(sSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(e, rCtrl, sCtrl, hCtrl)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
