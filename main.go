package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renocalc/collections"
	"renocalc/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Accounts ─────────────────────────────────────────────
		se.Router.POST("/register", handlers.HandleRegister(app))
		se.Router.POST("/password", handlers.HandleUpdatePassword(app))

		// ── Material catalog ─────────────────────────────────────
		se.Router.GET("/materials", handlers.HandleMaterialList(app))
		se.Router.POST("/materials", handlers.HandleMaterialCreate(app))
		se.Router.POST("/materials/import", handlers.HandleMaterialImport(app))
		se.Router.POST("/materials/import-pricelist", handlers.HandlePriceListImport(app))
		se.Router.GET("/materials/template", handlers.HandleMaterialTemplateDownload(app))
		se.Router.GET("/materials/export", handlers.HandleMaterialExport(app))
		se.Router.POST("/materials/{id}", handlers.HandleMaterialUpdate(app))
		se.Router.DELETE("/materials/{id}", handlers.HandleMaterialDelete(app))

		// ── Calculations ─────────────────────────────────────────
		se.Router.POST("/calculations", handlers.HandleCalculationCreate(app))
		se.Router.GET("/calculations", handlers.HandleCalculationList(app))
		se.Router.GET("/calculations/{id}/export/excel", handlers.HandleCalculationExportExcel(app))
		se.Router.GET("/calculations/{id}/export/pdf", handlers.HandleCalculationExportPDF(app))
		se.Router.POST("/calculations/{id}/activity", handlers.HandleCalculationActivity(app))
		se.Router.GET("/calculations/{id}", handlers.HandleCalculationView(app))
		se.Router.DELETE("/calculations/{id}", handlers.HandleCalculationDelete(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
