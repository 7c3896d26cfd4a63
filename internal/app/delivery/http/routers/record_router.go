package routers

import (
	"afiatrack-service/internal/app/delivery/http/controllers"
	"afiatrack-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes[T models.Record](router chi.Router, recordController *controllers.RecordController[T]) {
	router.Get("/", recordController.List)
	router.Post("/", recordController.Create)
	router.Post("/batch", recordController.Batch)
	router.Put("/{id}", recordController.Update)
	router.Delete("/{id}", recordController.Delete)
}

func attachDocumentRoutes(router chi.Router, documentController *controllers.DocumentController) {
	attachRecordRoutes(router, documentController.RecordController)
	router.Post("/{id}/file", documentController.AttachFile)
}
