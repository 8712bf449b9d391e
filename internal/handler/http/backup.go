package http

import (
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
	backupService "github.com/workpulse/workpulse-backend-go/internal/service/backup"
)

type BackupHandler interface {
	Run(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type backupHandlerImpl struct {
	backupService backupService.BackupService
}

func NewBackupHandler(svc backupService.BackupService) BackupHandler {
	return &backupHandlerImpl{backupService: svc}
}

// Run implements BackupHandler.
func (h *backupHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	result, err := h.backupService.Run(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Backup completed", result)
}

// List implements BackupHandler.
func (h *backupHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.backupService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
