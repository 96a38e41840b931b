package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/funding-dashboard-api/internal/domain"
	"github.com/vfg2006/funding-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/funding-dashboard-api/pkg/log"
	"github.com/vfg2006/funding-dashboard-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDatasetRefresh = "dataset-refresh"
)

//go:generate mockgen -source=cron.go -destination=mocks/cron.go -package=mocks

// SyncService é o contrato comum das cron jobs disparáveis manualmente
type SyncService interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DatasetRefreshService SyncService
}

func (s CronJobServices) byType(cronType string) (SyncService, bool) {
	switch cronType {
	case CronJobTypeDatasetRefresh:
		return s.DatasetRefreshService, true
	default:
		return nil, false
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Apenas administradores podem executar cron jobs
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		service, known := services.byType(cronType)
		if !known {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-refresh", nil)
			return
		}
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do dataset não disponível", nil)
			return
		}

		if !service.TriggerManualSync() {
			logger.WithField("type", cronType).Warn("cron: execução manual ignorada, já existe uma em andamento")
			apiErrors.WriteError(w, apiErrors.ErrSchedulerBusy, "Atualização já em andamento", nil)
			return
		}

		logger.WithFields(log.Fields{
			"type":       cronType,
			"user_email": userClaims.UserEmail,
		}).Info("cron: execução manual iniciada")

		writeJSONStatus(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status da cron job informada na URL
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		service, known := services.byType(cronType)
		if !known {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-refresh", nil)
			return
		}
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do dataset não disponível", nil)
			return
		}

		writeJSON(w, r, map[string]any{
			cronType: service.GetStatus(),
		})
	}
}
