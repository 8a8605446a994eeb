package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/salesmetrics/kpi-reporting-api/internal/config"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportSyncService gerencia o agendamento e envio periódico do relatório
// de KPIs por e-mail
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	emailReporter       reporting.EmailReporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewReportSyncService cria uma nova instância do serviço de envio periódico
// de relatórios
func NewReportSyncService(
	emailReporter reporting.EmailReporter,
	appConfig *config.Config,
) *ReportSyncService {
	reportConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"sync_enabled":  reportConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:     scheduler,
		config:        reportConfig,
		emailReporter: emailReporter,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Envio periódico de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de envio de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReport(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envio de relatórios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de envio de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncReport calcula o snapshot, gera o PDF e envia o relatório por e-mail
func (s *ReportSyncService) syncReport(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Envio de relatório já em andamento, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando envio do relatório de KPIs por e-mail")

	if err := s.emailReporter.SendReport(ctx); err != nil {
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()

		logrus.WithError(err).Error("Erro ao enviar o relatório de KPIs por e-mail")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithField("duration", time.Since(startTime).String()).
		Info("Envio do relatório de KPIs concluído")
}

// TriggerManualSync inicia manualmente um envio de relatório
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Envio de relatório já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando envio manual do relatório de KPIs")
	go s.syncReport(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
