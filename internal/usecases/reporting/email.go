package reporting

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/salesmetrics/kpi-reporting-api/internal/config"
	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/metricizing"
	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

// EmailReporter calcula um snapshot, gera o PDF e envia o relatório por e-mail
type EmailReporter interface {
	SendReport(ctx context.Context) error
}

// mailDialer abstrai o envio SMTP para permitir testes sem servidor real
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailReporter struct {
	engine       metricizing.Engine
	pdfGenerator PDFGenerator
	smtpCfg      config.SMTP
	reportCfg    config.Report
	dialer       mailDialer
}

// NewEmailReporter cria o serviço de envio de relatórios por e-mail
func NewEmailReporter(
	engine metricizing.Engine,
	pdfGenerator PDFGenerator,
	cfg *config.Config,
) EmailReporter {
	return &emailReporter{
		engine:       engine,
		pdfGenerator: pdfGenerator,
		smtpCfg:      cfg.SMTP,
		reportCfg:    cfg.Report,
		dialer: gomail.NewDialer(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Sender,
			cfg.SMTP.Password,
		),
	}
}

func (r *emailReporter) SendReport(ctx context.Context) error {
	if len(r.smtpCfg.Recipients) == 0 {
		return errors.New("nenhum destinatário configurado para o relatório")
	}

	if r.smtpCfg.Sender == "" {
		return errors.New("remetente SMTP não configurado")
	}

	snapshot, err := r.engine.ComputeSnapshot(ctx)
	if err != nil {
		return errors.Wrap(err, "erro ao calcular métricas para o relatório por e-mail")
	}

	pdfPath, err := r.pdfGenerator.Generate(snapshot)
	if err != nil {
		return errors.Wrap(err, "erro ao gerar o PDF do relatório")
	}

	message := gomail.NewMessage()
	message.SetHeader("From", r.smtpCfg.Sender)
	message.SetHeader("To", r.smtpCfg.Recipients...)
	message.SetHeader("Subject", fmt.Sprintf(
		"Relatório de KPIs de Vendas - %s",
		snapshot.GeneratedAt.Format("02/01/2006"),
	))
	message.SetBody("text/html", composeHTMLBody(snapshot, r.reportCfg.DashboardURL))
	message.Attach(pdfPath)

	if err := r.dialer.DialAndSend(message); err != nil {
		return errors.Wrap(err, "erro ao enviar o relatório por e-mail")
	}

	logrus.WithFields(logrus.Fields{
		"recipients": len(r.smtpCfg.Recipients),
		"pdf":        pdfPath,
	}).Info("Relatório de KPIs enviado por e-mail com sucesso")

	return nil
}

// composeHTMLBody monta o corpo HTML do e-mail com os destaques do snapshot
// e o link para o dashboard
func composeHTMLBody(snapshot *domain.MetricSnapshot, dashboardURL string) string {
	var b strings.Builder

	b.WriteString("<html><body>")
	b.WriteString("<h2>Relatório de KPIs de Vendas</h2>")
	b.WriteString(fmt.Sprintf("<p>Gerado em %s</p>", snapshot.GeneratedAt.Format("02/01/2006 15:04")))

	b.WriteString("<ul>")
	b.WriteString(fmt.Sprintf("<li><b>Receita Total:</b> %s</li>", formatMoney(snapshot.TotalRevenue)))
	b.WriteString(fmt.Sprintf("<li><b>Lucro Total:</b> %s</li>", formatMoney(snapshot.TotalProfit)))
	b.WriteString(fmt.Sprintf("<li><b>Margem de Lucro:</b> %s</li>", formatPct(snapshot.ProfitMarginPct)))
	b.WriteString(fmt.Sprintf("<li><b>CAC:</b> %s</li>", formatMoney(snapshot.CustomerAcquisitionCost)))

	if snapshot.CustomerStatus != nil {
		b.WriteString(fmt.Sprintf(
			"<li><b>Retenção (%d → %d):</b> %.1f%% (%d ativos, %d perdidos)</li>",
			snapshot.CustomerStatus.PriorYear,
			snapshot.CustomerStatus.LatestYear,
			snapshot.CustomerStatus.RetentionPct,
			snapshot.CustomerStatus.ActiveCustomers,
			snapshot.CustomerStatus.ChurnedCustomers,
		))
	}

	if snapshot.Highlights != nil {
		if snapshot.Highlights.TopProductLine != "" {
			b.WriteString(fmt.Sprintf(
				"<li><b>Linha de Produto Destaque:</b> %s</li>",
				snapshot.Highlights.TopProductLine,
			))
		}
		if snapshot.Highlights.TopCountry != "" {
			b.WriteString(fmt.Sprintf(
				"<li><b>País Destaque:</b> %s (%s)</li>",
				snapshot.Highlights.TopCountry,
				formatMoney(snapshot.Highlights.TopCountryRevenue),
			))
		}
	}
	b.WriteString("</ul>")

	b.WriteString("<p>O relatório completo segue em anexo (PDF).</p>")

	if dashboardURL != "" {
		b.WriteString(fmt.Sprintf(
			"<p><a href=\"%s\">Acesse o dashboard interativo</a></p>",
			dashboardURL,
		))
	}

	b.WriteString("</body></html>")

	return b.String()
}
