package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agronat/internal/infra"
	"agronat/internal/model"
	"agronat/internal/service"

	"github.com/rs/zerolog"
)

const (
	// JobReporteMensual generates the sales spreadsheet and mails it.
	JobReporteMensual = "reporte_mensual"
	// JobAlertaStock mails the low stock warning raised after a sale.
	JobAlertaStock = "alerta_stock"
)

type reportePayload struct {
	Year int `json:"year"`
	Mes  int `json:"mes"`
}

// reportePeriod resolves the payload to a concrete month. Without one, it
// falls back to the month that just ended, which is what the first-of-month
// cron trigger wants.
func reportePeriod(now time.Time, p reportePayload) (int, int) {
	if p.Mes >= 1 && p.Mes <= 12 {
		year := p.Year
		if year == 0 {
			year = now.Year()
		}
		return year, p.Mes
	}
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return prev.Year(), int(prev.Month())
}

type stockItem struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

type alertaStockPayload struct {
	Productos []stockItem `json:"productos"`
}

// Jobs holds the handlers wired into the pool.
type Jobs struct {
	informes    *service.InformeService
	mailer      *infra.Mailer
	storagePath string
	recipient   string
	log         zerolog.Logger
}

func NewJobs(informes *service.InformeService, mailer *infra.Mailer, storagePath, recipient string, log zerolog.Logger) *Jobs {
	return &Jobs{informes: informes, mailer: mailer, storagePath: storagePath, recipient: recipient, log: log}
}

// RegisterAll binds every job handler to the pool.
func (j *Jobs) RegisterAll(pool *Pool) {
	pool.Register(JobReporteMensual, j.HandleReporteMensual)
	pool.Register(JobAlertaStock, j.HandleAlertaStock)
}

// HandleReporteMensual builds the sales spreadsheet for one month, stores it
// on disk and mails it to the configured recipient when SMTP is available.
func (j *Jobs) HandleReporteMensual(ctx context.Context, payload json.RawMessage) error {
	var p reportePayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("payload de reporte invalido: %w", err)
		}
	}
	year, mes := reportePeriod(time.Now(), p)

	data, name, err := j.informes.ReporteVentasXLSX(ctx, year, mes)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(j.storagePath, 0o755); err != nil {
		return err
	}
	path := filepath.Join(j.storagePath, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	j.log.Info().Str("archivo", path).Msg("reporte mensual guardado")

	if j.mailer != nil && j.mailer.Enabled() && j.recipient != "" {
		subject := fmt.Sprintf("Reporte de ventas %02d/%d", mes, year)
		body := "Se adjunta el reporte de ventas generado automaticamente."
		if err := j.mailer.Send([]string{j.recipient}, subject, body, map[string][]byte{name: data}); err != nil {
			return fmt.Errorf("enviar reporte por mail: %w", err)
		}
	}
	return nil
}

// HandleAlertaStock mails the list of products at or below the threshold.
func (j *Jobs) HandleAlertaStock(_ context.Context, payload json.RawMessage) error {
	var p alertaStockPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("payload de alerta invalido: %w", err)
	}
	if len(p.Productos) == 0 {
		return nil
	}
	if j.mailer == nil || !j.mailer.Enabled() || j.recipient == "" {
		j.log.Warn().Int("productos", len(p.Productos)).Msg("alerta de stock sin SMTP configurado")
		return nil
	}

	var b strings.Builder
	b.WriteString("Productos con stock bajo:\n\n")
	for _, item := range p.Productos {
		fmt.Fprintf(&b, "- %s (%s): %d unidades\n", item.Name, item.Code, item.Quantity)
	}
	return j.mailer.Send([]string{j.recipient}, "Alerta de stock bajo", b.String(), nil)
}

// StockNotifier enqueues low stock alerts; it satisfies the sale service's
// notifier contract without blocking the sale path.
type StockNotifier struct {
	dispatcher *Dispatcher
	log        zerolog.Logger
}

func NewStockNotifier(dispatcher *Dispatcher, log zerolog.Logger) *StockNotifier {
	return &StockNotifier{dispatcher: dispatcher, log: log}
}

func (n *StockNotifier) LowStock(productos []model.Producto) {
	payload := alertaStockPayload{Productos: make([]stockItem, 0, len(productos))}
	for _, p := range productos {
		payload.Productos = append(payload.Productos, stockItem{
			Name:     p.Name,
			Code:     p.Code,
			Quantity: p.Quantity,
		})
	}
	data, err := json.Marshal(payload)
	if err != nil {
		n.log.Warn().Err(err).Msg("no se pudo serializar la alerta de stock")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.dispatcher.Enqueue(ctx, Job{Type: JobAlertaStock, Payload: data}); err != nil {
		n.log.Warn().Err(err).Msg("no se pudo encolar la alerta de stock")
	}
}
