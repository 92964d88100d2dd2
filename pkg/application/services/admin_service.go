package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/akarpov/supplychain/pkg/application/dto"
	"github.com/akarpov/supplychain/pkg/domain/entities"
)

// DefaultLowStockThreshold flags any stock entry below this quantity
const DefaultLowStockThreshold = 5

// DefaultForecastWindow is the SMA window used by PredictDemand
const DefaultForecastWindow = 3

// ReportSink accepts a whole report document, replacing the previous one
type ReportSink interface {
	Write(body string) error
}

// AuditLog accepts one event line at a time, append-only
type AuditLog interface {
	Log(message string) error
}

// ReportWorker runs report tasks one at a time in submission order
type ReportWorker interface {
	Submit(task func()) error
	Shutdown()
}

// Administrator holds the actors of the chain grouped by role and
// exposes reporting and forecasting over all of them. Report
// generation runs on a single background worker and never blocks the
// caller; everything else is synchronous and read-only.
type Administrator struct {
	Name string
	ID   int

	usersByRole map[entities.Role][]*entities.Actor
	worker      ReportWorker
	reports     ReportSink
	audit       AuditLog
	forecasts   *ForecastService
	logger      *zap.Logger
}

// NewAdministrator creates an administration facade
func NewAdministrator(name string, id int, w ReportWorker, reports ReportSink, audit AuditLog, forecasts *ForecastService, logger *zap.Logger) *Administrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	usersByRole := make(map[entities.Role][]*entities.Actor, len(entities.Roles))
	for _, role := range entities.Roles {
		usersByRole[role] = []*entities.Actor{}
	}
	return &Administrator{
		Name:        name,
		ID:          id,
		usersByRole: usersByRole,
		worker:      w,
		reports:     reports,
		audit:       audit,
		forecasts:   forecasts,
		logger:      logger,
	}
}

// AddUser appends actors to a role's collection, preserving insertion
// order for deterministic report output
func (a *Administrator) AddUser(role entities.Role, actors ...*entities.Actor) error {
	if _, ok := a.usersByRole[role]; !ok {
		return fmt.Errorf("%w: %s", entities.ErrUnknownRole, role)
	}
	a.usersByRole[role] = append(a.usersByRole[role], actors...)
	return nil
}

// StockLevels returns every actor's stock summary, grouped by role in
// enum order and by actor in insertion order. Pure read.
func (a *Administrator) StockLevels() []dto.RoleStock {
	levels := make([]dto.RoleStock, 0, len(entities.Roles))
	for _, role := range entities.Roles {
		group := dto.RoleStock{Role: role}
		for _, actor := range a.usersByRole[role] {
			group.Actors = append(group.Actors, dto.ActorStock{
				ActorName: actor.Name,
				Stock:     actor.Ledger.Snapshot(),
			})
		}
		levels = append(levels, group)
	}
	return levels
}

// LowStockAlerts flags every (actor, product) pair with quantity below
// threshold. Pure read.
func (a *Administrator) LowStockAlerts(threshold entities.Quantity) []dto.LowStockAlert {
	var alerts []dto.LowStockAlert
	for _, role := range entities.Roles {
		for _, actor := range a.usersByRole[role] {
			for _, entry := range actor.Ledger.Snapshot() {
				if entry.Quantity < threshold {
					alerts = append(alerts, dto.LowStockAlert{
						ActorName: actor.Name,
						Product:   entry.Product,
						Quantity:  entry.Quantity,
					})
				}
			}
		}
	}
	return alerts
}

// GenerateReport submits a report task to the background worker and
// returns without waiting for it. The stock snapshot is taken when the
// task starts, not at submission. Write failures are logged to the
// audit log and swallowed; they never reach a caller.
func (a *Administrator) GenerateReport() error {
	err := a.worker.Submit(func() {
		body := RenderReport(a.StockLevels())
		if err := a.reports.Write(body); err != nil {
			a.logger.Error("report write failed", zap.Error(err))
			a.logAudit("Error writing report: " + err.Error())
			return
		}
		a.logger.Info("inventory report written")
		a.logAudit("Inventory report generated successfully.")
	})
	if err != nil {
		return fmt.Errorf("submitting report task: %w", err)
	}
	a.logger.Info("report task submitted")
	return nil
}

func (a *Administrator) logAudit(message string) {
	if err := a.audit.Log(message); err != nil {
		a.logger.Error("audit log write failed", zap.Error(err))
	}
}

// PredictDemand forecasts weekly demand across all actors of all roles
// with the default window. An empty map means no sales data, which is
// distinct from a product forecast of zero.
func (a *Administrator) PredictDemand() (map[string]float64, error) {
	var actors []*entities.Actor
	for _, role := range entities.Roles {
		actors = append(actors, a.usersByRole[role]...)
	}
	return a.forecasts.Predict(actors, DefaultForecastWindow)
}

// Shutdown drains the background worker. Call before process exit so
// queued reports complete; no report file is left partially written.
func (a *Administrator) Shutdown() {
	a.worker.Shutdown()
	a.logger.Info("administrator shut down")
}

// RenderReport renders role-grouped stock summaries as the report
// document: fixed header, one block per role, one aligned stock table
// per actor
func RenderReport(levels []dto.RoleStock) string {
	var b strings.Builder
	b.WriteString("--- System Inventory Report ---\n\n")
	for _, group := range levels {
		fmt.Fprintf(&b, "Role: %s\n", group.Role)
		for _, actor := range group.Actors {
			fmt.Fprintf(&b, "User: %s\n%s\n", actor.ActorName, actor.Format())
		}
	}
	return b.String()
}
