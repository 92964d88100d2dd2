package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/akarpov/supplychain/pkg/application/services"
	"github.com/akarpov/supplychain/pkg/domain/entities"
	"github.com/akarpov/supplychain/pkg/infrastructure/report"
	"github.com/akarpov/supplychain/pkg/infrastructure/repositories/memory"
	"github.com/akarpov/supplychain/pkg/infrastructure/scanner"
	"github.com/akarpov/supplychain/pkg/infrastructure/worker"
	"github.com/akarpov/supplychain/pkg/interfaces/cli/output"
)

// Config holds configuration for the demo command
type Config struct {
	ReportPath    string
	AuditLogPath  string
	ScanImagePath string
}

// DemoCommand seeds a small chain, runs an order through the pipeline,
// and exercises reporting, forecasting and scan-driven restock
type DemoCommand struct {
	config Config
	logger *zap.Logger
}

// NewDemoCommand creates a demo command with the given configuration
func NewDemoCommand(config Config, logger *zap.Logger) *DemoCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DemoCommand{config: config, logger: logger}
}

// Execute runs the demo scenario
func (c *DemoCommand) Execute(ctx context.Context) error {
	laptop, err := entities.NewProduct("Laptop", "Electronics", 1)
	if err != nil {
		return err
	}
	phone, err := entities.NewProduct("Phone", "Electronics", 2)
	if err != nil {
		return err
	}
	tablet, err := entities.NewProduct("Tablet", "Electronics", 3)
	if err != nil {
		return err
	}

	retailer, err := c.seedActor("Retailer1", 101, entities.Retailer,
		[]entities.Product{*laptop, *phone}, []entities.Quantity{5, 10})
	if err != nil {
		return err
	}
	warehouse, err := c.seedActor("Warehouse1", 201, entities.WarehouseOperator,
		[]entities.Product{*laptop, *phone, *tablet}, []entities.Quantity{10, 20, 15})
	if err != nil {
		return err
	}
	supplier, err := c.seedActor("Supplier1", 301, entities.ProductSupplier,
		[]entities.Product{*laptop, *phone, *tablet}, []entities.Quantity{50, 50, 50})
	if err != nil {
		return err
	}
	retailer.Warehouse = warehouse
	warehouse.Suppliers = []*entities.Actor{supplier}

	c.seedSalesHistory(retailer, *laptop, *phone)

	fulfillment := services.NewFulfillmentService(c.logger)
	pricedLaptop, err := entities.NewPricedProduct(*laptop, decimal.NewFromInt(1000))
	if err != nil {
		return err
	}
	if _, err := fulfillment.SubmitOrder(retailer, *pricedLaptop, 5); err != nil {
		return err
	}
	results, err := fulfillment.FillOrders(warehouse)
	if err != nil {
		return err
	}
	for _, result := range results {
		fmt.Printf("Order %s: %s (%d/%d units)\n", result.OrderID, result.Status, result.Filled, result.Requested)
	}

	w := worker.New(16, c.logger)
	admin := services.NewAdministrator("Admin1", 401, w,
		report.NewFileSink(c.config.ReportPath),
		report.NewAuditLog(c.config.AuditLogPath),
		services.NewForecastService(), c.logger)
	defer admin.Shutdown()

	if err := admin.AddUser(entities.Retailer, retailer); err != nil {
		return err
	}
	if err := admin.AddUser(entities.WarehouseOperator, warehouse); err != nil {
		return err
	}
	if err := admin.AddUser(entities.ProductSupplier, supplier); err != nil {
		return err
	}

	fmt.Println("\n1. Generating inventory report in the background...")
	if err := admin.GenerateReport(); err != nil {
		return err
	}
	fmt.Printf("Main flow continues; report will land in %s\n", c.config.ReportPath)

	fmt.Println("\n2. Predicting demand from sales history (SMA)...")
	predictions, err := admin.PredictDemand()
	if err != nil {
		return err
	}
	output.PrintForecast(os.Stdout, predictions)

	fmt.Println("\n3. Adding stock via barcode scan...")
	scans := services.NewScanService(scanner.NewFilenameDecoder(), c.logger)
	if product, err := scans.Restock(warehouse, c.config.ScanImagePath, 20); err != nil {
		fmt.Printf("Scan failed: %v\n", err)
	} else {
		fmt.Printf("Added 20 units of %s to %s\n", product.Name, warehouse.Name)
	}

	for _, alert := range admin.LowStockAlerts(services.DefaultLowStockThreshold) {
		fmt.Println(alert)
	}

	fmt.Println("\n--- Final Stock Levels ---")
	levels := admin.StockLevels()
	output.PrintStockLevels(os.Stdout, levels)

	fmt.Println("\n--- Stock Graph ---")
	output.PrintStockGraph(os.Stdout, levels)

	return ctx.Err()
}

func (c *DemoCommand) seedActor(name string, id int, role entities.Role, catalog []entities.Product, quantities []entities.Quantity) (*entities.Actor, error) {
	ledger := memory.NewInventoryLedger()
	if err := ledger.Seed(catalog, quantities); err != nil {
		return nil, err
	}
	return entities.NewActor(name, id, role, catalog, ledger, memory.NewTransactionLog())
}

// seedSalesHistory records the sample consumer sales the forecaster
// reads: alternating laptop and phone purchases
func (c *DemoCommand) seedSalesHistory(retailer *entities.Actor, laptop, phone entities.Product) {
	samples := []struct {
		orderID string
		product entities.Product
		amount  entities.Quantity
		total   int64
	}{
		{"Order1", laptop, 5, 5500},
		{"Order2", phone, 10, 8000},
		{"Order3", laptop, 7, 7700},
		{"Order4", phone, 12, 9600},
		{"Order5", laptop, 6, 6600},
	}
	for _, s := range samples {
		tx, err := entities.NewSalesTransaction(s.orderID, retailer.Name, s.product, s.amount, decimal.NewFromInt(s.total))
		if err == nil {
			retailer.Transactions.Append(*tx)
		}
	}
}
