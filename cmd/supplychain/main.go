package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/akarpov/supplychain/pkg/interfaces/cli/commands"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	config := commands.Config{
		ReportPath:    "inventory_report.txt",
		AuditLogPath:  "admin_log.txt",
		ScanImagePath: "barcode_p1.gif",
	}

	cmd := commands.NewDemoCommand(config, logger)
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
