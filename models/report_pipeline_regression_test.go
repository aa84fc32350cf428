package models_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/mmlabtech/lims_backend/config"
	"github.com/mmlabtech/lims_backend/models"
	"github.com/mmlabtech/lims_backend/models/reports"
	"github.com/mmlabtech/lims_backend/utils"
	"github.com/shopspring/decimal"
)

// End-to-end pipeline check against a real MySQL: seed a section, patient,
// tests, stock and a paid transaction, then run the report registry and
// verify transformed rows.
func TestReportPipelineAgainstMySQL(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	ctx := context.Background()

	mysqlName, mysqlPort := startMySQLContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(mysqlName) })

	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "lims_test")

	config.ConnectDatabaseWithRetry()
	models.MigrateTable()

	ctx = utils.SetUserIdInContext(ctx, 1)
	ctx = utils.SetUsernameInContext(ctx, "test@local")

	section, err := models.CreateSection(ctx, &models.NewSection{Name: "Hematology", Code: "HEM"})
	if err != nil {
		t.Fatalf("CreateSection: %v", err)
	}

	patient, err := models.CreatePatient(ctx, &models.NewPatient{
		FirstName: "Maria",
		LastName:  "Cruz",
	})
	if err != nil {
		t.Fatalf("CreatePatient: %v", err)
	}

	cbc, err := models.CreateLabTest(ctx, &models.NewLabTest{
		Name:      "CBC",
		SectionId: &section.ID,
		Price:     decimal.RequireFromString("300"),
	})
	if err != nil {
		t.Fatalf("CreateLabTest: %v", err)
	}

	tx, err := models.CreateTransaction(ctx, &models.NewTransaction{
		PatientId:  patient.ID,
		ORNumber:   "OR-0001",
		ClientType: "walk-in",
		TestIds:    []int{cbc.ID},
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if _, err := models.SetTransactionStatus(ctx, tx.ID, models.TransactionStatusPaid); err != nil {
		t.Fatalf("SetTransactionStatus: %v", err)
	}

	// Price changes after the sale must not change historical revenue.
	if _, err := models.UpdateLabTest(ctx, cbc.ID, &models.NewLabTest{
		Name:      "CBC",
		SectionId: &section.ID,
		Price:     decimal.RequireFromString("999"),
	}); err != nil {
		t.Fatalf("UpdateLabTest: %v", err)
	}

	item, err := models.CreateItem(ctx, &models.NewItem{
		Name:         "EDTA tubes",
		Unit:         "rack",
		ReorderLevel: decimal.NewFromInt(10),
		SectionId:    &section.ID,
	})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	inAt := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)
	outAt := inAt.Add(2 * time.Hour)
	if _, err := models.CreateStockIn(ctx, &models.NewStockIn{
		ItemId:   item.ID,
		Quantity: decimal.NewFromInt(8),
		MovedAt:  &inAt,
	}); err != nil {
		t.Fatalf("CreateStockIn: %v", err)
	}
	if _, err := models.CreateStockOut(ctx, &models.NewStockOut{
		ItemId:   item.ID,
		Quantity: decimal.NewFromInt(3),
		MovedAt:  &outAt,
	}); err != nil {
		t.Fatalf("CreateStockOut: %v", err)
	}

	var from, to models.DateString
	if err := from.ParseDate("2000-01-01"); err != nil {
		t.Fatalf("ParseDate from: %v", err)
	}
	if err := to.ParseDate("2100-01-01"); err != nil {
		t.Fatalf("ParseDate to: %v", err)
	}

	revenue, err := reports.Run(ctx, reports.ReportTypeRevenueByTest, from, to, nil)
	if err != nil {
		t.Fatalf("Run revenue_by_test: %v", err)
	}
	if len(revenue.Rows) != 1 {
		t.Fatalf("revenue_by_test expected 1 row, got %d", len(revenue.Rows))
	}
	if revenue.Rows[0][0] != "CBC" || revenue.Rows[0][3] != "300.00" {
		t.Fatalf("revenue row should use the price at sale time, got %v", revenue.Rows[0])
	}

	transactions, err := reports.Run(ctx, reports.ReportTypeTransactions, from, to, &section.ID)
	if err != nil {
		t.Fatalf("Run transactions: %v", err)
	}
	if len(transactions.Rows) != 1 {
		t.Fatalf("transactions expected 1 row, got %d", len(transactions.Rows))
	}
	if transactions.Rows[0][1] != "OR-0001" || transactions.Rows[0][2] != "Cruz, Maria" {
		t.Fatalf("unexpected transactions row: %v", transactions.Rows[0])
	}
	if transactions.Rows[0][5] != "Paid" {
		t.Fatalf("transactions status expected Paid, got %q", transactions.Rows[0][5])
	}

	lowStock, err := reports.Run(ctx, reports.ReportTypeLowStockAlert, from, to, nil)
	if err != nil {
		t.Fatalf("Run low_stock_alert: %v", err)
	}
	if len(lowStock.Rows) != 1 {
		t.Fatalf("low_stock_alert expected 1 row, got %d", len(lowStock.Rows))
	}
	if lowStock.Rows[0][0] != "EDTA tubes" || lowStock.Rows[0][5] != "5" {
		t.Fatalf("unexpected low stock row: %v", lowStock.Rows[0])
	}

	movement, err := reports.Run(ctx, reports.ReportTypeInventoryMovement, from, to, &section.ID)
	if err != nil {
		t.Fatalf("Run inventory_movement: %v", err)
	}
	if len(movement.Rows) != 2 {
		t.Fatalf("inventory_movement expected 2 rows, got %d", len(movement.Rows))
	}
	if movement.Rows[0][1] != "Stock Out" || movement.Rows[1][1] != "Stock In" {
		t.Fatalf("inventory_movement should be newest first, got %v then %v",
			movement.Rows[0][1], movement.Rows[1][1])
	}

	net, err := models.GetNetStock(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetNetStock: %v", err)
	}
	if net.String() != "5" {
		t.Fatalf("net stock expected 5, got %s", net.String())
	}
}

func startMySQLContainer(t *testing.T) (containerName, hostPort string) {
	t.Helper()
	name := fmt.Sprintf("lims-test-mysql-%d", time.Now().UnixNano())
	out, err := dockerRun(
		"run", "-d", "--name", name,
		"-e", "MYSQL_ROOT_PASSWORD=testpw",
		"-e", "MYSQL_DATABASE=lims_test",
		"-p", "127.0.0.1:0:3306",
		"mysql:8.0",
		"--default-authentication-plugin=mysql_native_password",
	)
	if err != nil {
		t.Fatalf("start mysql container: %v\n%s", err, out)
	}
	port, err := dockerHostPort(name, "3306/tcp")
	if err != nil {
		t.Fatalf("mysql docker port: %v", err)
	}
	// wait until ready
	deadline := time.Now().Add(120 * time.Second)
	for time.Now().Before(deadline) {
		_, err := dockerRun("exec", name, "mysqladmin", "ping", "-h", "127.0.0.1", "-ptestpw", "--silent")
		if err == nil {
			return name, port
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("mysql did not become ready")
	return "", ""
}

func dockerHostPort(container, portProto string) (string, error) {
	out, err := dockerRun("port", container, portProto)
	if err != nil {
		return "", fmt.Errorf("docker port: %w: %s", err, out)
	}
	re := regexp.MustCompile(`:(\d+)`)
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return "", fmt.Errorf("unexpected docker port output: %q", out)
	}
	return m[1], nil
}

func dockerRmForce(container string) error {
	if strings.TrimSpace(container) == "" {
		return nil
	}
	_, err := dockerRun("rm", "-f", container)
	return err
}

func dockerRun(args ...string) (string, error) {
	cmd := exec.Command("docker", args...)
	b, err := cmd.CombinedOutput()
	return string(b), err
}
