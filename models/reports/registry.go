package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmlabtech/lims_backend/models"
)

// ReportType is a closed enum. Every variant carries its title, headings and
// query builder through definitionFor; an unrecognized key is a hard error,
// never a silently empty report.
type ReportType string

const (
	ReportTypeEquipmentInventory  ReportType = "equipment_inventory"
	ReportTypeCalibrationSchedule ReportType = "calibration_schedule"
	ReportTypeInventoryMovement   ReportType = "inventory_movement"
	ReportTypeLowStockAlert       ReportType = "low_stock_alert"
	ReportTypeExpiringInventory   ReportType = "expiring_inventory"
	ReportTypeLabResults          ReportType = "lab_results"
	ReportTypeTransactions        ReportType = "transactions"
	ReportTypeRevenueByTest       ReportType = "revenue_by_test"
	ReportTypeTestVolume          ReportType = "test_volume"
	ReportTypeCertificatesIssued  ReportType = "certificates_issued"
	ReportTypeActivityLog         ReportType = "activity_log"
)

var ErrUnknownReportType = errors.New("unknown report type")

func ParseReportType(s string) (ReportType, error) {
	switch t := ReportType(s); t {
	case ReportTypeEquipmentInventory,
		ReportTypeCalibrationSchedule,
		ReportTypeInventoryMovement,
		ReportTypeLowStockAlert,
		ReportTypeExpiringInventory,
		ReportTypeLabResults,
		ReportTypeTransactions,
		ReportTypeRevenueByTest,
		ReportTypeTestVolume,
		ReportTypeCertificatesIssued,
		ReportTypeActivityLog:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownReportType, s)
}

// Report is the output of one pipeline run: an ordered heading list and rows
// of display strings, each row exactly len(Headings) wide.
type Report struct {
	Type     ReportType `json:"type"`
	Title    string     `json:"title"`
	Headings []string   `json:"headings"`
	Rows     [][]string `json:"rows"`
}

type definition struct {
	title    string
	headings []string
	run      func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error)
}

func definitionFor(reportType ReportType) (definition, error) {
	switch reportType {
	case ReportTypeEquipmentInventory:
		return definition{
			title:    "Equipment Inventory",
			headings: []string{"Name", "Model", "Serial Number", "Section", "Status", "Purchase Date"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetEquipmentInventoryReport(ctx, fromDate, toDate, sectionId)
				if err != nil {
					return nil, err
				}
				return transformEquipmentInventory(records), nil
			},
		}, nil
	case ReportTypeCalibrationSchedule:
		return definition{
			title:    "Calibration Schedule",
			headings: []string{"Equipment", "Serial Number", "Section", "Calibration Date", "Next Due Date", "Status", "Performed By", "Certificate No."},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetCalibrationScheduleReport(ctx, fromDate, toDate, sectionId)
				if err != nil {
					return nil, err
				}
				return transformCalibrationSchedule(records), nil
			},
		}, nil
	case ReportTypeInventoryMovement:
		return definition{
			title:    "Inventory Movement",
			headings: []string{"Date", "Type", "Item", "Unit", "Quantity", "Reference", "Remarks"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				entries, err := GetInventoryMovementReport(ctx, fromDate, toDate, sectionId)
				if err != nil {
					return nil, err
				}
				return transformInventoryMovement(entries), nil
			},
		}, nil
	case ReportTypeLowStockAlert:
		return definition{
			title:    "Low Stock Alert",
			headings: []string{"Item", "Unit", "Section", "Stock In", "Stock Out", "Net Stock", "Reorder Level"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetLowStockReport(ctx, sectionId)
				if err != nil {
					return nil, err
				}
				return transformLowStock(records), nil
			},
		}, nil
	case ReportTypeExpiringInventory:
		return definition{
			title:    "Expiring Inventory",
			headings: []string{"Item", "Unit", "Supplier", "Quantity", "Expiry Date", "Days Remaining", "Urgency"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetExpiringInventoryReport(ctx, sectionId)
				if err != nil {
					return nil, err
				}
				return transformExpiringInventory(records), nil
			},
		}, nil
	case ReportTypeLabResults:
		return definition{
			title:    "Laboratory Results",
			headings: []string{"Result Date", "Patient", "Test", "Section", "Result", "Normal Range", "Status", "Performed By"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetLabResultsReport(ctx, fromDate, toDate, sectionId)
				if err != nil {
					return nil, err
				}
				return transformLabResults(records), nil
			},
		}, nil
	case ReportTypeTransactions:
		return definition{
			title:    "Transactions",
			headings: []string{"Date & Time", "OR Number", "Patient", "Client Type", "Amount", "Status"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetTransactionsReport(ctx, fromDate, toDate, sectionId)
				if err != nil {
					return nil, err
				}
				return transformTransactions(records), nil
			},
		}, nil
	case ReportTypeRevenueByTest:
		return definition{
			title:    "Revenue by Test",
			headings: []string{"Test", "Section", "Orders", "Revenue"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetRevenueByTestReport(ctx, fromDate, toDate, sectionId)
				if err != nil {
					return nil, err
				}
				return transformRevenueByTest(records), nil
			},
		}, nil
	case ReportTypeTestVolume:
		return definition{
			title:    "Test Volume",
			headings: []string{"Test", "Section", "Results Count"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetTestVolumeReport(ctx, fromDate, toDate, sectionId)
				if err != nil {
					return nil, err
				}
				return transformTestVolume(records), nil
			},
		}, nil
	case ReportTypeCertificatesIssued:
		return definition{
			title:    "Certificates Issued",
			headings: []string{"Issue Date", "Certificate No.", "Type", "Patient", "Issued By", "Status"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetCertificatesIssuedReport(ctx, fromDate, toDate)
				if err != nil {
					return nil, err
				}
				return transformCertificatesIssued(records), nil
			},
		}, nil
	case ReportTypeActivityLog:
		return definition{
			title:    "Activity Log",
			headings: []string{"Date & Time", "Employee", "Description"},
			run: func(ctx context.Context, fromDate models.DateString, toDate models.DateString, sectionId *int) ([][]string, error) {
				records, err := GetActivityLogReport(ctx, fromDate, toDate)
				if err != nil {
					return nil, err
				}
				return transformActivityLog(records), nil
			},
		}, nil
	}
	return definition{}, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
}

func Title(reportType ReportType) (string, error) {
	def, err := definitionFor(reportType)
	if err != nil {
		return "", err
	}
	return def.title, nil
}

func Headings(reportType ReportType) ([]string, error) {
	def, err := definitionFor(reportType)
	if err != nil {
		return nil, err
	}
	return def.headings, nil
}

// Run executes the full pipeline for one report request: select the
// definition, build the query, transform rows. Query errors propagate
// unchanged; an empty result is a valid report with zero rows.
func Run(ctx context.Context, reportType ReportType, fromDate models.DateString, toDate models.DateString, sectionId *int) (*Report, error) {
	def, err := definitionFor(reportType)
	if err != nil {
		return nil, err
	}

	rows, err := def.run(ctx, fromDate, toDate, sectionId)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = [][]string{}
	}

	return &Report{
		Type:     reportType,
		Title:    def.title,
		Headings: def.headings,
		Rows:     rows,
	}, nil
}
