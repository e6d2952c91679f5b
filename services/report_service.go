package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/KennethJT1/Artisan-backend/models"
	"github.com/KennethJT1/Artisan-backend/utils"
)

// ReportService handles Excel export of revenue and payout figures
type ReportService struct {
	dashboard *DashboardService
	settings  *SettingsService
}

// NewReportService creates a new report service
func NewReportService(dashboard *DashboardService, settings *SettingsService) *ReportService {
	return &ReportService{dashboard: dashboard, settings: settings}
}

// ExportRevenueReport generates an Excel workbook of the platform's revenue,
// top artisans, and most booked services
func (s *ReportService) ExportRevenueReport() (*excelize.File, string, error) {
	summary, err := s.dashboard.GetRevenueSummary()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get revenue summary: %v", err)
	}

	topArtisans, err := s.dashboard.GetTopArtisans()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get top artisans: %v", err)
	}

	popular, err := s.dashboard.GetPopularCategories()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get popular services: %v", err)
	}

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, summary); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createTopArtisansSheet(f, topArtisans); err != nil {
		return nil, "", fmt.Errorf("failed to create top artisans sheet: %v", err)
	}
	if err := s.createPopularServicesSheet(f, popular); err != nil {
		return nil, "", fmt.Errorf("failed to create popular services sheet: %v", err)
	}

	f.DeleteSheet("Sheet1")

	platformName := "ArtisanHub"
	if platform, err := s.settings.GetPlatformSettings(); err == nil {
		platformName = platform.PlatformName
	}

	filename := fmt.Sprintf("%s_Revenue_Report_%s.xlsx",
		utils.CleanFileName(platformName),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	return style
}

// createSummarySheet creates Sheet 1: Summary
func (s *ReportService) createSummarySheet(f *excelize.File, summary *models.RevenueSummary) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	f.SetCellValue(sheetName, "A1", "Metric")
	f.SetCellValue(sheetName, "B1", "Amount")
	f.SetCellStyle(sheetName, "A1", "B1", headerStyle(f))

	rows := []struct {
		label string
		value float64
	}{
		{"Total Revenue", summary.TotalRevenue},
		{"Commission Earned", summary.CommissionEarned},
		{"Artisan Payouts", summary.ArtisanPayouts},
	}
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.value)
	}

	f.SetColWidth(sheetName, "A", "B", 20)

	return nil
}

// createTopArtisansSheet creates Sheet 2: Top Artisans
func (s *ReportService) createTopArtisansSheet(f *excelize.File, artisans []models.TopArtisan) error {
	sheetName := "Top Artisans"
	f.NewSheet(sheetName)

	headers := []string{"Name", "Category", "Total Earnings", "Jobs", "Average Rating"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle(f))

	for i, artisan := range artisans {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), artisan.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), artisan.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), artisan.TotalEarnings)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), artisan.TotalJobs)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), artisan.AverageRating)
	}

	f.SetColWidth(sheetName, "A", "E", 18)

	return nil
}

// createPopularServicesSheet creates Sheet 3: Popular Services
func (s *ReportService) createPopularServicesSheet(f *excelize.File, services []models.PopularService) error {
	sheetName := "Popular Services"
	f.NewSheet(sheetName)

	headers := []string{"Category", "Bookings", "Revenue"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A1", "C1", headerStyle(f))

	for i, service := range services {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), service.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), service.Bookings)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), service.Revenue)
	}

	f.SetColWidth(sheetName, "A", "C", 15)

	return nil
}
