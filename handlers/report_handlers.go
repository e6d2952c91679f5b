package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportRevenueReport streams the revenue report workbook as a download
func ExportRevenueReport(c *gin.Context) {
	excelFile, filename, err := handlerServices.ReportService.ExportRevenueReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export report: " + err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
