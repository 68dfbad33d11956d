package services

// Services defined in this package:
// - GradebookService: input validation, session gradebook and evaluation
// - ReportService: chart, PDF and XLSX rendering
