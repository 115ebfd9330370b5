package handler

import "rotahub/internal/service"

// Handler is the aggregate entry point for all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	Employee   *EmployeeHandler
	Rota       *RotaHandler
	Attendance *AttendanceHandler
	Exception  *ExceptionHandler
	Report     *ReportHandler
	Export     *ExportHandler
}

// NewHandler wires the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Employee:   NewEmployeeHandler(svc.Employee),
		Rota:       NewRotaHandler(svc.Rota),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Exception:  NewExceptionHandler(svc.Exception),
		Report:     NewReportHandler(svc.Report),
		Export:     NewExportHandler(svc.Export),
	}
}
