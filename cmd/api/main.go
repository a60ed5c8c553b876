package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/staffline/staffline-backend-go/internal/config"
	appHTTP "github.com/staffline/staffline-backend-go/internal/handler/http"
	"github.com/staffline/staffline-backend-go/internal/pkg/cron"
	"github.com/staffline/staffline-backend-go/internal/pkg/database"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
	"github.com/staffline/staffline-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffline/staffline-backend-go/internal/service/attendance"
	serviceAuth "github.com/staffline/staffline-backend-go/internal/service/auth"
	serviceCompany "github.com/staffline/staffline-backend-go/internal/service/company"
	employeeService "github.com/staffline/staffline-backend-go/internal/service/employee"
	leaveService "github.com/staffline/staffline-backend-go/internal/service/leave"
	"github.com/staffline/staffline-backend-go/internal/service/master"
	payrollService "github.com/staffline/staffline-backend-go/internal/service/payroll"
	salaryService "github.com/staffline/staffline-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	attendancePolicyRepo := postgresql.NewAttendancePolicyRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	leavePolicyRepo := postgresql.NewLeavePolicyRepository(db)
	salaryHistoryRepo := postgresql.NewSalaryHistoryRepository(db)
	payoutRepo := postgresql.NewPayoutRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := serviceAuth.NewAuthService(companyRepo, employeeRepo, adminRepo, JWTService)
	companySvc := serviceCompany.NewCompanyService(companyRepo)
	masterSvc := master.NewMasterService(departmentRepo, designationRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, attendancePolicyRepo, holidayRepo, employeeRepo, leaveRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, leavePolicyRepo, employeeRepo)
	salarySvc := salaryService.NewSalaryService(db, salaryHistoryRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payoutRepo, employeeRepo, companyRepo, attendanceRepo, attendancePolicyRepo, holidayRepo, leaveRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	}

	router := appHTTP.NewRouter(JWTService, handlers)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("revoked-token-purge", time.Hour, JWTService.PurgeExpiredRevocations)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
