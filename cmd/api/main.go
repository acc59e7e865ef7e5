package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/oijdod/hrms-backend-go/internal/config"
	appHTTP "github.com/oijdod/hrms-backend-go/internal/handler/http"
	"github.com/oijdod/hrms-backend-go/internal/pkg/database"
	"github.com/oijdod/hrms-backend-go/internal/pkg/jwt"
	"github.com/oijdod/hrms-backend-go/internal/pkg/storage"
	"github.com/oijdod/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/oijdod/hrms-backend-go/internal/service/attendance"
	authService "github.com/oijdod/hrms-backend-go/internal/service/auth"
	employeeService "github.com/oijdod/hrms-backend-go/internal/service/employee"
	"github.com/oijdod/hrms-backend-go/internal/service/file"
	leaveService "github.com/oijdod/hrms-backend-go/internal/service/leave"
	salaryService "github.com/oijdod/hrms-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(db, cfg.Company.Code, cfg.Company.Name, userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, attendanceRepo, leaveRequestRepo, fileService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo, attendanceRepo, fileService)
	salarySvc := salaryService.NewSalaryService(cfg.Company.Name, salaryRepo, employeeRepo, attendanceRepo, fileService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	fileHandler := appHTTP.NewFileHandler(fileService)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		salaryHandler,
		fileHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
