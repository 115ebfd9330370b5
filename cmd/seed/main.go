package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rotahub/config"
	"rotahub/internal/model"
	"rotahub/internal/repository"
	"rotahub/pkg/database"
	applogger "rotahub/pkg/logger"
)

// seedEmployees is a small realistic roster for demos and local testing.
var seedEmployees = []model.Employee{
	{EmpID: "E001", Name: "Sarthak Bagasi", Designation: "Shift Supervisor", Location: "Mumbai", Department: "Operations", Grade: "G2"},
	{EmpID: "E002", Name: "Priya Nair", Designation: "Analyst", Location: "Mumbai", Department: "Operations", Grade: "G3"},
	{EmpID: "E003", Name: "Rohan Mehta", Designation: "Technician", Location: "Pune", Department: "Maintenance", Grade: "G3"},
	{EmpID: "E004", Name: "Aisha Khan", Designation: "Analyst", Location: "Delhi", Department: "Operations", Grade: "G3"},
	{EmpID: "E005", Name: "Vikram Rao", Designation: "Technician", Location: "Pune", Department: "Maintenance", Grade: "G4"},
}

func main() {
	var adminUser, adminPass string
	flag.StringVar(&adminUser, "admin-user", "admin", "admin username to create")
	flag.StringVar(&adminPass, "admin-pass", "", "admin password (required)")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if adminPass == "" {
		fmt.Fprintln(os.Stderr, "-admin-pass is required")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrap sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Admin account, idempotent.
	if _, err := repo.AdminUser.GetByUsername(ctx, adminUser); err == nil {
		logger.Info("admin already exists, skipping", zap.String("username", adminUser))
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPass), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal("hash password failed", zap.Error(err))
		}
		admin := &model.AdminUser{Username: adminUser, PasswordHash: string(hash), Role: "admin"}
		if err := repo.AdminUser.Create(ctx, admin); err != nil {
			logger.Fatal("create admin failed", zap.Error(err))
		}
		logger.Info("admin created", zap.String("username", adminUser))
	} else {
		logger.Fatal("lookup admin failed", zap.Error(err))
	}

	// Sample roster, idempotent per emp_id.
	created := 0
	for i := range seedEmployees {
		emp := seedEmployees[i]
		emp.Status = model.EmployeeActive
		if _, err := repo.Employee.GetByEmpID(ctx, emp.EmpID); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Fatal("lookup employee failed", zap.Error(err))
		}
		if err := repo.Employee.Create(ctx, &emp); err != nil {
			logger.Fatal("create employee failed", zap.String("emp_id", emp.EmpID), zap.Error(err))
		}
		created++
	}
	logger.Info("seed complete", zap.Int("employees_created", created))
}
