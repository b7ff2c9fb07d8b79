package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/paulamunoz06/gestionproyectos/internal/config"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/company"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/inbox"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/project"
	"github.com/paulamunoz06/gestionproyectos/internal/domain/student"
)

// Open connects to the service database.
func Open(cfg config.DBConfig, log *zap.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("database connected", zap.String("host", cfg.Host), zap.String("name", cfg.Name))
	return gdb, nil
}

// Models returns the tables owned or replicated by service.
func Models(service string) ([]interface{}, error) {
	switch service {
	case config.ServiceCompany:
		return []interface{}{&company.Company{}, &project.Project{}, &student.Student{}, &inbox.Failure{}}, nil
	case config.ServiceCoordinator:
		return []interface{}{&project.Project{}, &student.Student{}, &inbox.Failure{}}, nil
	case config.ServiceStudent:
		return []interface{}{&student.Student{}, &project.Project{}, &inbox.Failure{}}, nil
	}
	return nil, fmt.Errorf("unknown service %q", service)
}

// Migrate creates or updates the tables service needs.
func Migrate(gdb *gorm.DB, service string) error {
	models, err := Models(service)
	if err != nil {
		return err
	}
	if err := gdb.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate %s: %w", service, err)
	}
	return nil
}
