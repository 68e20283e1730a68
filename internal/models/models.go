package models

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB 打开数据库连接
// 句柄由调用方持有并向下传递，不使用进程级全局变量
func OpenDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // 使用静默模式
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}

// AutoMigrate 自动迁移数据库表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&User{},
		&Schema{},
		&SchemaCategory{},
		&SchemaField{},
		&Specification{},
		&SpecContentValue{},
		&Deliverable{},
		&ContractorRequirement{},
		&BasicBusinessRequirement{},
		&BusinessTask{},
	)
}
