package db

import (
	"database/sql"
	"fmt"
	"time"

	"stroke_risk/config"

	_ "github.com/go-sql-driver/mysql"
)

// InitMySQLWithConfig 使用配置初始化数据库连接池
func InitMySQLWithConfig(cfg *config.Config) (*sql.DB, error) {
	conn, err := sql.Open("mysql", cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	// 从配置读取连接池参数，提供默认值保护
	maxOpenConns := cfg.DB.MaxOpenConns
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}

	maxIdleConns := cfg.DB.MaxIdleConns
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}

	connMaxLifetime := cfg.DB.ConnMaxLifetime
	if connMaxLifetime <= 0 {
		connMaxLifetime = 60 // 分钟
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)
	conn.SetConnMaxLifetime(time.Duration(connMaxLifetime) * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return conn, nil
}
