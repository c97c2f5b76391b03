package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile 默认配置文件路径
const DefaultFile = "config.yaml"

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port" validate:"min=1,max=65535"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Artifacts struct {
		Dir         string `yaml:"dir"`
		ModelFile   string `yaml:"model_file" validate:"required"`
		ScalerFile  string `yaml:"scaler_file" validate:"required"`
		ColumnsFile string `yaml:"columns_file" validate:"required"`
	} `yaml:"artifacts"`
	Templates struct {
		Dir string `yaml:"dir"` // 为空时使用内置模板
	} `yaml:"templates"`
	Log struct {
		Level    string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
		Format   string `yaml:"format" validate:"omitempty,oneof=text json"`
		Output   string `yaml:"output" validate:"omitempty,oneof=stdout file both"`
		FilePath string `yaml:"file_path" validate:"required_if=Output file,required_if=Output both"`
	} `yaml:"log"`

	DB struct {
		Enabled         bool   `yaml:"enabled"`
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"`                 // 不从配置文件读取，而是在加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`
	Timeouts struct {
		ReadSec  int `yaml:"read_sec" validate:"min=0"`  // 读取超时，单位：秒
		WriteSec int `yaml:"write_sec" validate:"min=0"` // 写入超时，单位：秒
		IdleSec  int `yaml:"idle_sec" validate:"min=0"`  // 空闲超时，单位：秒
	} `yaml:"timeouts"`
}

var validate = validator.New()

// ErrMissingDSN 启用数据库但无法得到DSN
var ErrMissingDSN = errors.New("database enabled but no DSN or host configured")

// Load 加载 .env、config.yaml 和环境变量
func Load() (*Config, error) {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量
	return LoadFile(DefaultFile)
}

// LoadFile 从指定的yaml文件加载配置，文件不存在时仅使用默认值和环境变量
func LoadFile(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		log.Printf("Loading configuration from %s", path)
	case errors.Is(err, os.ErrNotExist):
		log.Printf("%s not found, using defaults and environment variables", path)
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg)
	cfg.Server.Addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	buildDSN(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.DB.Enabled && c.DB.DSN == "" {
		return ErrMissingDSN
	}
	return nil
}

func defaults() *Config {
	var cfg Config
	cfg.Server.Port = 5000
	cfg.Artifacts.ModelFile = "stroke_risk_model.json"
	cfg.Artifacts.ScalerFile = "scaler.json"
	cfg.Artifacts.ColumnsFile = "X_train_columns.json"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Log.Output = "stdout"
	cfg.DB.Charset = "utf8mb4"
	cfg.DB.ParseTime = true
	cfg.Timeouts.ReadSec = 10
	cfg.Timeouts.WriteSec = 10
	cfg.Timeouts.IdleSec = 60
	return &cfg
}

// 从环境变量中加载部署相关配置和敏感信息
func applyEnv(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	cfg.Artifacts.Dir = getenv("ARTIFACTS_DIR", cfg.Artifacts.Dir)
	cfg.Templates.Dir = getenv("TEMPLATES_DIR", cfg.Templates.Dir)
	cfg.Log.Level = strings.ToLower(getenv("LOG_LEVEL", cfg.Log.Level))

	// 数据库用户名和密码
	cfg.DB.Username = getenv("DATABASE_USERNAME", cfg.DB.Username)
	cfg.DB.Password = getenv("DATABASE_PASSWORD", cfg.DB.Password)
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	}
}

func buildDSN(cfg *Config) {
	if cfg.DB.DSN != "" || cfg.DB.Host == "" {
		return
	}
	if cfg.DB.Charset == "" {
		cfg.DB.Charset = "utf8mb4"
	}
	parseTime := ""
	if cfg.DB.ParseTime {
		parseTime = "&parseTime=true"
	}
	cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Database,
		cfg.DB.Charset,
		parseTime)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
