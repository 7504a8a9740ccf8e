package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin HTTP // 管理端监听；Port 为 0 时不启动
}

type Rotate struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Log struct {
	Level  string
	JSON   bool
	Rotate Rotate
}

// Limits HTTP 层保护参数
type Limits struct {
	RPS           float64
	Burst         int
	PerIP         bool
	MaxConcurrent int64
	MaxBodyBytes  int64
	TimeoutSec    int
}

type Seed struct {
	Name   string
	Phone  string
	Email  string
	Gender string
}

type Contacts struct {
	PhoneDigits        int    `mapstructure:"phone_digits"`         // 号码校验位数，0 关闭
	SanitizeStorePhone bool   `mapstructure:"sanitize_store_phone"` // 入库前只保留数字和 '+'
	Locale             string `mapstructure:"locale"`
	Seed               []Seed `mapstructure:"seed"`
}

type Config struct {
	App      App
	Log      Log
	Limits   Limits
	Contacts Contacts
}

func defaults(v *viper.Viper) {
	v.SetDefault("app.name", "phonebook")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("app.admin.host", "127.0.0.1")
	v.SetDefault("app.admin.readtimeoutsec", 5)
	v.SetDefault("app.admin.writetimeoutsec", 10)
	v.SetDefault("app.admin.idletimeoutsec", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("limits.rps", 200)
	v.SetDefault("limits.burst", 400)
	v.SetDefault("limits.maxconcurrent", 300)
	v.SetDefault("limits.maxbodybytes", 1<<20)
	v.SetDefault("limits.timeoutsec", 10)
	v.SetDefault("contacts.phone_digits", 11)
	v.SetDefault("contacts.locale", "en")
}

// Read 读取配置文件 + APP_ 前缀环境变量
func Read(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	defaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load 启动用：读取失败直接退出
func Load(path string) *Config {
	c, err := Read(path)
	if err != nil {
		log.Fatalf("read config: %v", err)
	}
	return c
}
