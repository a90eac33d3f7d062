package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Postgres    PostgresConfig    `mapstructure:"postgres"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Kafka       KafkaConfig       `mapstructure:"kafka"`
	Gateway     GatewayConfig     `mapstructure:"gateway"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Leveling    LevelingConfig    `mapstructure:"leveling"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
}

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"dbname"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
}

type KafkaConfig struct {
	Brokers     []string `mapstructure:"brokers"`
	EventTopic  string   `mapstructure:"event_topic"`  // 参与事件（入）
	NotifyTopic string   `mapstructure:"notify_topic"` // 审计通知（出）
	GroupID     string   `mapstructure:"group_id"`
}

// GatewayConfig 外部身份组网关
// 优先通过 grpc_addr 直连网关进程，未配置时退回 base_url 的 HTTP 接口
type GatewayConfig struct {
	GRPCAddr       string `mapstructure:"grpc_addr"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// AuthConfig 运维接口认证
// PasswordHash 为运维口令的 bcrypt 摘要，配置文件中不出现明文
type AuthConfig struct {
	JWTSecret    string `mapstructure:"jwt_secret"`
	ExpireHours  int    `mapstructure:"expire_hours"`
	Operator     string `mapstructure:"operator"`
	PasswordHash string `mapstructure:"password_hash"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// LevelingConfig Guild 首次出现时的默认曲线配置
type LevelingConfig struct {
	CooldownMinutes int `mapstructure:"cooldown_minutes"`
	Base            int `mapstructure:"base"`
	Modifier        int `mapstructure:"modifier"`
	RewardAmount    int `mapstructure:"reward_amount"`
}

// LeaderboardConfig 排行榜默认参数
type LeaderboardConfig struct {
	TopCount     int `mapstructure:"top_count"`
	WindowBefore int `mapstructure:"window_before"`
	WindowAfter  int `mapstructure:"window_after"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	return &config, nil
}
