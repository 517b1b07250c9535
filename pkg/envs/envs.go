package envs

import (
	"path/filepath"

	"github.com/narasux/bloghub/pkg/common/runmode"
	"github.com/narasux/bloghub/pkg/utils/envx"
	"github.com/narasux/bloghub/pkg/utils/pathx"
)

// 以下变量值可通过环境变量指定
var (
	// BaseDir 项目根目录
	BaseDir = envx.Get("BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../.."))

	// Domain 服务域名
	Domain = envx.Get("DOMAIN", "bloghub.example.com")

	// DomainScheme 服务域名协议
	DomainScheme = envx.Get("DOMAIN_SCHEME", "https")

	// ServerPort web 服务启用端口
	ServerPort = envx.Get("SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("GIN_RUN_MODE", runmode.Release)

	// AllowedOrigins 跨域请求白名单（逗号分隔，SPA 前端域名）
	AllowedOrigins = envx.Get("ALLOWED_ORIGINS", "http://localhost:5173")

	// RealClientIPHeaderKey 反向代理传递真实客户端 IP 使用的 Header Key
	RealClientIPHeaderKey = envx.Get("REAL_CLIENT_IP_HEADER_KEY", "")

	// JWTSigningKey 解析访问令牌使用的密钥（令牌签发属于外部认证服务）
	JWTSigningKey = envx.Get("JWT_SIGNING_KEY", "")

	// ViewCooldownMinutes 同一访客对同一博客浏览计数的冷却时间（分钟）
	ViewCooldownMinutes = envx.GetInt("VIEW_COOLDOWN_MINUTES", 60)

	// LogFileBaseDir 日志存放目录
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../logs"))

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "info")

	// ContactEmail 联系邮箱
	ContactEmail = envx.Get("CONTACT_EMAIL", "admin@bloghub.example.com")
)

// Mysql 数据库配置
var (
	// MysqlHost 数据库主机
	MysqlHost = envx.Get("MYSQL_HOST", "127.0.0.1")

	// MysqlPort 数据库端口
	MysqlPort = envx.Get("MYSQL_PORT", "3306")

	// MysqlUser 数据库用户
	MysqlUser = envx.Get("MYSQL_USER", "root")

	// MysqlPassword 数据库密码
	MysqlPassword = envx.Get("MYSQL_PASSWORD", "")

	// MysqlDatabase 数据库名称
	MysqlDatabase = envx.Get("MYSQL_DATABASE", "bloghub")

	// MysqlCharSet 数据库字符集
	MysqlCharSet = envx.Get("MYSQL_CHARSET", "utf8mb4")
)
