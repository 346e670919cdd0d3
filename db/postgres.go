package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"
)

// Config holds the connection settings for one logical database.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// FromEnv reads a Config from environment variables sharing a common
// prefix (PREFIX_HOST, PREFIX_PORT, PREFIX_USER, PREFIX_PASSWORD,
// PREFIX_DB). defaultPort is used when PREFIX_PORT is unset.
func FromEnv(prefix, defaultPort string) Config {
	port := os.Getenv(prefix + "_PORT")
	if port == "" {
		port = defaultPort
	}

	return Config{
		Host:     os.Getenv(prefix + "_HOST"),
		Port:     port,
		User:     os.Getenv(prefix + "_USER"),
		Password: os.Getenv(prefix + "_PASSWORD"),
		Name:     os.Getenv(prefix + "_DB"),
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// Open creates a pooled connection for one database. Connections are
// established lazily; a down database surfaces on first query, not here.
func Open(cfg Config) (*sql.DB, error) {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(25)
	conn.SetConnMaxLifetime(5 * time.Minute)

	return conn, nil
}

// Pools groups one pooled connection per logical database. Built once in
// main and handed to the repositories; each request uses exactly one pool.
type Pools struct {
	News       *sql.DB
	Securities *sql.DB
	Sentiment  *sql.DB
}

// Connect builds the three pools from environment configuration.
func Connect() (*Pools, error) {
	newsCfg := FromEnv("POSTGRES", "5432")
	stockCfg := FromEnv("STOCK", "5433")
	analyzeCfg := FromEnv("STOCKANALYZE", "5432")

	slog.Info("news DB config", "host", newsCfg.Host, "port", newsCfg.Port, "db", newsCfg.Name, "user", newsCfg.User)
	slog.Info("securities DB config", "host", stockCfg.Host, "port", stockCfg.Port, "db", stockCfg.Name, "user", stockCfg.User)
	slog.Info("sentiment DB config", "host", analyzeCfg.Host, "port", analyzeCfg.Port, "db", analyzeCfg.Name, "user", analyzeCfg.User)

	news, err := Open(newsCfg)
	if err != nil {
		return nil, fmt.Errorf("news db: %w", err)
	}

	securities, err := Open(stockCfg)
	if err != nil {
		return nil, fmt.Errorf("securities db: %w", err)
	}

	sentiment, err := Open(analyzeCfg)
	if err != nil {
		return nil, fmt.Errorf("sentiment db: %w", err)
	}

	return &Pools{News: news, Securities: securities, Sentiment: sentiment}, nil
}

// Probe pings one pool and logs the outcome. Best effort: a failed probe
// does not stop the server, the pool retries on first real query.
func Probe(conn *sql.DB, name string) {
	if err := conn.Ping(); err != nil {
		slog.Error("database unreachable", "db", name, "error", err)
		return
	}
	slog.Info("database connected", "db", name)
}

func (p *Pools) Close() {
	for _, conn := range []*sql.DB{p.News, p.Securities, p.Sentiment} {
		if conn != nil {
			conn.Close()
		}
	}
}
