package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/lox/dotoo/internal/logging"
	"github.com/lox/dotoo/internal/metrics"
	"github.com/lox/dotoo/internal/narrate"
	"github.com/lox/dotoo/internal/snapshot"
)

// Globals are flags shared by every command.
type Globals struct {
	EnvFile     kongdotenv.ENVFileConfig `name:"env-file" default:".env" help:"Load environment variables from this file if it exists."`
	LogLevel    string                   `name:"log-level" env:"DOTOO_LOG_LEVEL" default:"warn" enum:"trace,debug,info,warn,error,disabled" help:"Log level."`
	LogFormat   string                   `name:"log-format" env:"DOTOO_LOG_FORMAT" default:"console" enum:"console,json" help:"Log format."`
	DB          string                   `name:"db" env:"DOTOO_DB" default:"data/dotoo.db" help:"Path to the SQLite snapshot cache."`
	MetricsFile string                   `name:"metrics-file" env:"DOTOO_METRICS_FILE" help:"Write Prometheus metrics to this textfile on exit."`

	logger zerolog.Logger `kong:"-"`
}

// CollectorFlags configure Met Office scraping.
type CollectorFlags struct {
	MetOfficeURL string        `name:"metoffice-url" env:"DOTOO_METOFFICE_URL" default:"${metoffice_url}" help:"Met Office forecast base URL."`
	Concurrency  int           `name:"concurrency" default:"4" help:"Pages fetched at once."`
	RPS          float64       `name:"rps" default:"2" help:"Maximum page requests per second."`
	FetchTimeout time.Duration `name:"fetch-timeout" default:"2m" help:"Give up on collection after this long."`
	FTPAddr      string        `name:"ftp-addr" env:"DOTOO_FTP_ADDR" help:"Read the snapshot from this FTP server instead of scraping."`
	FTPPath      string        `name:"ftp-path" env:"DOTOO_FTP_PATH" default:"/dotoo/snapshot-{day}.json" help:"Snapshot path on the FTP server; {day} is replaced by the forecast day."`
	FTPUser      string        `name:"ftp-user" env:"DOTOO_FTP_USER" help:"FTP user; anonymous when empty."`
	FTPPassword  string        `name:"ftp-password" env:"DOTOO_FTP_PASSWORD" help:"FTP password."`
}

func (f CollectorFlags) collectorConfig() snapshot.CollectorConfig {
	cfg := snapshot.DefaultCollectorConfig()
	cfg.BaseURL = f.MetOfficeURL
	cfg.Concurrency = f.Concurrency
	cfg.RequestsPerSecond = f.RPS
	return cfg
}

func (f CollectorFlags) ftpSource(day int) snapshot.FTPSource {
	return snapshot.FTPSource{
		Addr:     f.FTPAddr,
		User:     f.FTPUser,
		Password: f.FTPPassword,
		Path:     strings.ReplaceAll(f.FTPPath, "{day}", strconv.Itoa(day)),
	}
}

type CLI struct {
	Globals

	Recommend RecommendCmd `cmd:"" default:"withargs" help:"Rank activities for the given circumstances."`
	Usage     UsageCmd     `cmd:"" help:"List the accepted value names."`
	Fetch     FetchCmd     `cmd:"" help:"Fetch a forecast snapshot into the cache."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dotoo"),
		kong.Description("Suggests what to do with your free time, given the weather."),
		kong.UsageOnError(),
		kong.Vars{
			"metoffice_url": snapshot.MetOfficeBaseURL,
			"openai_model":  narrate.DefaultModel,
		},
	)

	cli.logger = logging.New(logging.Config{Level: cli.LogLevel, Format: cli.LogFormat})

	err := ctx.Run(&cli.Globals)
	if cli.MetricsFile != "" {
		if werr := metrics.WriteTextfile(cli.MetricsFile); werr != nil {
			cli.logger.Error().Err(werr).Str("path", cli.MetricsFile).Msg("write metrics")
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dotoo: %v\n", err)
		os.Exit(1)
	}
}
