package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"revenueplatform/internal/config"
	"revenueplatform/internal/format"
	"revenueplatform/internal/importer"
	"revenueplatform/internal/log"
	"revenueplatform/internal/state"
	"revenueplatform/internal/store"
)

var version = "dev"

// options 全局命令行参数
type options struct {
	configPath string
	port       int
	devMode    bool
	noBrowser  bool
	logLevel   string
}

// session 一次命令执行所需的全部组件
type session struct {
	cfg    *config.AppConfig
	logger *log.Logger
	store  *store.Store
	app    *state.App
	coord  *importer.Coordinator
	format *format.Formatter
}

func (rt *session) Close() error {
	return rt.store.Close()
}

// NewRootCmd 创建根命令；不带子命令时等同于 serve
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "revenueplatform",
		Short:         "Revenue reporting dashboard",
		Long:          "Revenue Platform: tax and non-tax revenue dashboard with a simulated spreadsheet upload.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: config.toml beside the executable)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.Flags().IntVar(&opts.port, "port", 0, "listen port (ignored when config.toml sets one)")
	root.Flags().BoolVar(&opts.devMode, "dev", false, "development mode")
	root.Flags().BoolVar(&opts.noBrowser, "no-browser", false, "do not open the browser")

	root.AddCommand(serveCmd(opts))
	root.AddCommand(summaryCmd(opts))
	root.AddCommand(uploadCmd(opts))
	root.AddCommand(exportCmd(opts))

	return root
}

// Execute 运行根命令
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// loadConfig 读取配置并叠加命令行参数
func loadConfig(opts *options) (*config.AppConfig, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, info, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if opts.port > 0 && !info.PortSpecified {
		cfg.Server.Port = opts.port
	}
	if opts.devMode {
		cfg.Server.DevMode = true
	}
	if opts.noBrowser {
		cfg.Server.OpenBrowser = false
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

// newSession 按配置装配存储、状态与上传协调器
func newSession(cfg *config.AppConfig, logOut io.Writer) (*session, error) {
	logger := log.New(log.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: logOut,
	})

	dsn := cfg.Data.DSN
	if dsn == "" {
		dsn = store.MemoryDSN()
	}
	st, err := store.New(dsn)
	if err != nil {
		return nil, err
	}

	app, err := state.NewApp(st, logger)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	coord := importer.NewCoordinator(app, st,
		importer.WithDelay(cfg.UploadDelay()),
		importer.WithExtensions(cfg.Upload.AllowedExtensions),
		importer.WithLogger(logger),
	)

	return &session{
		cfg:    cfg,
		logger: logger,
		store:  st,
		app:    app,
		coord:  coord,
		format: format.New(cfg.Display.Locale, cfg.Display.CurrencySymbol),
	}, nil
}

// setup 子命令公共入口
func setup(cmd *cobra.Command, opts *options) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	return newSession(cfg, cmd.ErrOrStderr())
}
