package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fredymanu76/lms-platform-sub001/internal/app"
	"github.com/fredymanu76/lms-platform-sub001/internal/brokers/kafka"
	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/fredymanu76/lms-platform-sub001/internal/logger"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	cliapp := cli.NewApp()
	cliapp.Name = "classroom"
	cliapp.Usage = "Classroom session booking service"

	var configDir string
	var debug bool
	cliapp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "config",
			Usage:       "Directory containing config.yml",
			Value:       "internal/configs",
			Destination: &configDir,
		},
		cli.BoolFlag{
			Name:        "debug",
			Usage:       "Enable debug logging",
			Destination: &debug,
		},
	}
	serve := func(c *cli.Context) error {
		zaplogger := logger.NewLogger(debug)
		defer zaplogger.Sync()
		config, err := configs.LoadConfig(configDir, zaplogger)
		if err != nil {
			zaplogger.Error("Failed to read configuration", zap.Error(err))
			return err
		}
		return app.NewClassroomApplication(config, zaplogger).Start()
	}
	cliapp.Action = serve
	cliapp.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "Run the HTTP API and the email consumer",
			Action: serve,
		},
		{
			Name:  "migrate",
			Usage: "Apply pending database migrations and exit",
			Action: func(c *cli.Context) error {
				zaplogger := logger.NewLogger(debug)
				defer zaplogger.Sync()
				config, err := configs.LoadConfig(configDir, zaplogger)
				if err != nil {
					zaplogger.Error("Failed to read configuration", zap.Error(err))
					return err
				}
				return app.Migrate(config, zaplogger)
			},
		},
		{
			Name:  "logs",
			Usage: "Follow the service logs shipped to Kafka",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "level",
					Usage: "Log level to follow: info, warn or error",
					Value: "error",
				},
			},
			Action: func(c *cli.Context) error {
				zaplogger := logger.NewLogger(debug)
				defer zaplogger.Sync()
				config, err := configs.LoadConfig(configDir, zaplogger)
				if err != nil {
					zaplogger.Error("Failed to read configuration", zap.Error(err))
					return err
				}
				ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				consumer := kafka.NewLogConsumer(config.Kafka, c.String("level"), zaplogger)
				defer consumer.Close()
				return consumer.Run(ctx, func(l kafka.ClassroomLog) {
					zaplogger.Info(l.Message, zap.String("level", l.Level), zap.String("place", l.Place), zap.String("trace_id", l.TraceID), zap.String("timestamp", l.Timestamp))
				})
			},
		},
	}
	if err := cliapp.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
