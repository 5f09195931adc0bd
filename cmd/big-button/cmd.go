package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "big-button",
		Short: "Gesture engine for the big button",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Lookup("debug").Changed {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newMonitorCmd())
	rootCmd.PersistentFlags().Bool("debug", false, "Turn on debug logging.")
	rootCmd.PersistentFlags().String("config", "", "Path to the configuration file.")

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			showVersion()
		},
	}
}

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Starts the gesture engine with all configured consumers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			conf := mustReadConfig(cmd)
			startServer(conf)
		},
	}
}

func newMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Logs gestures to stdout without driving any peripherals",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			conf := mustReadConfig(cmd)
			conf.Led.Enabled = false
			conf.Lcd.Enabled = false
			conf.Mqtt.Broker = ""
			startServer(conf)
		},
	}
}

func mustReadConfig(cmd *cobra.Command) *Config {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		log.Fatal(err)
	}
	conf, err := readConfig(path)
	if err != nil {
		log.Fatal(err)
	}
	return conf
}
