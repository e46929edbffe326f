package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kharak/bigarc/internal/big"
	"github.com/kharak/bigarc/internal/config"
	"github.com/kharak/bigarc/internal/formats"
	"github.com/kharak/bigarc/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bigarc",
	Short: "Read, extract, and build BIG game archives, including encrypted variants",
}

var listCmd = &cobra.Command{
	Use:   "list [archive]",
	Short: "List the members of an archive",
	Args:  cobra.ExactArgs(1),
	RunE:  list,
}

var extractCmd = &cobra.Command{
	Use:   "extract [archive] [member...]",
	Short: "Extract members (all members if none are named)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  extract,
}

var createCmd = &cobra.Command{
	Use:   "create [archive]",
	Short: "Build an archive from a directory tree",
	Args:  cobra.ExactArgs(1),
	RunE:  create,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().String("format", "classic", "archive format (classic, encrypted)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-output-dir", "", "directory to write log files (if set, logs are written to both stdout and file)")

	extractCmd.Flags().StringP("dest", "d", ".", "destination directory")
	extractCmd.Flags().Bool("no-decompress", false, "extract compressed members as stored")

	createCmd.Flags().StringP("source", "s", "", "directory tree to pack (required)")
	createCmd.Flags().String("exclude", "", "glob matched against file names to skip")
	createCmd.MarkFlagRequired("source")

	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_output_dir", rootCmd.PersistentFlags().Lookup("log-output-dir"))
	viper.BindPFlag("dest", extractCmd.Flags().Lookup("dest"))
	viper.BindPFlag("no_decompress", extractCmd.Flags().Lookup("no-decompress"))
	viper.BindPFlag("source", createCmd.Flags().Lookup("source"))
	viper.BindPFlag("exclude", createCmd.Flags().Lookup("exclude"))

	rootCmd.AddCommand(listCmd, extractCmd, createCmd)
}

// initConfig reads in config file and environment variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bigarc"))
		}
		viper.AddConfigPath("/etc/bigarc")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("BIGARC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setup unmarshals the merged configuration and configures logging.
func setup() (*big.Format, error) {
	cfg = &config.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogOutputDir); err != nil {
		return nil, fmt.Errorf("could not set up logging: %w", err)
	}

	return formats.ByName(cfg.Format)
}

func list(cmd *cobra.Command, args []string) error {
	format, err := setup()
	if err != nil {
		return err
	}

	archive, err := big.Open(args[0], format, slog.Default())
	if err != nil {
		return err
	}
	defer archive.Close()

	for _, m := range archive.Members() {
		flag := " "
		if m.Compressed() {
			flag = "c"
		}
		fmt.Printf("%s %10d  %s  %s\n", flag, m.RealSize, m.ModTime.Format("2006-01-02 15:04:05"), m.Name)
	}
	return nil
}

func extract(cmd *cobra.Command, args []string) error {
	format, err := setup()
	if err != nil {
		return err
	}

	archive, err := big.Open(args[0], format, slog.Default())
	if err != nil {
		return err
	}
	defer archive.Close()

	var members []*big.Member
	for _, name := range args[1:] {
		m, err := archive.Member(name)
		if err != nil {
			return err
		}
		members = append(members, m)
	}

	return archive.ExtractAll(members, cfg.Dest, !cfg.NoDecompress)
}

func create(cmd *cobra.Command, args []string) error {
	format, err := setup()
	if err != nil {
		return err
	}

	var exclude func(path string) bool
	if cfg.Exclude != "" {
		exclude = func(path string) bool {
			matched, _ := filepath.Match(cfg.Exclude, filepath.Base(path))
			return matched
		}
	}

	archive := big.New(format, slog.Default())
	if err := archive.AddAll(cfg.Source, exclude); err != nil {
		return err
	}
	return archive.Save(args[0])
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
